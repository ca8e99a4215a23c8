package types

import (
	"fmt"

	yaml "gopkg.in/yaml.v2"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

const (
	// DefaultOpenClaim allows any caller to trigger a claim. Claimed funds always go
	// to the paymaster beneficiary regardless of the caller.
	DefaultOpenClaim = true
)

var (
	// DefaultFeeDenom is the native denomination gas payments are made in
	DefaultFeeDenom = sdk.DefaultBondDenom

	// KeyFeeDenom is store's key for the FeeDenom param
	KeyFeeDenom = []byte("FeeDenom")

	// KeyOpenClaim is store's key for the OpenClaim param
	KeyOpenClaim = []byte("OpenClaim")
)

// Params defines the interchain gas paymaster module parameters.
//
// OpenClaim selects the claim policy: when true anyone may trigger a claim, when
// false only the paymaster owner may.
type Params struct {
	FeeDenom  string `json:"fee_denom" yaml:"fee_denom"`
	OpenClaim bool   `json:"open_claim" yaml:"open_claim"`
}

// ParamKeyTable type declaration for parameters
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// NewParams creates a new parameter configuration for the interchain gas paymaster module
func NewParams(feeDenom string, openClaim bool) Params {
	return Params{
		FeeDenom:  feeDenom,
		OpenClaim: openClaim,
	}
}

// DefaultParams is the default parameter configuration for the interchain gas paymaster module
func DefaultParams() Params {
	return NewParams(DefaultFeeDenom, DefaultOpenClaim)
}

// Validate all interchain gas paymaster module parameters
func (p Params) Validate() error {
	if err := validateFeeDenom(p.FeeDenom); err != nil {
		return err
	}

	return validateOpenClaim(p.OpenClaim)
}

// String implements fmt.Stringer
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

// ParamSetPairs implements params.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyFeeDenom, &p.FeeDenom, validateFeeDenom),
		paramtypes.NewParamSetPair(KeyOpenClaim, &p.OpenClaim, validateOpenClaim),
	}
}

func validateFeeDenom(i interface{}) error {
	denom, ok := i.(string)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}

	if err := sdk.ValidateDenom(denom); err != nil {
		return sdkerrors.Wrap(ErrInvalidDenom, err.Error())
	}

	return nil
}

func validateOpenClaim(i interface{}) error {
	_, ok := i.(bool)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}

	return nil
}
