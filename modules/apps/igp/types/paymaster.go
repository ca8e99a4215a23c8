package types

import (
	"strings"

	yaml "gopkg.in/yaml.v2"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/tendermint/tendermint/crypto"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Paymaster is an interchain gas paymaster instance. It accumulates gas payments in
// Balance until they are claimed by the Beneficiary. The balance denomination is fixed
// when the paymaster is created. An empty Owner means ownership
// has been renounced and no owner-gated operation can ever succeed again.
type Paymaster struct {
	Address     string   `json:"address" yaml:"address"`
	Salt        []byte   `json:"salt" yaml:"salt"`
	Owner       string   `json:"owner,omitempty" yaml:"owner,omitempty"`
	Beneficiary string   `json:"beneficiary" yaml:"beneficiary"`
	Balance     sdk.Coin `json:"balance" yaml:"balance"`
}

// NewPaymaster creates a new Paymaster instance with an empty balance.
func NewPaymaster(salt common.Hash, owner, beneficiary sdk.AccAddress, denom string) Paymaster {
	return Paymaster{
		Address:     PaymasterAddress(salt).String(),
		Salt:        salt.Bytes(),
		Owner:       addressString(owner),
		Beneficiary: beneficiary.String(),
		Balance:     sdk.NewCoin(denom, sdk.ZeroInt()),
	}
}

// IsOwner reports whether addr is the current owner.
func (p Paymaster) IsOwner(addr sdk.AccAddress) bool {
	return isOwner(p.Owner, addr)
}

// GetAddress returns the paymaster address. It panics on a malformed address.
func (p Paymaster) GetAddress() sdk.AccAddress {
	return mustAccAddressFromBech32(p.Address)
}

// GetBeneficiary returns the beneficiary address. It panics on a malformed address.
func (p Paymaster) GetBeneficiary() sdk.AccAddress {
	return mustAccAddressFromBech32(p.Beneficiary)
}

// Validate performs a stateless validation of the paymaster.
func (p Paymaster) Validate() error {
	salt, err := saltFromBytes(p.Salt)
	if err != nil {
		return err
	}

	addr, err := sdk.AccAddressFromBech32(p.Address)
	if err != nil {
		return sdkerrors.Wrap(err, "invalid paymaster address")
	}

	if !PaymasterAddress(salt).Equals(addr) {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "paymaster address %s does not match its salt", p.Address)
	}

	if err := validateOptionalAddress(p.Owner); err != nil {
		return sdkerrors.Wrap(err, "invalid owner")
	}

	if _, err := sdk.AccAddressFromBech32(p.Beneficiary); err != nil {
		return sdkerrors.Wrap(err, "invalid beneficiary")
	}

	if p.Balance.Amount.IsNil() {
		return sdkerrors.Wrap(ErrInvalidConfiguration, "balance amount must be set")
	}

	if err := p.Balance.Validate(); err != nil {
		return sdkerrors.Wrapf(ErrInvalidConfiguration, "invalid balance: %s", err)
	}

	return nil
}

// String implements fmt.Stringer
func (p Paymaster) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

// OverheadPaymaster wraps an inner Paymaster and adds its own per domain gas overhead
// to every quote and payment before forwarding them. It never holds a balance.
type OverheadPaymaster struct {
	Address string `json:"address" yaml:"address"`
	Salt    []byte `json:"salt" yaml:"salt"`
	Owner   string `json:"owner,omitempty" yaml:"owner,omitempty"`
	Inner   string `json:"inner" yaml:"inner"`
}

// NewOverheadPaymaster creates a new OverheadPaymaster instance.
func NewOverheadPaymaster(salt common.Hash, owner, inner sdk.AccAddress) OverheadPaymaster {
	return OverheadPaymaster{
		Address: OverheadPaymasterAddress(salt).String(),
		Salt:    salt.Bytes(),
		Owner:   addressString(owner),
		Inner:   inner.String(),
	}
}

// IsOwner reports whether addr is the current owner.
func (p OverheadPaymaster) IsOwner(addr sdk.AccAddress) bool {
	return isOwner(p.Owner, addr)
}

// GetAddress returns the overhead paymaster address. It panics on a malformed address.
func (p OverheadPaymaster) GetAddress() sdk.AccAddress {
	return mustAccAddressFromBech32(p.Address)
}

// GetInner returns the inner paymaster address. It panics on a malformed address.
func (p OverheadPaymaster) GetInner() sdk.AccAddress {
	return mustAccAddressFromBech32(p.Inner)
}

// Validate performs a stateless validation of the overhead paymaster.
func (p OverheadPaymaster) Validate() error {
	salt, err := saltFromBytes(p.Salt)
	if err != nil {
		return err
	}

	addr, err := sdk.AccAddressFromBech32(p.Address)
	if err != nil {
		return sdkerrors.Wrap(err, "invalid overhead paymaster address")
	}

	if !OverheadPaymasterAddress(salt).Equals(addr) {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "overhead paymaster address %s does not match its salt", p.Address)
	}

	if err := validateOptionalAddress(p.Owner); err != nil {
		return sdkerrors.Wrap(err, "invalid owner")
	}

	if _, err := sdk.AccAddressFromBech32(p.Inner); err != nil {
		return sdkerrors.Wrap(err, "invalid inner paymaster")
	}

	return nil
}

// String implements fmt.Stringer
func (p OverheadPaymaster) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

// PaymasterAddress derives the address of the paymaster created with salt.
func PaymasterAddress(salt common.Hash) sdk.AccAddress {
	return deriveAddress(PaymasterSeed, salt)
}

// OverheadPaymasterAddress derives the address of the overhead paymaster created with salt.
func OverheadPaymasterAddress(salt common.Hash) sdk.AccAddress {
	return deriveAddress(OverheadPaymasterSeed, salt)
}

func deriveAddress(seed string, salt common.Hash) sdk.AccAddress {
	bz := append([]byte(PdaSeedPrefix+"-"+seed+"-"), salt.Bytes()...)
	return sdk.AccAddress(crypto.AddressHash(bz))
}

// ParseMessageID decodes a 0x prefixed, 32 byte hex message identifier.
func ParseMessageID(s string) (common.Hash, error) {
	bz, err := hexutil.Decode(strings.TrimSpace(s))
	if err != nil {
		return common.Hash{}, sdkerrors.Wrapf(ErrInvalidMessageID, "%s: %s", s, err)
	}

	if len(bz) != common.HashLength {
		return common.Hash{}, sdkerrors.Wrapf(ErrInvalidMessageID, "expected %d bytes, got %d", common.HashLength, len(bz))
	}

	return common.BytesToHash(bz), nil
}

// ParseSalt decodes a 0x prefixed, 32 byte hex salt.
func ParseSalt(s string) (common.Hash, error) {
	bz, err := hexutil.Decode(strings.TrimSpace(s))
	if err != nil {
		return common.Hash{}, sdkerrors.Wrapf(ErrInvalidSalt, "%s: %s", s, err)
	}

	return saltFromBytes(bz)
}

func saltFromBytes(bz []byte) (common.Hash, error) {
	if len(bz) != common.HashLength {
		return common.Hash{}, sdkerrors.Wrapf(ErrInvalidSalt, "expected %d bytes, got %d", common.HashLength, len(bz))
	}

	return common.BytesToHash(bz), nil
}

func addressString(addr sdk.AccAddress) string {
	if addr.Empty() {
		return ""
	}

	return addr.String()
}

func isOwner(owner string, addr sdk.AccAddress) bool {
	if owner == "" || addr.Empty() {
		return false
	}

	return owner == addr.String()
}

func validateOptionalAddress(s string) error {
	if s == "" {
		return nil
	}

	_, err := sdk.AccAddressFromBech32(s)
	return err
}

func mustAccAddressFromBech32(s string) sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(s)
	if err != nil {
		panic(err)
	}

	return addr
}
