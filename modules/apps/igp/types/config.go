package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// GasOracleConfig sets or removes the remote gas data of a single domain.
// A nil GasOracle removes the domain, after which it is unsupported.
type GasOracleConfig struct {
	Domain    uint32         `protobuf:"varint,1,opt,name=domain,proto3" json:"domain" yaml:"domain"`
	GasOracle *RemoteGasData `protobuf:"bytes,2,opt,name=gas_oracle,json=gasOracle,proto3" json:"gas_oracle,omitempty" yaml:"gas_oracle,omitempty"`
}

// NewGasOracleConfig returns a config that sets the remote gas data of domain.
func NewGasOracleConfig(domain uint32, data RemoteGasData) GasOracleConfig {
	return GasOracleConfig{Domain: domain, GasOracle: &data}
}

// NewGasOracleRemoval returns a config that removes the remote gas data of domain.
func NewGasOracleRemoval(domain uint32) GasOracleConfig {
	return GasOracleConfig{Domain: domain}
}

// IsRemoval reports whether the config removes the domain's gas oracle.
func (c GasOracleConfig) IsRemoval() bool {
	return c.GasOracle == nil
}

// GasOverheadConfig sets or clears the gas overhead of a single domain.
// A nil GasOverhead means the domain has no overhead.
type GasOverheadConfig struct {
	Domain      uint32  `protobuf:"varint,1,opt,name=domain,proto3" json:"domain" yaml:"domain"`
	GasOverhead *uint64 `protobuf:"varint,2,opt,name=gas_overhead,json=gasOverhead" json:"gas_overhead,omitempty" yaml:"gas_overhead,omitempty"`
}

// NewGasOverheadConfig returns a config that sets the gas overhead of domain.
func NewGasOverheadConfig(domain uint32, overhead uint64) GasOverheadConfig {
	return GasOverheadConfig{Domain: domain, GasOverhead: &overhead}
}

// NewGasOverheadRemoval returns a config that clears the gas overhead of domain.
func NewGasOverheadRemoval(domain uint32) GasOverheadConfig {
	return GasOverheadConfig{Domain: domain}
}

// IsRemoval reports whether the config clears the domain's gas overhead.
func (c GasOverheadConfig) IsRemoval() bool {
	return c.GasOverhead == nil
}

// ValidateGasOracleConfigs rejects the whole batch if a domain appears more than
// once or any remote gas data is out of range.
func ValidateGasOracleConfigs(configs []GasOracleConfig) error {
	if len(configs) == 0 {
		return sdkerrors.Wrap(ErrInvalidConfiguration, "gas oracle configs cannot be empty")
	}

	seen := make(map[uint32]struct{}, len(configs))
	for _, cfg := range configs {
		if _, ok := seen[cfg.Domain]; ok {
			return sdkerrors.Wrapf(ErrInvalidConfiguration, "duplicate domain %d in gas oracle configs", cfg.Domain)
		}
		seen[cfg.Domain] = struct{}{}

		if cfg.IsRemoval() {
			continue
		}

		if err := cfg.GasOracle.Validate(); err != nil {
			return sdkerrors.Wrapf(err, "domain %d", cfg.Domain)
		}
	}

	return nil
}

// ValidateGasOverheadConfigs rejects the whole batch if a domain appears more than once.
func ValidateGasOverheadConfigs(configs []GasOverheadConfig) error {
	if len(configs) == 0 {
		return sdkerrors.Wrap(ErrInvalidConfiguration, "gas overhead configs cannot be empty")
	}

	seen := make(map[uint32]struct{}, len(configs))
	for _, cfg := range configs {
		if _, ok := seen[cfg.Domain]; ok {
			return sdkerrors.Wrapf(ErrInvalidConfiguration, "duplicate domain %d in gas overhead configs", cfg.Domain)
		}
		seen[cfg.Domain] = struct{}{}
	}

	return nil
}
