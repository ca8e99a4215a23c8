package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// igp sentinel errors
var (
	ErrUnauthorized              = sdkerrors.Register(ModuleName, 2, "caller is not authorized")
	ErrUnsupportedDomain         = sdkerrors.Register(ModuleName, 3, "no gas oracle configured for destination domain")
	ErrInsufficientPayment       = sdkerrors.Register(ModuleName, 4, "payment is lower than the quoted gas payment")
	ErrOverflow                  = sdkerrors.Register(ModuleName, 5, "arithmetic overflow")
	ErrInvalidConfiguration      = sdkerrors.Register(ModuleName, 6, "invalid configuration")
	ErrPaymasterNotFound         = sdkerrors.Register(ModuleName, 7, "interchain gas paymaster not found")
	ErrOverheadPaymasterNotFound = sdkerrors.Register(ModuleName, 8, "overhead interchain gas paymaster not found")
	ErrPaymasterExists           = sdkerrors.Register(ModuleName, 9, "interchain gas paymaster already exists")
	ErrInvalidMessageID          = sdkerrors.Register(ModuleName, 10, "invalid message id")
	ErrInvalidSalt               = sdkerrors.Register(ModuleName, 11, "invalid salt")
	ErrInvalidDenom              = sdkerrors.Register(ModuleName, 12, "invalid fee denomination")
)
