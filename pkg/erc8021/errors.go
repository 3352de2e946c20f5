package erc8021

import "errors"

var (
	ErrInvalidAppCode       = errors.New("invalid attribution code")
	ErrAppCodeTooLong       = errors.New("attribution code exceeds length prefix capacity")
	ErrUnalignedSuffix      = errors.New("attribution suffix is not byte aligned")
	ErrInvalidTargetAddress = errors.New("invalid target address")
	ErrOperatorRequired     = errors.New("operator account is required")
)
