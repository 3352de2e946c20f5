package erc8021

import (
	"fmt"

	"github.com/lunar-sanctum/sanctum-sdk-go/pkg/shared"
)

// NewPayload builds the suffix for appCode and attaches the checksummed
// target address it is presented with.
func NewPayload(targetAddress string, appCode string) (Payload, error) {
	if !shared.IsEVMAddress(targetAddress) {
		return Payload{}, fmt.Errorf("%w: %q", ErrInvalidTargetAddress, targetAddress)
	}

	return Payload{
		TargetAddress: shared.ChecksumEVMAddress(targetAddress),
		AppCode:       appCode,
		SchemaID:      SchemaCanonical,
		Suffix:        BuildSuffix(appCode),
	}, nil
}
