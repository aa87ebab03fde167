package util

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// EthereumAddress is the identity type used across the SDK. It distinguishes
// the viewer, auction owners and bidders, and is comparable so it can be used
// as a map key.
type EthereumAddress struct {
	address common.Address
}

func NewEthereumAddressFromString(s string) (EthereumAddress, error) {
	if !common.IsHexAddress(s) {
		return EthereumAddress{}, errors.Errorf("invalid ethereum address: %q", s)
	}
	return EthereumAddress{address: common.HexToAddress(s)}, nil
}

func NewEthereumAddressFromBytes(b []byte) (EthereumAddress, error) {
	if len(b) != common.AddressLength {
		return EthereumAddress{}, errors.Errorf("invalid address length: %d", len(b))
	}
	return EthereumAddress{address: common.BytesToAddress(b)}, nil
}

// Address returns the lowercase hex representation, 0x-prefixed.
func (e EthereumAddress) Address() string {
	return strings.ToLower(e.address.Hex())
}

func (e EthereumAddress) Bytes() []byte {
	return e.address.Bytes()
}

func (e EthereumAddress) Equal(other EthereumAddress) bool {
	return e.address == other.address
}

// IsZero reports whether the address is the zero value. A zero identity is
// never a valid viewer, owner or bidder.
func (e EthereumAddress) IsZero() bool {
	return e.address == (common.Address{})
}
