package common

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	"golang.org/x/crypto/blake2b"
)

const (
	AddressPrefixMainnet = "addr"
	AddressPrefixTestnet = "addr_test"

	addressTypeEnterpriseKey = 0x6
	baseAddressLength        = 1 + 2*KeyHashLength
	enterpriseAddressLength  = 1 + KeyHashLength
)

// Address is a decoded shelley style ledger address: a header byte carrying
// the address type and network id, followed by the credential hashes.
type Address struct {
	Prefix string
	Bytes  []byte
}

func AddressPrefixes(network string) []string {
	if strings.EqualFold(network, NetworkMainnet) {
		return []string{AddressPrefixMainnet}
	}
	return []string{AddressPrefixTestnet}
}

func ParseAddress(addr string, prefixes []string) (Address, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return Address{}, fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	prefix, data, err := bech32.DecodeAndConvert(addr)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %s", ErrInvalidAddress, err.Error())
	}

	allowed := false
	for _, p := range prefixes {
		if prefix == p {
			allowed = true
			break
		}
	}
	if !allowed {
		return Address{}, fmt.Errorf("%w: unexpected prefix %q", ErrInvalidAddress, prefix)
	}

	if len(data) < enterpriseAddressLength {
		return Address{}, fmt.Errorf("%w: address too short", ErrInvalidAddress)
	}

	a := Address{Prefix: prefix, Bytes: data}
	switch t := a.Type(); {
	case t <= 0x3:
		if len(data) != baseAddressLength {
			return Address{}, fmt.Errorf("%w: base address must be %d bytes", ErrInvalidAddress, baseAddressLength)
		}
	case t == 0x4 || t == 0x5:
		// pointer addresses carry a variable length pointer after the credential
	case t == 0x6 || t == 0x7:
		if len(data) != enterpriseAddressLength {
			return Address{}, fmt.Errorf("%w: enterprise address must be %d bytes", ErrInvalidAddress, enterpriseAddressLength)
		}
	default:
		return Address{}, fmt.Errorf("%w: not a payment address (type %d)", ErrInvalidAddress, t)
	}

	return a, nil
}

func IsValidAddress(addr string, prefixes []string) bool {
	_, err := ParseAddress(addr, prefixes)
	return err == nil
}

func (a Address) Type() byte {
	return a.Bytes[0] >> 4
}

func (a Address) NetworkID() byte {
	return a.Bytes[0] & 0x0f
}

// PaymentKeyHash returns the key hash of the payment credential. Script
// credentials have no key hash.
func (a Address) PaymentKeyHash() ([]byte, error) {
	if a.Type()%2 != 0 {
		return nil, fmt.Errorf("%w: payment credential is a script", ErrInvalidAddress)
	}
	return a.Bytes[1 : 1+KeyHashLength], nil
}

func (a Address) String() string {
	s, _ := bech32.ConvertAndEncode(a.Prefix, a.Bytes)
	return s
}

// EnterpriseAddress encodes a key-hash payment address without a stake part.
func EnterpriseAddress(prefix string, networkID byte, keyHash []byte) (string, error) {
	if len(keyHash) != KeyHashLength {
		return "", fmt.Errorf("key hash must be %d bytes, got %d", KeyHashLength, len(keyHash))
	}
	data := make([]byte, 0, enterpriseAddressLength)
	data = append(data, addressTypeEnterpriseKey<<4|networkID&0x0f)
	data = append(data, keyHash...)
	return bech32.ConvertAndEncode(prefix, data)
}

// KeyHash is the blake2b-224 digest of a verification key.
func KeyHash(pubKey []byte) []byte {
	h, _ := blake2b.New(KeyHashLength, nil)
	h.Write(pubKey)
	return h.Sum(nil)
}

func NetworkIDFor(network string) byte {
	if strings.EqualFold(network, NetworkMainnet) {
		return 1
	}
	return 0
}

func HexFromBytes(b []byte) string {
	return hex.EncodeToString(b)
}

func BytesFromHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(strings.ToLower(s), "0x"))
}
