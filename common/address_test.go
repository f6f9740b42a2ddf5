package common

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/stretchr/testify/assert"
)

func TestEnterpriseAddress(t *testing.T) {
	keyHash := bytes.Repeat([]byte{0xca}, KeyHashLength)

	t.Run("Testnet", func(t *testing.T) {
		addr, err := EnterpriseAddress(AddressPrefixTestnet, NetworkIDFor(NetworkTestnet), keyHash)

		assert.Nil(t, err)
		assert.Equal(t, "addr_test1vr9v4jk2et9v4jk2et9v4jk2et9v4jk2et9v4jk2et9v4jst0c8dg", addr)
	})

	t.Run("Round Trip", func(t *testing.T) {
		addr, err := EnterpriseAddress(AddressPrefixMainnet, NetworkIDFor(NetworkMainnet), keyHash)
		assert.Nil(t, err)

		parsed, err := ParseAddress(addr, AddressPrefixes(NetworkMainnet))
		assert.Nil(t, err)
		assert.Equal(t, byte(addressTypeEnterpriseKey), parsed.Type())
		assert.Equal(t, byte(1), parsed.NetworkID())
		assert.Equal(t, addr, parsed.String())

		hash, err := parsed.PaymentKeyHash()
		assert.Nil(t, err)
		assert.Equal(t, keyHash, hash)
	})

	t.Run("Bad Key Hash", func(t *testing.T) {
		_, err := EnterpriseAddress(AddressPrefixTestnet, 0, []byte{1, 2, 3})

		assert.NotNil(t, err)
	})
}

func TestParseAddress(t *testing.T) {
	keyHash := bytes.Repeat([]byte{0x11}, KeyHashLength)
	testnet := AddressPrefixes(NetworkTestnet)

	encode := func(t *testing.T, prefix string, data []byte) string {
		addr, err := bech32.ConvertAndEncode(prefix, data)
		assert.Nil(t, err)
		return addr
	}

	t.Run("Base Address", func(t *testing.T) {
		data := append([]byte{0x00}, keyHash...)
		data = append(data, keyHash...)

		parsed, err := ParseAddress(encode(t, AddressPrefixTestnet, data), testnet)

		assert.Nil(t, err)
		assert.Equal(t, byte(0), parsed.Type())
	})

	t.Run("Script Credential Has No Key Hash", func(t *testing.T) {
		data := append([]byte{0x70}, keyHash...)

		parsed, err := ParseAddress(encode(t, AddressPrefixTestnet, data), testnet)
		assert.Nil(t, err)

		_, err = parsed.PaymentKeyHash()
		assert.True(t, errors.Is(err, ErrInvalidAddress))
	})

	invalid := map[string]string{
		"Empty":               "",
		"Not Bech32":          "addr_test1notanaddress",
		"Wrong Network":       encode(t, AddressPrefixMainnet, append([]byte{0x61}, keyHash...)),
		"Too Short":           encode(t, AddressPrefixTestnet, keyHash[:10]),
		"Base Too Short":      encode(t, AddressPrefixTestnet, append([]byte{0x00}, keyHash...)),
		"Enterprise Too Long": encode(t, AddressPrefixTestnet, append(append([]byte{0x60}, keyHash...), 0x01)),
		"Reward Address":      encode(t, AddressPrefixTestnet, append([]byte{0xe0}, keyHash...)),
	}
	for name, addr := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAddress(addr, testnet)

			assert.True(t, errors.Is(err, ErrInvalidAddress))
			assert.True(t, errors.Is(err, ErrValidation))
			assert.False(t, IsValidAddress(addr, testnet))
		})
	}
}

func TestKeyHash(t *testing.T) {
	a := KeyHash([]byte("key-a"))
	b := KeyHash([]byte("key-b"))

	assert.Len(t, a, KeyHashLength)
	assert.Equal(t, a, KeyHash([]byte("key-a")))
	assert.NotEqual(t, a, b)
}

func TestBytesFromHex(t *testing.T) {
	b, err := BytesFromHex("0xCAFE")

	assert.Nil(t, err)
	assert.Equal(t, []byte{0xca, 0xfe}, b)
	assert.Equal(t, "cafe", HexFromBytes(b))
}
