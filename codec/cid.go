package codec

import (
	"bytes"
	"crypto/sha256"
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/openfund/donation-pipeline/common"
)

const (
	cidVersion1     = 0x01
	codecRaw        = 0x55
	multihashSHA256 = 0x12
	sha256Length    = 0x20
	multibaseBase32 = 'b'
)

var (
	cidPrefix = []byte{cidVersion1, codecRaw, multihashSHA256, sha256Length}
	b32       = base32.StdEncoding.WithPadding(base32.NoPadding)
)

// ContentID is the CIDv1 (raw codec, sha2-256) of data in lower-case
// base32. IPFS yields the same id for a single block added with raw leaves.
func ContentID(data []byte) string {
	digest := sha256.Sum256(data)
	buf := make([]byte, 0, len(cidPrefix)+len(digest))
	buf = append(buf, cidPrefix...)
	buf = append(buf, digest[:]...)
	return string(multibaseBase32) + strings.ToLower(b32.EncodeToString(buf))
}

// ParseContentID returns the sha256 digest carried by id.
func ParseContentID(id string) ([]byte, error) {
	if len(id) < 2 || id[0] != multibaseBase32 {
		return nil, fmt.Errorf("%w: unsupported content id %q", common.ErrInvalidContentID, id)
	}
	raw, err := b32.DecodeString(strings.ToUpper(id[1:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidContentID, err.Error())
	}
	if len(raw) != len(cidPrefix)+sha256.Size || !bytes.Equal(raw[:len(cidPrefix)], cidPrefix) {
		return nil, fmt.Errorf("%w: not a raw sha2-256 cid", common.ErrInvalidContentID)
	}
	return raw[len(cidPrefix):], nil
}

func VerifyContentID(id string, data []byte) error {
	digest, err := ParseContentID(id)
	if err != nil {
		return err
	}
	actual := sha256.Sum256(data)
	if !bytes.Equal(digest, actual[:]) {
		return fmt.Errorf("%w: content does not match %s", common.ErrInvalidContentID, id)
	}
	return nil
}
