package mytar

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"hash/crc32"

	crc16 "github.com/sigurn/crc16"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

const (
	sumCRC16  = "crc16"
	sumCRC32  = "crc32"
	sumXXHash = "xxhash"
	sumSHA256 = "sha256"
	sumBlake3 = "blake3"
)

var digestNames = []string{sumCRC16, sumCRC32, sumXXHash, sumSHA256, sumBlake3}

func validDigest(name string) bool {
	for _, n := range digestNames {
		if n == name {
			return true
		}
	}
	return false
}

// newHasher returns a hash for the named digest, or nil for an unknown name.
func newHasher(name string) hash.Hash {
	switch name {
	case sumCRC32:
		return crc32.NewIEEE()
	case sumCRC16:
		table := crc16.MakeTable(crc16.CRC16_CCITT_FALSE)
		return crc16.New(table)
	case sumXXHash:
		return xxh3.New()
	case sumSHA256:
		return sha256.New()
	case sumBlake3:
		return blake3.New()
	default:
		return nil
	}
}

// formatDigest renders a member line in the layout of sha256sum(1).
func formatDigest(h hash.Hash, name string) string {
	return hex.EncodeToString(h.Sum(nil)) + "  " + name
}
