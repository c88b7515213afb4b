package util

import (
	"fmt"
	"hash/crc32"
)

// CalculateContentFingerprint returns the CRC32 of the given parts, separated
// so that ("ab","c") and ("a","bc") differ.
func CalculateContentFingerprint(parts ...string) string {
	h := crc32.NewIEEE()
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%08x", h.Sum32())
}
