package hash

import (
	"errors"
	"fmt"
	"hash/crc32"
	"strings"
)

// Prefix tags checksum strings with their algorithm.
const Prefix = "crc32c:"

// ErrMismatch is returned when data does not match its recorded checksum.
var ErrMismatch = errors.New("checksum mismatch")

// crc32cTable is pre-computed for CRC32-Castagnoli polynomial.
// Computing this once avoids repeated MakeTable calls.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
// Uses hardware acceleration when available (SSE4.2, ARM CRC).
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// Sum returns the checksum string recorded for a published object,
// e.g. "crc32c:1a2b3c4d".
func Sum(data []byte) string {
	return fmt.Sprintf("%s%08x", Prefix, CRC32C(data))
}

// Verify checks data against a checksum produced by Sum. An empty want
// (objects published without a checksum) always verifies.
func Verify(data []byte, want string) error {
	if want == "" {
		return nil
	}
	if !strings.HasPrefix(want, Prefix) {
		return fmt.Errorf("unsupported checksum %q", want)
	}
	if got := Sum(data); got != want {
		return fmt.Errorf("%w: got %s, want %s", ErrMismatch, got, want)
	}
	return nil
}
