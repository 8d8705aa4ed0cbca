// Package hash checksums published catalog objects.
//
// Checksums use CRC32-Castagnoli (CRC32C), which Go computes with hardware
// instructions where available. Publish records the checksum of the stored
// bytes in the CURRENT pointer and sources verify it before decoding, so a
// truncated upload or a swapped object is detected instead of decoded.
//
//	sum := hash.Sum(data)          // "crc32c:1a2b3c4d"
//	err := hash.Verify(data, sum)  // nil
package hash
