// Package bytesutil provides the small byte- and string-conversion helpers
// shared by the encoder and the COFF builder: little-endian integer
// encoding, fixed-length padded name arrays, and a wall-clock timestamp
// source.
package bytesutil

import (
	"encoding/binary"
	"time"
)

// Uint32ToBytes returns the little-endian 4-byte encoding of v.
func Uint32ToBytes(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// Pad8 returns from, zero-padded (or truncated) to an 8-byte array, used
// for COFF short symbol names and short section names.
func Pad8(from string) [8]byte {
	var to [8]byte
	n := len(from)
	if n > 8 {
		n = 8
	}
	copy(to[:], from[:n])
	return to
}

// Pad18 returns from, zero-padded (or truncated) to an 18-byte array, used
// for the raw-name auxiliary symbol record that follows a `.file` symbol.
func Pad18(from string) [18]byte {
	var to [18]byte
	n := len(from)
	if n > 18 {
		n = 18
	}
	copy(to[:], from[:n])
	return to
}

// ZeroTerminated appends a single 0x00 byte to the UTF-8 encoding of s.
func ZeroTerminated(s string) []byte {
	b := make([]byte, 0, len(s)+1)
	b = append(b, s...)
	b = append(b, 0x0)
	return b
}

// CurrentTimestamp returns the current wall-clock time as seconds since the
// UNIX epoch, truncated to 32 bits. Per design note: this value is cosmetic
// and need not be monotonic or reproducible between runs — callers that need
// byte-reproducible output should supply a fixed value instead (see
// coff.Options.Timestamp).
func CurrentTimestamp() uint32 {
	return uint32(time.Now().Unix())
}
