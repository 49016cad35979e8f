package cggtts

import "fmt"

// Checksum computes the CGGTTS 8-bit checksum over the given content:
// the sum of all bytes modulo 256, with carriage returns and line feeds
// excluded. The content must be pure ASCII.
func Checksum(content []byte) (uint8, error) {
	var ck uint8
	for _, b := range content {
		if b > 0x7F {
			return 0, fmt.Errorf("%w: byte 0x%02X", ErrNonASCII, b)
		}
		if b == '\r' || b == '\n' {
			continue
		}
		ck += b
	}
	return ck, nil
}

// checksumString is Checksum over a string.
func checksumString(content string) (uint8, error) {
	return Checksum([]byte(content))
}
