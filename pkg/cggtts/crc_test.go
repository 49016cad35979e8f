package cggtts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	assert := assert.New(t)

	ck, err := checksumString("R24 FF 57000 000600  780 347 394 +1186342 +0 163 +0 40 2 141 +22 23 -1 23 -1 29 +2 0 L3P")
	assert.NoError(err)
	assert.Equal(uint8(0x0F), ck)

	ck, err = checksumString("G99 99 59509 002200 0780 099 0099 +9999999999 +99999 +9999989831   -724    35 999 9999 +999 9999 +999 00 00 L1C")
	assert.NoError(err)
	assert.Equal(uint8(0x71), ck)
}

func TestChecksumIgnoresLineBreaks(t *testing.T) {
	assert := assert.New(t)

	plain, err := checksumString("abc")
	assert.NoError(err)
	wrapped, err := checksumString("a\r\nb\nc\n")
	assert.NoError(err)
	assert.Equal(plain, wrapped)
}

func TestChecksumNonASCII(t *testing.T) {
	_, err := checksumString("café")
	assert.ErrorIs(t, err, ErrNonASCII)
}
