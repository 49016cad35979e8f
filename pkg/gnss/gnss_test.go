package gnss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPRN(t *testing.T) {
	assert := assert.New(t)

	prn, err := NewPRN("G12")
	assert.NoError(err)
	assert.Equal(PRN{Sys: SysGPS, Num: 12}, prn)
	assert.Equal("G12", prn.String())

	prn, err = NewPRN("R03")
	assert.NoError(err)
	assert.Equal(PRN{Sys: SysGLO, Num: 3}, prn)
	assert.Equal("R03", prn.String())

	prn, err = NewPRN("G99")
	assert.NoError(err)
	assert.Equal(int8(99), prn.Num)

	_, err = NewPRN("X12")
	assert.Error(err)

	_, err = NewPRN("G00")
	assert.Error(err)

	_, err = NewPRN("G1")
	assert.Error(err)
}

func TestSystemAbbr(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("G", SysGPS.Abbr())
	assert.Equal("E", SysGAL.Abbr())
	assert.Equal("GPS", SysGPS.String())

	sys, err := ParseSystem("C")
	assert.NoError(err)
	assert.Equal(SysBDS, sys)

	_, err = ParseSystem("X")
	assert.Error(err)
}
