package cggtts

import (
	"testing"
	"time"

	"github.com/gnsstools/cggtts/pkg/gnss"
	"github.com/stretchr/testify/assert"
)

const ionoTrackLine = "E03 FF 60258 001000  780 139  548      723788     14        -302    -14    2  76  325  -36   32   -3   20   20   3  0  0  E1 74"

func TestParseTrackWithIonosphericData(t *testing.T) {
	assert := assert.New(t)

	trk, err := ParseTrack(ionoTrackLine)
	assert.NoError(err)

	assert.Equal(gnss.PRN{Sys: gnss.SysGAL, Num: 3}, trk.SV)
	assert.Equal(ClassMultiChannel, trk.Class)
	assert.Equal(time.Date(2023, 11, 10, 0, 10, 0, 0, time.UTC), trk.Epoch)
	assert.Equal(13*time.Minute, trk.Duration)
	assert.InDelta(13.9, trk.Elevation, 1e-9)
	assert.InDelta(54.8, trk.Azimuth, 1e-9)

	assert.InDelta(723788e-10, trk.Data.Refsv, 1e-16)
	assert.InDelta(14e-13, trk.Data.Srsv, 1e-16)
	assert.InDelta(-302e-10, trk.Data.Refsys, 1e-16)
	assert.InDelta(-14e-13, trk.Data.Srsys, 1e-16)
	assert.InDelta(2e-10, trk.Data.Dsg, 1e-16)
	assert.Equal(uint16(76), trk.Data.IOE)
	assert.InDelta(325e-10, trk.Data.Mdtr, 1e-16)
	assert.InDelta(-36e-13, trk.Data.Smdt, 1e-16)
	assert.InDelta(32e-10, trk.Data.Mdio, 1e-16)
	assert.InDelta(-3e-13, trk.Data.Smdi, 1e-16)

	if assert.True(trk.HasIonosphericData()) {
		assert.InDelta(20e-10, trk.Iono.Msio, 1e-16)
		assert.InDelta(20e-13, trk.Iono.Smsi, 1e-16)
		assert.InDelta(3e-10, trk.Iono.Isg, 1e-16)
	}

	assert.Equal(uint8(0), trk.FDMAChannel)
	assert.Equal(uint8(0), trk.HC)
	assert.Equal("E1", trk.FRC)
}

func TestTrackRoundTrip(t *testing.T) {
	assert := assert.New(t)

	trk, err := ParseTrack(ionoTrackLine)
	assert.NoError(err)

	line, err := trk.Format()
	assert.NoError(err)
	assert.Equal(ionoTrackLine, line)
}

func TestParseTrackWithoutIonosphericData(t *testing.T) {
	assert := assert.New(t)

	trk, err := ParseTrack("G07 99 59563 001400  780 347  394     1186342      0         163      0   40   2  141   22   23   -1  0 12 L1C 37")
	assert.NoError(err)

	assert.Equal(gnss.PRN{Sys: gnss.SysGPS, Num: 7}, trk.SV)
	assert.Equal(ClassSingleChannel, trk.Class)
	assert.False(trk.HasIonosphericData())
	assert.Nil(trk.Iono)
	assert.Equal(uint8(0x12), trk.HC)
	assert.Equal("L1C", trk.FRC)
}

func TestParseTrackGlonassChannel(t *testing.T) {
	assert := assert.New(t)

	trk, err := ParseTrack("R09 99 59563 001400  780 347  394     1186342      0         163      0   40   2  141   22   23   -1 15  3 L3P 59")
	assert.NoError(err)
	assert.Equal(gnss.PRN{Sys: gnss.SysGLO, Num: 9}, trk.SV)
	assert.Equal(uint8(0x15), trk.FDMAChannel)
}

func TestParseTrackErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseTrack("G07 99 59563")
	assert.ErrorIs(err, ErrInvalidTrackFormat)

	_, err = ParseTrack("G07 XX 59563 001400  780 347  394     1186342      0         163      0   40   2  141   22   23   -1  0 12 L1C 00")
	assert.ErrorIs(err, ErrUnknownClass)

	_, err = ParseTrack("X07 99 59563 001400  780 347  394     1186342      0         163      0   40   2  141   22   23   -1  0 12 L1C 00")
	assert.Error(err)
}

func TestTrackMidpoint(t *testing.T) {
	trk := &Track{
		Epoch:    time.Date(2023, 11, 10, 0, 10, 0, 0, time.UTC),
		Duration: 780 * time.Second,
	}
	assert.Equal(t, time.Date(2023, 11, 10, 0, 16, 30, 0, time.UTC), trk.Midpoint())
}

func TestFormatScaledSaturation(t *testing.T) {
	assert := assert.New(t)

	// nominal widths
	assert.Equal("     723788", formatScaled(723788e-10, fmtRefsv))
	assert.Equal("    14", formatScaled(14e-13, fmtSrsv))

	// positive values clamp to the saturation constant
	assert.Equal("9999", formatScaled(1.0, fmtDsg))
	assert.Equal("999999", formatScaled(1.0, fmtSrsv))

	// signed fields reserve one digit for the sign
	assert.Equal("-99999", formatScaled(-1.0, fmtSrsv))
	assert.Equal("-9999999999", formatScaled(-1.0, fmtRefsv))

	// unsigned fields clamp negative values at zero
	assert.Equal("  0", formatScaled(-1.0, fmtElv))
	assert.Equal("   0", formatScaled(-2e-10, fmtDsg))
	assert.Equal("   0", formatScaled(-5.0, fmtTrkl))
}

func TestFormatScaledMJDWidth(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("60258", formatScaled(60258, fmtMJD))
	assert.Equal(" 9999", formatScaled(9999, fmtMJD))
}
