package cggtts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gnsstools/cggtts/pkg/gnss"
	"github.com/stretchr/testify/assert"
)

func TestDecodeFile(t *testing.T) {
	assert := assert.New(t)

	f, err := OpenFile(filepath.Join("testdata", "EZSY1860258.007"))
	assert.NoError(err)

	hdr := &f.Header
	assert.Equal(Version2E, hdr.Version)
	assert.Equal("SY82", hdr.Station)
	assert.Equal(uint16(12), hdr.NumChannels)
	assert.Equal("ITRF", hdr.ReferenceFrame)
	assert.Equal(ReferenceTime{Kind: RefCustom, Label: "REF(SY82)"}, hdr.ReferenceTime)
	if assert.NotNil(hdr.Receiver) {
		assert.Equal("18259999", hdr.Receiver.SerialNumber)
	}
	assert.Nil(hdr.IMS)
	assert.InDelta(4314137.334, hdr.APCCoordinates.X, 1e-3)

	assert.Len(f.Tracks, 2)
	assert.Equal(gnss.PRN{Sys: gnss.SysGAL, Num: 3}, f.Tracks[0].SV)
	assert.Equal(gnss.PRN{Sys: gnss.SysGAL, Num: 8}, f.Tracks[1].SV)

	assert.Equal(time.Date(2023, 11, 10, 0, 10, 0, 0, time.UTC), f.Epoch())
	assert.Equal(26*time.Minute, f.TotalDuration())
	assert.True(f.HasIonosphericData())
	assert.True(f.FollowsBIPMSpecs())
	assert.True(f.MultiChannel())
	assert.False(f.SingleChannel())

	class, ok := f.CommonViewClass()
	assert.True(ok)
	assert.Equal(ClassMultiChannel, class)

	sys, ok := f.UniqueConstellation()
	assert.True(ok)
	assert.Equal(gnss.SysGAL, sys)
	assert.True(f.UsesConstellation(gnss.SysGAL))
	assert.False(f.UsesConstellation(gnss.SysGPS))
}

func TestEncodeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join("testdata", "EZSY1860258.007")
	want, err := os.ReadFile(path)
	assert.NoError(err)

	f, err := OpenFile(path)
	assert.NoError(err)

	var buf bytes.Buffer
	assert.NoError(f.Encode(&buf))
	assert.Equal(string(want), buf.String())
}

func TestEncodeMixedLayout(t *testing.T) {
	assert := assert.New(t)

	f, err := OpenFile(filepath.Join("testdata", "EZSY1860258.007"))
	assert.NoError(err)

	f.Tracks[1].Iono = nil
	var buf bytes.Buffer
	assert.ErrorIs(f.Encode(&buf), ErrMixedTrackLayout)
}

func TestFilename(t *testing.T) {
	assert := assert.New(t)

	f, err := OpenFile(filepath.Join("testdata", "EZSY1860258.007"))
	assert.NoError(err)
	assert.Equal("EZSY1860258.007", f.Filename())

	// no receiver serial digits
	f.Header.Receiver = nil
	assert.Equal("EZSY__60258.007", f.Filename())

	// short station names are padded
	f.Header.Station = "P"
	assert.Equal("EZPX__60258.007", f.Filename())

	// no tracks, no epoch
	f.Tracks = nil
	assert.Equal("GMPX__YY.YYY", f.Filename())
}

func TestWriteFile(t *testing.T) {
	assert := assert.New(t)

	f, err := OpenFile(filepath.Join("testdata", "EZSY1860258.007"))
	assert.NoError(err)

	out := filepath.Join(t.TempDir(), f.Filename())
	assert.NoError(f.WriteFile(out))

	again, err := OpenFile(out)
	assert.NoError(err)
	assert.Equal(f.Header.Station, again.Header.Station)
	assert.Len(again.Tracks, len(f.Tracks))
}

func TestMJD(t *testing.T) {
	assert := assert.New(t)

	epoch := time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(60258, MJDDay(epoch))
	assert.Equal(epoch, TimeFromMJD(60258))
	assert.InDelta(60258.5, MJD(epoch.Add(12*time.Hour)), 1e-9)
}
