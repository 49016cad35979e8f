// Package cggtts reads and writes CGGTTS files, the BIPM standardized
// format for common view GNSS time transfer, and fits raw observations
// into CGGTTS tracks. Only format revision 2E is supported.
package cggtts

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gnsstools/cggtts/pkg/gnss"
	"github.com/mholt/archiver/v3"
)

// CGGTTS is one CGGTTS file: the header and the solved tracks in
// chronological order.
type CGGTTS struct {
	Header Header
	Tracks []*Track
}

// Decode reads and decodes a whole CGGTTS stream.
func Decode(r io.Reader) (*CGGTTS, error) {
	dec, err := NewDecoder(r)
	if err != nil {
		return nil, err
	}

	c := &CGGTTS{Header: *dec.Header}
	for dec.NextTrack() {
		c.Tracks = append(c.Tracks, dec.Track())
	}
	return c, dec.Err()
}

// OpenFile decodes the CGGTTS file with the given path. Gzip
// compressed files are decompressed on the fly.
func OpenFile(path string) (*CGGTTS, error) {
	if strings.HasSuffix(path, ".gz") {
		tmp := filepath.Join(os.TempDir(), strings.TrimSuffix(filepath.Base(path), ".gz"))
		if err := archiver.DecompressFile(path, tmp); err != nil {
			return nil, fmt.Errorf("decompress %s: %v", path, err)
		}
		defer os.Remove(tmp)
		path = tmp
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// WriteFile encodes the CGGTTS to the file with the given path.
// A ".gz" path compresses the encoded file.
func (c *CGGTTS) WriteFile(path string) error {
	plain := strings.TrimSuffix(path, ".gz")

	f, err := os.Create(plain)
	if err != nil {
		return err
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if plain != path {
		if err := archiver.CompressFile(plain, path); err != nil {
			return fmt.Errorf("compress %s: %v", path, err)
		}
		return os.Remove(plain)
	}
	return nil
}

// Epoch returns the epoch of the first track, the zero time if the
// file has no tracks.
func (c *CGGTTS) Epoch() time.Time {
	if len(c.Tracks) == 0 {
		return time.Time{}
	}
	return c.Tracks[0].Epoch
}

// TotalDuration returns the cumulated duration of all tracks.
func (c *CGGTTS) TotalDuration() time.Duration {
	var d time.Duration
	for _, trk := range c.Tracks {
		d += trk.Duration
	}
	return d
}

// HasIonosphericData reports whether all tracks carry measured
// ionospheric data, i.e. the file uses the dual frequency layout.
func (c *CGGTTS) HasIonosphericData() bool {
	if len(c.Tracks) == 0 {
		return false
	}
	for _, trk := range c.Tracks {
		if !trk.HasIonosphericData() {
			return false
		}
	}
	return true
}

// CommonViewClass returns the class shared by all tracks. ok is false
// for an empty file or mixed classes.
func (c *CGGTTS) CommonViewClass() (class CommonViewClass, ok bool) {
	if len(c.Tracks) == 0 {
		return 0, false
	}
	class = c.Tracks[0].Class
	for _, trk := range c.Tracks[1:] {
		if trk.Class != class {
			return 0, false
		}
	}
	return class, true
}

// SingleChannel reports whether all tracks are single channel solutions.
func (c *CGGTTS) SingleChannel() bool {
	class, ok := c.CommonViewClass()
	return ok && class == ClassSingleChannel
}

// MultiChannel reports whether all tracks are multi channel solutions.
func (c *CGGTTS) MultiChannel() bool {
	class, ok := c.CommonViewClass()
	return ok && class == ClassMultiChannel
}

// FollowsBIPMSpecs reports whether all tracks last the conventional
// BIPM tracking duration of 780 s.
func (c *CGGTTS) FollowsBIPMSpecs() bool {
	if len(c.Tracks) == 0 {
		return false
	}
	for _, trk := range c.Tracks {
		if trk.Duration != BIPMTrackingDuration {
			return false
		}
	}
	return true
}

// UsesConstellation reports whether at least one track observes the
// given satellite system.
func (c *CGGTTS) UsesConstellation(sys gnss.System) bool {
	for _, trk := range c.Tracks {
		if trk.SV.Sys == sys {
			return true
		}
	}
	return false
}

// UniqueConstellation returns the satellite system all tracks share.
// ok is false for an empty file or mixed constellations.
func (c *CGGTTS) UniqueConstellation() (sys gnss.System, ok bool) {
	if len(c.Tracks) == 0 {
		return 0, false
	}
	sys = c.Tracks[0].SV.Sys
	for _, trk := range c.Tracks[1:] {
		if trk.SV.Sys != sys {
			return 0, false
		}
	}
	return sys, true
}

// dominantConstellation returns the system most tracks observe,
// SysGPS for an empty file.
func (c *CGGTTS) dominantConstellation() gnss.System {
	counts := map[gnss.System]int{}
	for _, trk := range c.Tracks {
		counts[trk.SV.Sys]++
	}

	dominant, best := gnss.SysGPS, 0
	for _, trk := range c.Tracks {
		if n := counts[trk.SV.Sys]; n > best {
			dominant, best = trk.SV.Sys, n
		}
	}
	return dominant
}

// SVTracks returns the tracks observing the given satellite.
func (c *CGGTTS) SVTracks(sv gnss.PRN) []*Track {
	var tracks []*Track
	for _, trk := range c.Tracks {
		if trk.SV == sv {
			tracks = append(tracks, trk)
		}
	}
	return tracks
}

// ConstellationTracks returns the tracks observing the given satellite system.
func (c *CGGTTS) ConstellationTracks(sys gnss.System) []*Track {
	var tracks []*Track
	for _, trk := range c.Tracks {
		if trk.SV.Sys == sys {
			tracks = append(tracks, trk)
		}
	}
	return tracks
}

// Filename returns the conventional file name "<C><F><LL><II>MM.DDD":
// the dominant constellation letter, a frequency/channel code, the
// first two characters of the station, the first two digits of the
// receiver serial number and the fractional MJD of the first track.
func (c *CGGTTS) Filename() string {
	var b strings.Builder

	b.WriteString(c.dominantConstellation().Abbr())

	switch {
	case c.HasIonosphericData():
		b.WriteByte('Z') // dual frequency
	case c.SingleChannel():
		b.WriteByte('S')
	default:
		b.WriteByte('M')
	}

	station := strings.ToUpper(c.Header.Station)
	for len(station) < 2 {
		station += "X"
	}
	b.WriteString(station[:2])

	id := "__"
	if rx := c.Header.Receiver; rx != nil && len(rx.SerialNumber) >= 2 &&
		isDigits(rx.SerialNumber[:2]) {
		id = rx.SerialNumber[:2]
	}
	b.WriteString(id)

	if len(c.Tracks) == 0 {
		b.WriteString("YY.YYY")
		return b.String()
	}
	mjd := MJD(c.Tracks[0].Epoch)
	day := math.Floor(mjd)
	fmt.Fprintf(&b, "%d.%03d", int(day), int(math.Round((mjd-day)*1000)))
	return b.String()
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
