package cggtts

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gnsstools/cggtts/pkg/gnss"
)

// CommonViewClass tells whether a track was produced from a single
// satellite channel or combined from several.
type CommonViewClass int

// Common view classes.
const (
	// ClassSingleChannel marks a track observed on a single channel ("99").
	ClassSingleChannel CommonViewClass = iota + 1
	// ClassMultiChannel marks a track combined from several channels ("FF").
	ClassMultiChannel
)

// ParseCommonViewClass parses the CL column of a track line.
func ParseCommonViewClass(s string) (CommonViewClass, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "99":
		return ClassSingleChannel, nil
	case "FF":
		return ClassMultiChannel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, s)
}

func (c CommonViewClass) String() string {
	if c == ClassMultiChannel {
		return "FF"
	}
	return "99"
}

// TrackData holds the fitted measurements of one track. Time offsets
// are in seconds, drifts in s/s.
type TrackData struct {
	// Refsv is the offset of the satellite clock to the local clock ("REFSV").
	Refsv float64
	// Srsv is the slope of Refsv over the track ("SRSV").
	Srsv float64
	// Refsys is the offset of the reference timescale to the satellite
	// timescale ("REFSYS").
	Refsys float64
	// Srsys is the slope of Refsys over the track ("SRSYS").
	Srsys float64
	// Dsg is the root mean square of the Refsys residuals against the
	// linear fit ("DSG").
	Dsg float64
	// IOE is the issue of ephemeris the solution was computed with.
	IOE uint16
	// Mdtr is the modeled tropospheric delay ("MDTR").
	Mdtr float64
	// Smdt is the slope of Mdtr over the track ("SMDT").
	Smdt float64
	// Mdio is the modeled ionospheric delay ("MDIO").
	Mdio float64
	// Smdi is the slope of Mdio over the track ("SMDI").
	Smdi float64
}

// IonosphericData holds the measured ionospheric delay of a dual
// frequency track. Delays are in seconds, the slope in s/s.
type IonosphericData struct {
	// Msio is the measured ionospheric delay ("MSIO").
	Msio float64
	// Smsi is the slope of Msio over the track ("SMSI").
	Smsi float64
	// Isg is the root mean square of the Msio residuals against the
	// linear fit ("ISG").
	Isg float64
}

// Track is one CGGTTS solution: the fitted common view observation of
// one satellite over one BIPM tracking window.
type Track struct {
	// SV is the tracked satellite.
	SV gnss.PRN
	// Class of the common view observation.
	Class CommonViewClass
	// Epoch is the track start, in UTC.
	Epoch time.Time
	// Duration of the tracking window, conventionally 780 s.
	Duration time.Duration
	// Elevation of the satellite at the track midpoint, in degrees.
	Elevation float64
	// Azimuth of the satellite at the track midpoint, in degrees.
	Azimuth float64
	// Data holds the fitted measurements.
	Data TrackData
	// Iono holds the measured ionospheric delay of dual frequency
	// solutions, nil otherwise.
	Iono *IonosphericData
	// FDMAChannel is the GLONASS frequency channel in [1,24].
	// Zero on the wire means not applicable, as for CDMA constellations.
	FDMAChannel uint8
	// HC is the receiver hardware channel the satellite was tracked on,
	// zero if unknown.
	HC uint8
	// FRC is the carrier frequency mnemonic, like "L1C" or "E1".
	FRC string
}

// HasIonosphericData reports whether this track carries the measured
// ionospheric columns.
func (t *Track) HasIonosphericData() bool {
	return t.Iono != nil
}

// Midpoint returns the time the fitted quantities refer to.
func (t *Track) Midpoint() time.Time {
	return t.Epoch.Add(t.Duration / 2)
}

// FollowsBIPMSpecs reports whether the track lasts the conventional
// BIPM tracking duration of 780 s.
func (t *Track) FollowsBIPMSpecs() bool {
	return t.Duration == BIPMTrackingDuration
}

// UsesConstellation reports whether the track observes the given
// satellite system.
func (t *Track) UsesConstellation(sys gnss.System) bool {
	return t.SV.Sys == sys
}

// Number of space separated fields of a track line.
const (
	trackFields     = 21
	trackFieldsIono = 24
)

// ParseTrack parses one track line. The trailing checksum is verified
// against the line content; a mismatch is logged, not fatal.
func ParseTrack(line string) (*Track, error) {
	trimmed := strings.TrimRight(line, " \t\r\n")
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] > 0x7F {
			return nil, fmt.Errorf("%w: track line byte 0x%02X", ErrNonASCII, trimmed[i])
		}
	}

	fields := strings.Fields(trimmed)
	if len(fields) != trackFields && len(fields) != trackFieldsIono {
		return nil, fmt.Errorf("%w: %d fields", ErrInvalidTrackFormat, len(fields))
	}

	sv, err := gnss.NewPRN(fields[0])
	if err != nil {
		return nil, fmt.Errorf("parse track: %v", err)
	}
	class, err := ParseCommonViewClass(fields[1])
	if err != nil {
		return nil, err
	}

	mjd, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("parse track MJD %q: %v", fields[2], err)
	}
	epoch, err := parseSTTIME(mjd, fields[3])
	if err != nil {
		return nil, err
	}

	durSecs, err := parseScaled(fields[4], fmtTrkl, "TRKL")
	if err != nil {
		return nil, err
	}
	elv, err := parseScaled(fields[5], fmtElv, "ELV")
	if err != nil {
		return nil, err
	}
	azth, err := parseScaled(fields[6], fmtAzth, "AZTH")
	if err != nil {
		return nil, err
	}

	var data TrackData
	for _, col := range []struct {
		dst   *float64
		f     fieldFormat
		name  string
		token string
	}{
		{&data.Refsv, fmtRefsv, "REFSV", fields[7]},
		{&data.Srsv, fmtSrsv, "SRSV", fields[8]},
		{&data.Refsys, fmtRefsys, "REFSYS", fields[9]},
		{&data.Srsys, fmtSrsys, "SRSYS", fields[10]},
		{&data.Dsg, fmtDsg, "DSG", fields[11]},
		{&data.Mdtr, fmtMdtr, "MDTR", fields[13]},
		{&data.Smdt, fmtSmdt, "SMDT", fields[14]},
		{&data.Mdio, fmtMdio, "MDIO", fields[15]},
		{&data.Smdi, fmtSmdi, "SMDI", fields[16]},
	} {
		if *col.dst, err = parseScaled(col.token, col.f, col.name); err != nil {
			return nil, err
		}
	}
	ioe, err := strconv.ParseUint(fields[12], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("parse IOE %q: %v", fields[12], err)
	}
	data.IOE = uint16(ioe)

	trk := &Track{
		SV:        sv,
		Class:     class,
		Epoch:     epoch,
		Duration:  time.Duration(durSecs * float64(time.Second)),
		Elevation: elv,
		Azimuth:   azth,
		Data:      data,
	}

	rest := fields[17:]
	if len(fields) == trackFieldsIono {
		var iono IonosphericData
		if iono.Msio, err = parseScaled(fields[17], fmtMsio, "MSIO"); err != nil {
			return nil, err
		}
		if iono.Smsi, err = parseScaled(fields[18], fmtSmsi, "SMSI"); err != nil {
			return nil, err
		}
		if iono.Isg, err = parseScaled(fields[19], fmtIsg, "ISG"); err != nil {
			return nil, err
		}
		trk.Iono = &iono
		rest = fields[20:]
	}

	fr, err := strconv.ParseUint(rest[0], 16, 8)
	if err != nil {
		return nil, fmt.Errorf("parse FR %q: %v", rest[0], err)
	}
	trk.FDMAChannel = uint8(fr)
	hc, err := strconv.ParseUint(rest[1], 16, 8)
	if err != nil {
		return nil, fmt.Errorf("parse HC %q: %v", rest[1], err)
	}
	trk.HC = uint8(hc)
	trk.FRC = rest[2]

	ck, err := strconv.ParseUint(rest[3], 16, 8)
	if err != nil {
		return nil, fmt.Errorf("%w: track CK %q", ErrChecksumFormat, rest[3])
	}
	// The checksum covers everything up to and including the separator
	// before the CK digits.
	end := strings.LastIndexByte(trimmed, ' ')
	want, err := checksumString(trimmed[:end+1])
	if err != nil {
		return nil, err
	}
	if uint8(ck) != want {
		log.Printf("cggtts: track %s %s: checksum mismatch, got 0x%02X, computed 0x%02X",
			trk.SV, trk.Epoch.Format("2006-01-02 15:04:05"), uint8(ck), want)
	}

	return trk, nil
}

func parseSTTIME(mjd int, token string) (time.Time, error) {
	if len(token) != 6 {
		return time.Time{}, fmt.Errorf("%w: STTIME %q", ErrInvalidTrackFormat, token)
	}
	h, errH := strconv.Atoi(token[0:2])
	m, errM := strconv.Atoi(token[2:4])
	s, errS := strconv.Atoi(token[4:6])
	if errH != nil || errM != nil || errS != nil || h > 23 || m > 59 || s > 60 {
		return time.Time{}, fmt.Errorf("%w: STTIME %q", ErrInvalidTrackFormat, token)
	}
	return TimeFromMJD(mjd).Add(time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute + time.Duration(s)*time.Second), nil
}

// Format renders the track as one CGGTTS line, checksum included, no
// line terminator.
func (t *Track) Format() (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s ", t.SV, t.Class)
	fmt.Fprintf(&b, "%s ", formatScaled(float64(MJDDay(t.Epoch)), fmtMJD))
	h, m, s := t.Epoch.UTC().Clock()
	fmt.Fprintf(&b, "%02d%02d%02d ", h, m, s)
	fmt.Fprintf(&b, "%s ", formatScaled(t.Duration.Seconds(), fmtTrkl))
	fmt.Fprintf(&b, "%s ", formatScaled(t.Elevation, fmtElv))
	fmt.Fprintf(&b, "%s ", formatScaled(t.Azimuth, fmtAzth))
	fmt.Fprintf(&b, "%s ", formatScaled(t.Data.Refsv, fmtRefsv))
	fmt.Fprintf(&b, "%s ", formatScaled(t.Data.Srsv, fmtSrsv))
	fmt.Fprintf(&b, "%s ", formatScaled(t.Data.Refsys, fmtRefsys))
	fmt.Fprintf(&b, "%s ", formatScaled(t.Data.Srsys, fmtSrsys))
	fmt.Fprintf(&b, "%s ", formatScaled(t.Data.Dsg, fmtDsg))
	fmt.Fprintf(&b, "%s ", formatScaled(float64(t.Data.IOE), fmtIoe))
	fmt.Fprintf(&b, "%s ", formatScaled(t.Data.Mdtr, fmtMdtr))
	fmt.Fprintf(&b, "%s ", formatScaled(t.Data.Smdt, fmtSmdt))
	fmt.Fprintf(&b, "%s ", formatScaled(t.Data.Mdio, fmtMdio))
	fmt.Fprintf(&b, "%s ", formatScaled(t.Data.Smdi, fmtSmdi))
	if t.Iono != nil {
		fmt.Fprintf(&b, "%s ", formatScaled(t.Iono.Msio, fmtMsio))
		fmt.Fprintf(&b, "%s ", formatScaled(t.Iono.Smsi, fmtSmsi))
		fmt.Fprintf(&b, "%s ", formatScaled(t.Iono.Isg, fmtIsg))
	}
	fmt.Fprintf(&b, "%2X %2X %3s ", t.FDMAChannel, t.HC, t.FRC)

	ck, err := checksumString(b.String())
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "%02X", ck)
	return b.String(), nil
}
