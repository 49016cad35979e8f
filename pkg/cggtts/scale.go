package cggtts

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// fieldFormat describes how one numeric track field is laid out on the
// wire: the scaling between stored and wire units, the minimum column
// width, the signedness and the saturation constant. Reader and writer
// both consult this table so the conventions cannot drift apart.
type fieldFormat struct {
	scale  float64 // wire units per stored unit
	width  int
	signed bool
	sat    int64
}

// Wire layout of the numeric track fields, columns per CGGTTS 2E.
// Stored units are seconds (0.1 ns fields), s/s (0.1 ps/s fields)
// and degrees (0.1 deg fields).
var (
	fmtMJD    = fieldFormat{scale: 1, width: 5, sat: 99_999}
	fmtTrkl   = fieldFormat{scale: 1, width: 4, sat: 9_999}
	fmtElv    = fieldFormat{scale: 10, width: 3, sat: 999}
	fmtAzth   = fieldFormat{scale: 10, width: 4, sat: 9_999}
	fmtRefsv  = fieldFormat{scale: 1e10, width: 11, signed: true, sat: 99_999_999_999}
	fmtSrsv   = fieldFormat{scale: 1e13, width: 6, signed: true, sat: 999_999}
	fmtRefsys = fieldFormat{scale: 1e10, width: 11, signed: true, sat: 99_999_999_999}
	fmtSrsys  = fieldFormat{scale: 1e13, width: 6, signed: true, sat: 999_999}
	fmtDsg    = fieldFormat{scale: 1e10, width: 4, sat: 9_999}
	fmtIoe    = fieldFormat{scale: 1, width: 3, sat: 999}
	fmtMdtr   = fieldFormat{scale: 1e10, width: 4, sat: 9_999}
	fmtSmdt   = fieldFormat{scale: 1e13, width: 4, signed: true, sat: 9_999}
	fmtMdio   = fieldFormat{scale: 1e10, width: 4, sat: 9_999}
	fmtSmdi   = fieldFormat{scale: 1e13, width: 4, signed: true, sat: 9_999}
	fmtMsio   = fieldFormat{scale: 1e10, width: 4, sat: 9_999}
	fmtSmsi   = fieldFormat{scale: 1e13, width: 4, signed: true, sat: 999_999}
	fmtIsg    = fieldFormat{scale: 1e10, width: 3, sat: 9_999}
)

// formatScaled renders a stored value as a right-aligned wire integer.
// Unsigned fields clamp into [0, sat]; signed fields into
// [-sat/10, sat], one digit being reserved for the sign.
func formatScaled(v float64, f fieldFormat) string {
	scaled := int64(math.Round(v * f.scale))
	if scaled < 0 {
		if !f.signed {
			scaled = 0
		} else if scaled < -f.sat/10 {
			scaled = -f.sat / 10
		}
	} else if scaled > f.sat {
		scaled = f.sat
	}
	return fmt.Sprintf("%*d", f.width, scaled)
}

// parseScaled parses a wire integer token back into the stored unit.
// A leading '+' is accepted.
func parseScaled(token string, f fieldFormat, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimPrefix(token, "+"), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %v", field, token, err)
	}
	return v / f.scale, nil
}
