package cggtts

import "time"

// The Modified Julian Day epoch 1858-11-17T00:00:00 UTC (JD 2400000.5).
var mjdEpoch = time.Date(1858, 11, 17, 0, 0, 0, 0, time.UTC)

// MJD returns the Modified Julian Day of t, including the fractional day part.
func MJD(t time.Time) float64 {
	return float64(t.UTC().Sub(mjdEpoch)) / float64(24*time.Hour)
}

// MJDDay returns the integer Modified Julian Day containing t.
func MJDDay(t time.Time) int {
	return int(t.UTC().Sub(mjdEpoch) / (24 * time.Hour))
}

// TimeFromMJD returns the UTC start of the given integer Modified Julian Day.
func TimeFromMJD(mjd int) time.Time {
	return mjdEpoch.Add(time.Duration(mjd) * 24 * time.Hour)
}
