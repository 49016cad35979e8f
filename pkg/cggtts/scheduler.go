package cggtts

import "time"

// BIPM common view tracking conventions. Each observation window lasts
// 16 minutes: 3 minutes of receiver setup followed by 13 minutes of
// tracking. The daily pattern shifts by 4 minutes per day so that the
// same satellite geometry repeats after the sidereal drift.
const (
	// ReferenceMJD is the reference day of the BIPM tracking tables.
	ReferenceMJD = 50722

	// BIPMSetupDuration is the receiver warm-up before each track.
	BIPMSetupDuration = 3 * time.Minute
	// BIPMTrackingDuration is the effective tracking period.
	BIPMTrackingDuration = 13 * time.Minute
	// BIPMTrackDuration is the full window, setup included.
	BIPMTrackDuration = BIPMSetupDuration + BIPMTrackingDuration
)

// TrackOffset returns the offset of the first observation window of
// the given day from its midnight.
func TrackOffset(mjd int) time.Duration {
	total := int64(BIPMTrackDuration)
	off := (int64(ReferenceMJD-mjd)*4 + 2) * int64(time.Minute) % total
	if off < 0 {
		off += total
	}
	return time.Duration(off)
}

// NextTrackStart returns the start of the next observation window at
// or after t.
func NextTrackStart(t time.Time) time.Time {
	t = t.UTC()
	mjd := MJDDay(t)
	midnight := TimeFromMJD(mjd)
	elapsed := t.Sub(midnight)

	// A window never spans midnight: close to it, the next window is
	// the first one of the following day.
	if 24*time.Hour-elapsed < BIPMTrackDuration {
		return TimeFromMJD(mjd + 1).Add(TrackOffset(mjd + 1))
	}

	off := TrackOffset(mjd)
	i := (elapsed - off + BIPMTrackDuration - 1) / BIPMTrackDuration
	if i < 0 {
		i = 0
	}
	return midnight.Add(off + i*BIPMTrackDuration)
}

// TimeToNextTrack returns how long to wait from t until the next
// observation window opens.
func TimeToNextTrack(t time.Time) time.Duration {
	return NextTrackStart(t).Sub(t)
}
