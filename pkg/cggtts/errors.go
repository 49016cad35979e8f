package cggtts

import "errors"

// Parsing and formatting errors.
var (
	// ErrNoHeader is returned when the input does not begin with the CGGTTS version line.
	ErrNoHeader = errors.New("cggtts: no header")

	// ErrUnsupportedVersion is returned for any revision other than 2E.
	ErrUnsupportedVersion = errors.New("cggtts: only revision 2E is supported")

	// ErrRevisionDateFormat is returned for a malformed "REV DATE" line.
	ErrRevisionDateFormat = errors.New("cggtts: invalid revision date")

	// ErrChecksumFormat is returned for a non-hex "CKSUM" value.
	ErrChecksumFormat = errors.New("cggtts: invalid checksum format")

	// ErrNonASCII is returned when content that must be pure ASCII is not.
	ErrNonASCII = errors.New("cggtts: non-ASCII data")

	// ErrInvalidTrackFormat is returned when a track line does not have
	// 21 or 24 fields.
	ErrInvalidTrackFormat = errors.New("cggtts: invalid track format")

	// ErrUnknownClass is returned for a common view class other than "99" or "FF".
	ErrUnknownClass = errors.New("cggtts: unknown common view class")

	// ErrInvalidCalibrationID is returned for a malformed CAL_ID value.
	ErrInvalidCalibrationID = errors.New("cggtts: invalid calibration id")

	// ErrMixedTrackLayout is returned by the encoder when some tracks
	// carry ionospheric data and others do not.
	ErrMixedTrackLayout = errors.New("cggtts: mixed ionospheric track layout")
)

// Track fit errors.
var (
	// ErrNonMonotonicSample is returned when samples are not fed in
	// chronological order.
	ErrNonMonotonicSample = errors.New("cggtts: samples must be fed in chronological order")

	// ErrIncompleteTrack is returned when the buffer holds fewer
	// measurements than the tracking duration requires.
	ErrIncompleteTrack = errors.New("cggtts: incomplete track, missing measurements")

	// ErrNotCenteredOnMidpoint is returned when the buffer does not span
	// the track midpoint.
	ErrNotCenteredOnMidpoint = errors.New("cggtts: buffer not centered on track midpoint")

	// ErrNonContiguousBuffer is returned when consecutive samples are
	// further apart than the sampling period.
	ErrNonContiguousBuffer = errors.New("cggtts: buffer contains gaps")

	// ErrLinearRegression is returned when the least squares fit is degenerate.
	ErrLinearRegression = errors.New("cggtts: linear regression failure")
)
