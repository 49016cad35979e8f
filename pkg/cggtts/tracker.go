package cggtts

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gnsstools/cggtts/pkg/gnss"
)

// FitData is one raw observation fed to a tracker: the instantaneous
// measurements at one sampling epoch. Offsets are in seconds, angles
// in degrees. Mdio and Msio are nil when the receiver does not model
// resp. measure the ionospheric delay.
type FitData struct {
	Refsv     float64
	Refsys    float64
	Mdtr      float64
	Elevation float64
	Azimuth   float64
	Mdio      *float64
	Msio      *float64
}

// FitResult is the outcome of a track fit: the satellite position at
// the track midpoint and the solved track measurements. IOE is left
// zero, it comes from the ephemeris, not from the fit.
type FitResult struct {
	Elevation float64
	Azimuth   float64
	Data      TrackData
	Iono      *IonosphericData
}

// SVTracker buffers the raw observations of one satellite over an
// observation window and reduces them to a CGGTTS track by a linear
// least squares fit.
//
// A SVTracker is not safe for concurrent use.
type SVTracker struct {
	sv     gnss.PRN
	epochs []time.Time
	data   []FitData
}

// NewSVTracker returns an empty tracker for the given satellite.
func NewSVTracker(sv gnss.PRN) *SVTracker {
	return &SVTracker{sv: sv}
}

// SV returns the tracked satellite.
func (tk *SVTracker) SV() gnss.PRN {
	return tk.sv
}

// Sample buffers one observation. Samples must be fed in chronological
// order.
func (tk *SVTracker) Sample(t time.Time, data FitData) error {
	if n := len(tk.epochs); n > 0 && !t.After(tk.epochs[n-1]) {
		return fmt.Errorf("%w: %s", ErrNonMonotonicSample, t.Format(time.RFC3339))
	}
	tk.epochs = append(tk.epochs, t)
	tk.data = append(tk.data, data)
	return nil
}

// NotEmpty reports whether at least one observation is buffered.
func (tk *SVTracker) NotEmpty() bool {
	return len(tk.epochs) > 0
}

// Reset drops all buffered observations, usually at the end of an
// observation window.
func (tk *SVTracker) Reset() {
	tk.epochs = tk.epochs[:0]
	tk.data = tk.data[:0]
}

// CheckGaps verifies that consecutive observations are never further
// apart than the sampling period, returning ErrNonContiguousBuffer on
// the first gap.
func (tk *SVTracker) CheckGaps(sampling time.Duration) error {
	for i := 1; i < len(tk.epochs); i++ {
		if gap := tk.epochs[i].Sub(tk.epochs[i-1]); gap > sampling {
			return fmt.Errorf("%w: %s gap before %s", ErrNonContiguousBuffer,
				gap, tk.epochs[i].Format(time.RFC3339))
		}
	}
	return nil
}

// NoGaps reports whether the non-empty buffer is free of gaps.
func (tk *SVTracker) NoGaps(sampling time.Duration) bool {
	return len(tk.epochs) > 0 && tk.CheckGaps(sampling) == nil
}

// Fit reduces the buffered observations to the track measurements by a
// degree one least squares fit of each quantity, evaluated at the
// track midpoint. The buffer must hold a full tracking duration of
// samples and span the midpoint, otherwise ErrIncompleteTrack resp.
// ErrNotCenteredOnMidpoint is returned.
func (tk *SVTracker) Fit(duration, sampling time.Duration, midpoint time.Time) (*FitResult, error) {
	n := len(tk.epochs)
	if needed := int(math.Ceil(duration.Seconds() / sampling.Seconds())); n < needed {
		return nil, fmt.Errorf("%w: %d of %d samples", ErrIncompleteTrack, n, needed)
	}
	if !tk.epochs[0].Before(midpoint) || !tk.epochs[n-1].After(midpoint) {
		return nil, ErrNotCenteredOnMidpoint
	}

	x := make([]float64, n)
	for i, t := range tk.epochs {
		x[i] = unixSeconds(t)
	}
	tmid := unixSeconds(midpoint)

	refsv, err := fitLine(x, tk.quantity(func(d FitData) float64 { return d.Refsv }))
	if err != nil {
		return nil, err
	}
	refsys, err := fitLine(x, tk.quantity(func(d FitData) float64 { return d.Refsys }))
	if err != nil {
		return nil, err
	}
	mdtr, err := fitLine(x, tk.quantity(func(d FitData) float64 { return d.Mdtr }))
	if err != nil {
		return nil, err
	}
	mdio, err := fitLine(x, tk.quantity(func(d FitData) float64 {
		if d.Mdio != nil {
			return *d.Mdio
		}
		return 0
	}))
	if err != nil {
		return nil, err
	}
	msio, err := fitLine(x, tk.quantity(func(d FitData) float64 {
		if d.Msio != nil {
			return *d.Msio
		}
		return 0
	}))
	if err != nil {
		return nil, err
	}

	refsysMid := refsys.eval(tmid)
	var dsg float64
	for _, xi := range x {
		r := refsys.eval(xi) - refsysMid
		dsg += r * r
	}

	res := &FitResult{
		Data: TrackData{
			Refsv:  refsv.eval(tmid),
			Srsv:   refsv.slope,
			Refsys: refsysMid,
			Srsys:  refsys.slope,
			Dsg:    math.Sqrt(dsg),
			Mdtr:   mdtr.eval(tmid),
			Smdt:   mdtr.slope,
			Mdio:   mdio.eval(tmid),
			Smdi:   mdio.slope,
		},
	}

	hasMsio := false
	for _, d := range tk.data {
		if d.Msio != nil {
			hasMsio = true
			break
		}
	}
	if hasMsio {
		msioMid := msio.eval(tmid)
		var isg float64
		for _, xi := range x {
			r := msio.eval(xi) - msioMid
			isg += r * r
		}
		res.Iono = &IonosphericData{
			Msio: msioMid,
			Smsi: msio.slope,
			Isg:  math.Sqrt(isg),
		}
	}

	res.Elevation, res.Azimuth = tk.positionAt(midpoint)
	return res, nil
}

// positionAt returns elevation and azimuth at t, interpolated between
// the two bracketing samples unless one falls exactly on t. The buffer
// is known to span t.
func (tk *SVTracker) positionAt(t time.Time) (elv, azth float64) {
	i := 0
	for j, epoch := range tk.epochs {
		if epoch.Equal(t) {
			return tk.data[j].Elevation, tk.data[j].Azimuth
		}
		if epoch.Before(t) {
			i = j
		}
	}

	t0, t1 := unixSeconds(tk.epochs[i]), unixSeconds(tk.epochs[i+1])
	w := (unixSeconds(t) - t0) / (t1 - t0)
	d0, d1 := tk.data[i], tk.data[i+1]
	return d0.Elevation + w*(d1.Elevation-d0.Elevation),
		d0.Azimuth + w*(d1.Azimuth-d0.Azimuth)
}

func (tk *SVTracker) quantity(get func(FitData) float64) []float64 {
	y := make([]float64, len(tk.data))
	for i, d := range tk.data {
		y[i] = get(d)
	}
	return y
}

// lineFit is a degree one least squares solution, kept in the mean
// centered form to preserve precision for large abscissae like Unix
// seconds.
type lineFit struct {
	slope  float64
	xm, ym float64
}

func (l lineFit) eval(x float64) float64 {
	return l.ym + l.slope*(x-l.xm)
}

func fitLine(x, y []float64) (lineFit, error) {
	n := float64(len(x))
	var xm, ym float64
	for i := range x {
		xm += x[i]
		ym += y[i]
	}
	xm /= n
	ym /= n

	var sxx, sxy float64
	for i := range x {
		dx := x[i] - xm
		sxx += dx * dx
		sxy += dx * (y[i] - ym)
	}
	if sxx == 0 {
		return lineFit{}, ErrLinearRegression
	}
	return lineFit{slope: sxy / sxx, xm: xm, ym: ym}, nil
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) * 1e-9
}

// SkyTracker runs one SVTracker per satellite in view, so a receiver
// can feed all observations of a window through a single front end.
type SkyTracker struct {
	trackers map[gnss.PRN]*SVTracker
}

// NewSkyTracker returns an empty sky tracker.
func NewSkyTracker() *SkyTracker {
	return &SkyTracker{trackers: map[gnss.PRN]*SVTracker{}}
}

// Sample buffers one observation of the given satellite, creating its
// tracker on first sight.
func (sky *SkyTracker) Sample(sv gnss.PRN, t time.Time, data FitData) error {
	tk, ok := sky.trackers[sv]
	if !ok {
		tk = NewSVTracker(sv)
		sky.trackers[sv] = tk
	}
	return tk.Sample(t, data)
}

// Tracker returns the tracker of the given satellite, nil if it was
// never sampled.
func (sky *SkyTracker) Tracker(sv gnss.PRN) *SVTracker {
	return sky.trackers[sv]
}

// SVs returns all sampled satellites in deterministic order.
func (sky *SkyTracker) SVs() []gnss.PRN {
	svs := make([]gnss.PRN, 0, len(sky.trackers))
	for sv := range sky.trackers {
		svs = append(svs, sv)
	}
	sort.Slice(svs, func(i, j int) bool {
		if svs[i].Sys != svs[j].Sys {
			return svs[i].Sys < svs[j].Sys
		}
		return svs[i].Num < svs[j].Num
	})
	return svs
}

// Reset drops the buffered observations of all satellites.
func (sky *SkyTracker) Reset() {
	for _, tk := range sky.trackers {
		tk.Reset()
	}
}
