package cggtts

import (
	"fmt"
	"strconv"
	"strings"
)

// Code names a carrier/code observable a frequency dependent delay refers to.
type Code int

// Known carrier codes.
const (
	CodeC1 Code = iota + 1
	CodeC2
	CodeP1
	CodeP2
	CodeE1
	CodeE5
	CodeB1
	CodeB2
)

func (c Code) String() string {
	return [...]string{"", "C1", "C2", "P1", "P2", "E1", "E5", "B1", "B2"}[c]
}

// ParseCode parses a carrier code token like "C1".
func ParseCode(s string) (Code, error) {
	for c := CodeC1; c <= CodeB2; c++ {
		if s == c.String() {
			return c, nil
		}
	}
	return Code(0), fmt.Errorf("unknown carrier code: %q", s)
}

// DelayKind discriminates how a frequency dependent delay was determined.
type DelayKind int

// Delay kinds.
const (
	// DelayInternal is a delay internal to the receiver ("INT DLY").
	DelayInternal DelayKind = iota + 1
	// DelaySystemic is a delay of the whole measurement system ("SYS DLY").
	DelaySystemic
)

// Delay is a frequency dependent propagation delay in nanoseconds,
// tagged internal or systemic.
type Delay struct {
	Kind  DelayKind
	Nanos float64
}

// InternalDelay returns an internal delay of the given nanoseconds.
func InternalDelay(nanos float64) Delay {
	return Delay{Kind: DelayInternal, Nanos: nanos}
}

// SystemicDelay returns a systemic delay of the given nanoseconds.
func SystemicDelay(nanos float64) Delay {
	return Delay{Kind: DelaySystemic, Nanos: nanos}
}

// Seconds returns the delay in seconds.
func (d Delay) Seconds() float64 {
	return d.Nanos * 1e-9
}

// CalibrationID identifies the calibration process that determined
// the system delays, written "<process>-<year>" on the wire, "NA" if absent.
type CalibrationID struct {
	// ProcessID is the number of the calibration campaign.
	ProcessID uint16
	// Year of the calibration.
	Year uint16
}

// ParseCalibrationID parses "<process>-<year>". "NA" and malformed
// values are errors; callers decide whether that is fatal.
func ParseCalibrationID(s string) (CalibrationID, error) {
	items := strings.Split(strings.TrimSpace(s), "-")
	if len(items) != 2 {
		return CalibrationID{}, fmt.Errorf("%w: %q", ErrInvalidCalibrationID, s)
	}

	proc, err := strconv.ParseUint(items[0], 10, 16)
	if err != nil {
		return CalibrationID{}, fmt.Errorf("%w: %q", ErrInvalidCalibrationID, s)
	}
	year, err := strconv.ParseUint(items[1], 10, 16)
	if err != nil {
		return CalibrationID{}, fmt.Errorf("%w: %q", ErrInvalidCalibrationID, s)
	}

	return CalibrationID{ProcessID: uint16(proc), Year: uint16(year)}, nil
}

func (c CalibrationID) String() string {
	return fmt.Sprintf("%d-%d", c.ProcessID, c.Year)
}

// CodeDelay is one frequency dependent delay entry of a SystemDelay.
type CodeDelay struct {
	Code  Code
	Delay Delay
}

// SystemDelay describes the calibrated delays of the whole measurement
// chain: the antenna cable, the cable between measurement system and
// local clock, and the frequency dependent receiver/system delays.
// All values are nanoseconds.
type SystemDelay struct {
	// AntennaCableDelay is the delay induced by the antenna cable length ("CAB DLY").
	AntennaCableDelay float64
	// LocalRefDelay is the delay between measurement system and local clock ("REF DLY").
	LocalRefDelay float64
	// FreqDependentDelays lists the per-carrier delays in file order,
	// at most one entry per code.
	FreqDependentDelays []CodeDelay
	// Calibration identifies the calibration process, if any.
	Calibration *CalibrationID
}

// WithAntennaCableDelay sets the antenna cable delay in nanoseconds.
func (sd SystemDelay) WithAntennaCableDelay(nanos float64) SystemDelay {
	sd.AntennaCableDelay = nanos
	return sd
}

// WithLocalRefDelay sets the clock reference cable delay in nanoseconds.
func (sd SystemDelay) WithLocalRefDelay(nanos float64) SystemDelay {
	sd.LocalRefDelay = nanos
	return sd
}

// WithCalibrationID attaches the calibration process identification.
func (sd SystemDelay) WithCalibrationID(cal CalibrationID) SystemDelay {
	sd.Calibration = &cal
	return sd
}

// WithDelay appends a frequency dependent delay, replacing an existing
// entry for the same code.
func (sd SystemDelay) WithDelay(code Code, delay Delay) SystemDelay {
	for i, cd := range sd.FreqDependentDelays {
		if cd.Code == code {
			delays := make([]CodeDelay, len(sd.FreqDependentDelays))
			copy(delays, sd.FreqDependentDelays)
			delays[i].Delay = delay
			sd.FreqDependentDelays = delays
			return sd
		}
	}
	sd.FreqDependentDelays = append(append([]CodeDelay{}, sd.FreqDependentDelays...), CodeDelay{Code: code, Delay: delay})
	return sd
}

// TotalCableDelay returns the frequency independent part of the system
// delay in nanoseconds, affecting all measurements.
func (sd SystemDelay) TotalCableDelay() float64 {
	return sd.AntennaCableDelay + sd.LocalRefDelay
}

// TotalDelay returns the total system delay in nanoseconds for the
// given carrier code. The second return is false if no delay is
// specified for that code.
func (sd SystemDelay) TotalDelay(code Code) (float64, bool) {
	for _, cd := range sd.FreqDependentDelays {
		if cd.Code == code {
			return cd.Delay.Nanos + sd.TotalCableDelay(), true
		}
	}
	return 0, false
}

// TotalDelays returns all frequency dependent delays with the cable
// delays applied, in file order.
func (sd SystemDelay) TotalDelays() []CodeDelay {
	totals := make([]CodeDelay, 0, len(sd.FreqDependentDelays))
	for _, cd := range sd.FreqDependentDelays {
		totals = append(totals, CodeDelay{
			Code:  cd.Code,
			Delay: Delay{Kind: cd.Delay.Kind, Nanos: cd.Delay.Nanos + sd.TotalCableDelay()},
		})
	}
	return totals
}
