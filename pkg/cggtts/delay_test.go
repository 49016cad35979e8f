package cggtts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemDelay(t *testing.T) {
	assert := assert.New(t)

	sd := SystemDelay{}.
		WithAntennaCableDelay(23.9).
		WithLocalRefDelay(4.2).
		WithDelay(CodeE1, InternalDelay(53.9)).
		WithDelay(CodeE5, InternalDelay(97.3))

	assert.InDelta(28.1, sd.TotalCableDelay(), 1e-9)

	total, ok := sd.TotalDelay(CodeE1)
	assert.True(ok)
	assert.InDelta(53.9+28.1, total, 1e-9)

	_, ok = sd.TotalDelay(CodeC1)
	assert.False(ok)

	totals := sd.TotalDelays()
	assert.Len(totals, 2)
	assert.Equal(CodeE1, totals[0].Code)
	assert.InDelta(82.0, totals[0].Delay.Nanos, 1e-9)
	assert.Equal(CodeE5, totals[1].Code)
	assert.InDelta(125.4, totals[1].Delay.Nanos, 1e-9)
}

func TestSystemDelayReplacesSameCode(t *testing.T) {
	assert := assert.New(t)

	sd := SystemDelay{}.
		WithDelay(CodeC1, InternalDelay(10)).
		WithDelay(CodeC1, InternalDelay(20))

	assert.Len(sd.FreqDependentDelays, 1)
	assert.InDelta(20, sd.FreqDependentDelays[0].Delay.Nanos, 1e-9)
}

func TestDelaySeconds(t *testing.T) {
	assert.InDelta(t, 53.9e-9, InternalDelay(53.9).Seconds(), 1e-18)
}

func TestParseCalibrationID(t *testing.T) {
	assert := assert.New(t)

	cal, err := ParseCalibrationID("1234-2021")
	assert.NoError(err)
	assert.Equal(CalibrationID{ProcessID: 1234, Year: 2021}, cal)
	assert.Equal("1234-2021", cal.String())

	_, err = ParseCalibrationID("NA")
	assert.ErrorIs(err, ErrInvalidCalibrationID)

	_, err = ParseCalibrationID("12-34-56")
	assert.ErrorIs(err, ErrInvalidCalibrationID)
}

func TestParseCode(t *testing.T) {
	assert := assert.New(t)

	for _, s := range []string{"C1", "C2", "P1", "P2", "E1", "E5", "B1", "B2"} {
		code, err := ParseCode(s)
		assert.NoError(err)
		assert.Equal(s, code.String())
	}

	_, err := ParseCode("L5")
	assert.Error(err)
}
