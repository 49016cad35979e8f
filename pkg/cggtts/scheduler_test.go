package cggtts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackOffset(t *testing.T) {
	assert := assert.New(t)

	// published BIPM pattern around the reference day and for a
	// contemporary week
	for mjd, offset := range map[int]time.Duration{
		50721: 6 * time.Minute,
		50722: 2 * time.Minute,
		50723: 14 * time.Minute,
		50724: 10 * time.Minute,
		59507: 14 * time.Minute,
		59508: 10 * time.Minute,
		59509: 6 * time.Minute,
		59510: 2 * time.Minute,
	} {
		assert.Equal(offset, TrackOffset(mjd), "MJD %d", mjd)
	}
}

func TestNextTrackStart(t *testing.T) {
	assert := assert.New(t)

	midnight := TimeFromMJD(ReferenceMJD)

	// one second into the reference day the first window, at +2 min,
	// is still ahead
	next := NextTrackStart(midnight.Add(1 * time.Second))
	assert.Equal(midnight.Add(2*time.Minute), next)

	// in the middle of the third window the next start is the fourth
	next = NextTrackStart(midnight.Add(2*960*time.Second + 120*time.Second + 10*time.Second))
	assert.Equal(midnight.Add(3*960*time.Second+120*time.Second), next)

	// a window start is its own next start
	start := midnight.Add(2 * time.Minute)
	assert.Equal(start, NextTrackStart(start))
}

func TestNextTrackStartAroundMidnight(t *testing.T) {
	assert := assert.New(t)

	// too close to midnight for another full window: the next start is
	// the first window of the following day
	late := TimeFromMJD(50722).Add(24*time.Hour - 5*time.Minute)
	next := NextTrackStart(late)
	assert.Equal(TimeFromMJD(50723).Add(14*time.Minute), next)
}

func TestNextTrackStartMonotonic(t *testing.T) {
	assert := assert.New(t)

	t0 := TimeFromMJD(59509).Add(3 * time.Hour)
	for i := 0; i < 100; i++ {
		next := NextTrackStart(t0)
		assert.False(next.Before(t0))

		after := NextTrackStart(next.Add(time.Second))
		assert.True(after.After(next))
		t0 = next.Add(time.Second)
	}
}

func TestBIPMDurations(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(960*time.Second, BIPMTrackDuration)
	assert.Equal(780*time.Second, BIPMTrackingDuration)
	assert.Equal(180*time.Second, BIPMSetupDuration)
}
