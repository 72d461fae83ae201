package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, pickup, ret time.Time) DateRange {
	t.Helper()
	r, err := NewDateRange(pickup, ret)
	assert.NoError(t, err)
	return r
}

func TestNewDateRange_RejectsInvertedAndEmpty(t *testing.T) {
	_, err := NewDateRange(day(10), day(5))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewDateRange(day(5), day(5))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestOverlaps_PartialOverlap(t *testing.T) {
	a := mustRange(t, day(1), day(5))
	b := mustRange(t, day(3), day(7))

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
}

func TestOverlaps_Containment(t *testing.T) {
	outer := mustRange(t, day(1), day(10))
	inner := mustRange(t, day(3), day(5))

	assert.True(t, outer.Overlaps(inner))
	assert.True(t, inner.Overlaps(outer))
}

func TestOverlaps_BackToBackIsNotOverlap(t *testing.T) {
	first := mustRange(t, day(5), day(10))
	second := mustRange(t, day(10), day(15))

	assert.False(t, first.Overlaps(second))
	assert.False(t, second.Overlaps(first))
}

func TestOverlaps_Disjoint(t *testing.T) {
	a := mustRange(t, day(1), day(3))
	b := mustRange(t, day(8), day(12))

	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestDays_WholeDays(t *testing.T) {
	r := mustRange(t, day(1), day(4))
	assert.Equal(t, 3, r.Days())

	r = mustRange(t, day(1), day(2))
	assert.Equal(t, 1, r.Days())
}

func TestDays_PartialDayRoundsUp(t *testing.T) {
	pickup := day(1)
	ret := day(3).Add(6 * time.Hour)
	r := mustRange(t, pickup, ret)
	assert.Equal(t, 3, r.Days())

	r = mustRange(t, pickup, pickup.Add(30*time.Minute))
	assert.Equal(t, 1, r.Days())
}
