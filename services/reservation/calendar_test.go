package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGrid_August2026(t *testing.T) {
	today := time.Date(2026, 8, 29, 15, 30, 0, 0, time.Local)
	grid := MonthGrid(2026, time.August, today)

	assert.Equal(t, 2026, grid.Year)
	assert.Equal(t, 8, grid.Month)

	// August 1st 2026 is a Saturday, so six July days lead the grid.
	require.Len(t, grid.Days, 6+31)
	assert.False(t, grid.Days[0].InMonth)
	assert.Equal(t, 26, grid.Days[0].Day)
	assert.False(t, grid.Days[0].Selectable)
	assert.Equal(t, 1, grid.Days[6].Day)
	assert.True(t, grid.Days[6].InMonth)
}

func TestMonthGrid_PastDaysNotSelectable(t *testing.T) {
	today := time.Date(2026, 8, 29, 15, 30, 0, 0, time.Local)
	grid := MonthGrid(2026, time.August, today)

	for _, d := range grid.Days {
		if !d.InMonth {
			continue
		}
		switch {
		case d.Day < 29:
			assert.False(t, d.Selectable, "day %d", d.Day)
		case d.Day == 29:
			assert.True(t, d.IsToday)
			assert.True(t, d.Selectable)
		default:
			assert.True(t, d.Selectable, "day %d", d.Day)
			assert.False(t, d.IsToday)
		}
	}
}

func TestMonthGrid_WholePastMonthNotSelectable(t *testing.T) {
	today := time.Date(2026, 8, 29, 15, 30, 0, 0, time.Local)
	grid := MonthGrid(2026, time.July, today)

	for _, d := range grid.Days {
		assert.False(t, d.Selectable, "day %d", d.Day)
	}
}

func TestMonthGrid_FutureMonthAllSelectable(t *testing.T) {
	today := time.Date(2026, 8, 29, 15, 30, 0, 0, time.Local)
	grid := MonthGrid(2026, time.September, today)

	for _, d := range grid.Days {
		if d.InMonth {
			assert.True(t, d.Selectable, "day %d", d.Day)
		}
	}
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "2026/8/30", FormatDisplayDate("2026-08-30"))
	assert.Equal(t, "2026/12/5", FormatDisplayDate("2026-12-05"))
	// Unparsable input passes through untouched.
	assert.Equal(t, "oops", FormatDisplayDate("oops"))
}

func TestStaticSlotCatalog(t *testing.T) {
	cat := NewStaticSlotCatalog()

	slots := cat.ListSlots("badminton")
	require.Len(t, slots, 15)
	assert.Equal(t, "06:00-07:00", slots[0].Label())
	assert.Equal(t, "21:00-22:00", slots[len(slots)-1].Label())

	// The grid skips the 12:00-13:00 midday hour.
	for _, s := range slots {
		assert.NotEqual(t, "12:00-13:00", s.Label())
	}

	full := 0
	for _, s := range slots {
		if s.IsFull {
			full++
			assert.Contains(t, []string{"08:00-09:00", "09:00-10:00"}, s.Label())
		}
	}
	assert.Equal(t, 2, full)

	slot, ok := cat.FindSlot("badminton", "18:00-19:00")
	assert.True(t, ok)
	assert.Equal(t, "18:00", slot.Start)

	_, ok = cat.FindSlot("badminton", "12:00-13:00")
	assert.False(t, ok)
}
