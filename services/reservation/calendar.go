package reservation

import (
	"time"

	"fitapp/models"
)

const dateLayout = "2006-01-02"

// MonthGrid builds the calendar grid for the viewed month. Leading cells
// from the previous month fill the first week; they are never selectable.
// Days strictly before today (local midnight) are not selectable either,
// whichever month is being viewed.
func MonthGrid(year int, month time.Month, today time.Time) models.CalendarMonth {
	today = Midnight(today)

	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	lastDate := first.AddDate(0, 1, -1).Day()
	prevLastDate := first.AddDate(0, 0, -1).Day()
	leading := int(first.Weekday())

	days := make([]models.CalendarDay, 0, leading+lastDate)
	for i := leading - 1; i >= 0; i-- {
		days = append(days, models.CalendarDay{
			Day:     prevLastDate - i,
			InMonth: false,
		})
	}
	for d := 1; d <= lastDate; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, today.Location())
		days = append(days, models.CalendarDay{
			Date:       date.Format(dateLayout),
			Day:        d,
			InMonth:    true,
			IsToday:    date.Equal(today),
			Selectable: !date.Before(today),
		})
	}

	return models.CalendarMonth{Year: year, Month: int(month), Days: days}
}

// Midnight truncates a time to local midnight.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDisplayDate renders a stored date the way the cart shows it,
// e.g. "2026/8/30".
func FormatDisplayDate(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("2006/1/2")
}
