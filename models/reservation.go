package models

// TimeSlot represents one fixed start/end window in a day's catalog.
// A slot has no identity beyond its label within one day's grid.
type TimeSlot struct {
	Start  string `json:"start"` // "06:00"
	End    string `json:"end"`   // "07:00"
	IsFull bool   `json:"isFull"`
}

// Label returns the "start-end" string used for selection membership.
func (t TimeSlot) Label() string {
	return t.Start + "-" + t.End
}

// Selection is the in-progress, not-yet-committed sport/date/slot choice.
// ChosenSlots preserves toggle order; commit iterates it in order.
type Selection struct {
	Sport       SportType `json:"sport,omitempty"`
	Date        string    `json:"date,omitempty"` // "2006-01-02", empty when unset
	ChosenSlots []string  `json:"chosenSlots"`
}

// ProgressStage is the derived 1-3 wizard stage. It is never stored;
// derive it from a Selection whenever the display needs it.
type ProgressStage int

const (
	StageChooseSport ProgressStage = 1 // nothing chosen yet
	StageChooseSlot  ProgressStage = 2 // sport and date chosen
	StageConfirm     ProgressStage = 3 // at least one slot chosen
)

// Stage derives the wizard stage from the selection contents.
func (s Selection) Stage() ProgressStage {
	switch {
	case len(s.ChosenSlots) > 0:
		return StageConfirm
	case s.Sport != "" && s.Date != "":
		return StageChooseSlot
	default:
		return StageChooseSport
	}
}

// CartItem is one committed reservation line, created at commit time.
type CartItem struct {
	ID        string    `json:"id"`
	Sport     SportType `json:"sport"`
	VenueName string    `json:"venueName"`
	Date      string    `json:"date"` // zh-TW formatted, e.g. "2026/8/30"
	Time      string    `json:"time"` // "start-end" label
	Price     float64   `json:"price"`
}

// ReservationSession holds one visitor's selection and cart between requests.
type ReservationSession struct {
	SessionID string     `json:"sessionId"`
	Selection Selection  `json:"selection"`
	Cart      []CartItem `json:"cart"`
}

// Total sums the cart's prices. Empty cart totals zero.
func (s ReservationSession) Total() float64 {
	var sum float64
	for _, item := range s.Cart {
		sum += item.Price
	}
	return sum
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date       string `json:"date"` // "2006-01-02"
	Day        int    `json:"day"`
	InMonth    bool   `json:"inMonth"`
	IsToday    bool   `json:"isToday"`
	Selectable bool   `json:"selectable"`
}

// CalendarMonth is the grid for one viewed month, leading and trailing
// fill days included so rows always span full weeks.
type CalendarMonth struct {
	Year  int           `json:"year"`
	Month int           `json:"month"` // 1-12
	Days  []CalendarDay `json:"days"`
}
