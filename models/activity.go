package models

// Captain describes the host of a pickup activity.
type Captain struct {
	Name           string  `json:"name"`
	Avatar         string  `json:"avatar"`
	Rating         float64 `json:"rating"`
	SessionsHosted int     `json:"sessionsHosted"`
	Tag            string  `json:"tag,omitempty"`
}

// Activity is a joinable pickup session hosted by a captain.
type Activity struct {
	ID             string     `json:"id"`
	Type           SportType  `json:"type"`
	Title          string     `json:"title"`
	Venue          string     `json:"venue"`
	Location       string     `json:"location"`
	Level          SkillLevel `json:"level"`
	LevelScore     int        `json:"levelScore"` // 1-10, higher is stronger
	Date           string     `json:"date"`
	Time           string     `json:"time"`
	Duration       string     `json:"duration"`
	CurrentMembers int        `json:"currentMembers"`
	MaxMembers     int        `json:"maxMembers"`
	Captain        Captain    `json:"captain"`
	Price          float64    `json:"price"`
	Description    string     `json:"description"`
	Highlights     []string   `json:"highlights"`
}

// IsFull reports whether the activity has no open spots left.
func (a Activity) IsFull() bool {
	return a.CurrentMembers >= a.MaxMembers
}

// LeaveRequest is a user's request to skip one session of a booked class.
type LeaveRequest struct {
	ID         string `json:"id"`
	BookingID  string `json:"bookingId"`
	SessionOn  string `json:"sessionOn"`
	Reason     string `json:"reason"`
	SubmittedAt string `json:"submittedAt"`
}
