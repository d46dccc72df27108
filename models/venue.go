package models

// Sport is a bookable sport entry on the reservation screen.
type Sport struct {
	ID         SportType `json:"id"`
	Label      string    `json:"label"`
	Emoji      string    `json:"emoji"`
	CourtCount int       `json:"courtCount"`
}

// RentalVenue is a venue available for hourly rental.
type RentalVenue struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Type         SportType `json:"type"`
	Area         string    `json:"area"`
	District     string    `json:"district"`
	Location     string    `json:"location"`
	Rating       float64   `json:"rating"`
	Verified     bool      `json:"verified"`
	Popular      bool      `json:"popular"`
	PricePerHour float64   `json:"pricePerHour"`
	Courts       int       `json:"courts"`
	Description  string    `json:"description"`
	Facilities   []string  `json:"facilities"`
	OpenHours    string    `json:"openHours"`
	Phone        string    `json:"phone"`
}

// District is a selectable administrative area.
type District struct {
	City string `json:"city"`
	Name string `json:"name"`
}

// Label returns the combined display form, e.g. "台北市 大安區".
func (d District) Label() string {
	return d.City + " " + d.Name
}
