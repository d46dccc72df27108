package models

// Team is a coached course team (e.g. a badminton academy).
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Sport       SportType `json:"sport"`
	Coach       string    `json:"coach"`
	Rating      float64   `json:"rating"`
	District    string    `json:"district"`
	Description string    `json:"description"`
	LocationIDs []string  `json:"locationIds"`
}

// TeamLocation is one venue where a team runs classes.
type TeamLocation struct {
	ID      string `json:"id"`
	TeamID  string `json:"teamId"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// TeamClass is a bookable class session run by a team at a location.
type TeamClass struct {
	ID         string     `json:"id"`
	TeamID     string     `json:"teamId"`
	LocationID string     `json:"locationId"`
	Title      string     `json:"title"`
	Level      SkillLevel `json:"level"`
	Weekday    string     `json:"weekday"`
	Time       string     `json:"time"`
	Price      float64    `json:"price"`
	Spots      int        `json:"spots"`
}
