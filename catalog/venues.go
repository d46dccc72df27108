package catalog

import "fitapp/models"

// VenueRepository serves rental venues and the reservation sport list.
type VenueRepository interface {
	ListVenues() []models.RentalVenue
	FilterVenues(district string, sport models.SportType) []models.RentalVenue
	GetVenueByID(id int) (models.RentalVenue, error)
	ListSports() []models.Sport
}

// MemoryVenueRepo is the seeded in-memory venue repository.
type MemoryVenueRepo struct {
	venues []models.RentalVenue
	sports []models.Sport
}

func NewMemoryVenueRepo() *MemoryVenueRepo {
	return &MemoryVenueRepo{venues: seedVenues(), sports: seedSports()}
}

func (r *MemoryVenueRepo) ListVenues() []models.RentalVenue {
	out := make([]models.RentalVenue, len(r.venues))
	copy(out, r.venues)
	return out
}

func (r *MemoryVenueRepo) FilterVenues(district string, sport models.SportType) []models.RentalVenue {
	var out []models.RentalVenue
	for _, v := range r.venues {
		if district != "" && v.District != district {
			continue
		}
		if sport != "" && sport != models.SportAll && v.Type != sport {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (r *MemoryVenueRepo) GetVenueByID(id int) (models.RentalVenue, error) {
	for _, v := range r.venues {
		if v.ID == id {
			return v, nil
		}
	}
	return models.RentalVenue{}, ErrNotFound
}

// ListSports returns the sport cards shown on the reservation screen.
func (r *MemoryVenueRepo) ListSports() []models.Sport {
	out := make([]models.Sport, len(r.sports))
	copy(out, r.sports)
	return out
}

func seedSports() []models.Sport {
	return []models.Sport{
		{ID: models.SportBadminton, Label: "羽球", Emoji: "🏸", CourtCount: 6},
		{ID: models.SportBasketball, Label: "籃球", Emoji: "🏀", CourtCount: 2},
		{ID: models.SportVolleyball, Label: "排球", Emoji: "🏐", CourtCount: 2},
		{ID: models.SportTableTennis, Label: "桌球", Emoji: "🏓", CourtCount: 4},
	}
}

func seedVenues() []models.RentalVenue {
	return []models.RentalVenue{
		{
			ID: 1, Name: "大安運動中心", Type: models.SportBadminton,
			Area: "A區", District: "大安區", Location: "台北市大安區辛亥路三段 55 號",
			Rating: 4.8, Verified: true, Popular: true, PricePerHour: 300, Courts: 6,
			Description: "市中心交通便利，羽球場地品質佳。",
			Facilities:  []string{"更衣室", "淋浴間", "停車場", "飲水機"},
			OpenHours:   "06:00-22:00", Phone: "02-2377-7777",
		},
		{
			ID: 2, Name: "信義運動中心", Type: models.SportBasketball,
			Area: "B區", District: "信義區", Location: "台北市信義區松勤路 100 號",
			Rating: 4.6, Verified: true, Popular: false, PricePerHour: 400, Courts: 2,
			Description: "標準籃球全場，夜間照明完善。",
			Facilities:  []string{"更衣室", "置物櫃", "飲水機"},
			OpenHours:   "07:00-22:00", Phone: "02-2722-8888",
		},
		{
			ID: 3, Name: "中正運動中心", Type: models.SportVolleyball,
			Area: "A區", District: "中正區", Location: "台北市中正區信義路一段 1 號",
			Rating: 4.5, Verified: true, Popular: true, PricePerHour: 350, Courts: 2,
			Description: "室內排球場，木質地板。",
			Facilities:  []string{"更衣室", "淋浴間", "飲水機"},
			OpenHours:   "06:00-22:00", Phone: "02-2321-9999",
		},
		{
			ID: 4, Name: "松山桌球館", Type: models.SportTableTennis,
			Area: "C區", District: "松山區", Location: "台北市松山區敦化北路 1 號",
			Rating: 4.7, Verified: false, Popular: false, PricePerHour: 150, Courts: 4,
			Description: "專業桌球教室，附球具租借。",
			Facilities:  []string{"球具租借", "飲水機"},
			OpenHours:   "09:00-21:00", Phone: "02-2545-6666",
		},
	}
}
