package catalog

import "fitapp/models"

// CourseRepository serves team courses, their locations and classes.
type CourseRepository interface {
	ListTeams(district string) []models.Team
	GetTeamByID(id string) (models.Team, error)
	ListLocations(teamID string) []models.TeamLocation
	ListClasses(teamID, locationID string) []models.TeamClass
	GetClassByID(classID string) (models.TeamClass, error)
}

// MemoryCourseRepo is the seeded in-memory course repository.
type MemoryCourseRepo struct {
	teams     []models.Team
	locations []models.TeamLocation
	classes   []models.TeamClass
}

func NewMemoryCourseRepo() *MemoryCourseRepo {
	return &MemoryCourseRepo{
		teams: []models.Team{
			{
				ID: "t1", Name: "飛羽羽球學院", Sport: models.SportBadminton,
				Coach: "陳教練", Rating: 4.9, District: "大安區",
				Description: "從基礎握拍到雙打戰術的系統課程。",
				LocationIDs: []string{"l1", "l2"},
			},
			{
				ID: "t2", Name: "灌籃籃球營", Sport: models.SportBasketball,
				Coach: "林教練", Rating: 4.7, District: "信義區",
				Description: "青少年籃球體能與投籃訓練。",
				LocationIDs: []string{"l3"},
			},
		},
		locations: []models.TeamLocation{
			{ID: "l1", TeamID: "t1", Name: "大安運動中心", Address: "台北市大安區辛亥路三段 55 號"},
			{ID: "l2", TeamID: "t1", Name: "信義國小體育館", Address: "台北市信義區松勤路 60 號"},
			{ID: "l3", TeamID: "t2", Name: "信義運動中心", Address: "台北市信義區松勤路 100 號"},
		},
		classes: []models.TeamClass{
			{ID: "c1", TeamID: "t1", LocationID: "l1", Title: "羽球初階班", Level: models.LevelBeginner, Weekday: "週二", Time: "19:00-21:00", Price: 450, Spots: 8},
			{ID: "c2", TeamID: "t1", LocationID: "l1", Title: "羽球中階班", Level: models.LevelIntermediate, Weekday: "週四", Time: "19:00-21:00", Price: 500, Spots: 6},
			{ID: "c3", TeamID: "t1", LocationID: "l2", Title: "雙打戰術班", Level: models.LevelAdvanced, Weekday: "週六", Time: "09:00-11:00", Price: 600, Spots: 4},
			{ID: "c4", TeamID: "t2", LocationID: "l3", Title: "青少年籃球班", Level: models.LevelBeginner, Weekday: "週日", Time: "14:00-16:00", Price: 400, Spots: 12},
		},
	}
}

func (r *MemoryCourseRepo) ListTeams(district string) []models.Team {
	var out []models.Team
	for _, t := range r.teams {
		if district != "" && t.District != district {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (r *MemoryCourseRepo) GetTeamByID(id string) (models.Team, error) {
	for _, t := range r.teams {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Team{}, ErrNotFound
}

func (r *MemoryCourseRepo) ListLocations(teamID string) []models.TeamLocation {
	var out []models.TeamLocation
	for _, l := range r.locations {
		if l.TeamID == teamID {
			out = append(out, l)
		}
	}
	return out
}

func (r *MemoryCourseRepo) ListClasses(teamID, locationID string) []models.TeamClass {
	var out []models.TeamClass
	for _, c := range r.classes {
		if c.TeamID != teamID {
			continue
		}
		if locationID != "" && c.LocationID != locationID {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (r *MemoryCourseRepo) GetClassByID(classID string) (models.TeamClass, error) {
	for _, c := range r.classes {
		if c.ID == classID {
			return c, nil
		}
	}
	return models.TeamClass{}, ErrNotFound
}
