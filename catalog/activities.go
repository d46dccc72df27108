package catalog

import "fitapp/models"

// ActivityRepository serves pickup activities.
type ActivityRepository interface {
	List() []models.Activity
	ListBySport(sport models.SportType) []models.Activity
	GetByID(id string) (models.Activity, error)
}

// MemoryActivityRepo is the seeded in-memory activity repository.
type MemoryActivityRepo struct {
	activities []models.Activity
}

// NewMemoryActivityRepo returns a repository over the seeded activity set.
func NewMemoryActivityRepo() *MemoryActivityRepo {
	return &MemoryActivityRepo{activities: seedActivities()}
}

func (r *MemoryActivityRepo) List() []models.Activity {
	out := make([]models.Activity, len(r.activities))
	copy(out, r.activities)
	return out
}

func (r *MemoryActivityRepo) ListBySport(sport models.SportType) []models.Activity {
	if sport == "" || sport == models.SportAll {
		return r.List()
	}
	var out []models.Activity
	for _, a := range r.activities {
		if a.Type == sport {
			out = append(out, a)
		}
	}
	return out
}

func (r *MemoryActivityRepo) GetByID(id string) (models.Activity, error) {
	for _, a := range r.activities {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Activity{}, ErrNotFound
}

func seedActivities() []models.Activity {
	return []models.Activity{
		{
			ID: "1", Type: models.SportBasketball, Title: "週末籃球友誼賽",
			Venue: "大安運動中心", Location: "台北市大安區辛亥路三段 55 號 B1",
			Level: models.LevelBeginner, LevelScore: 2,
			Date: "明天", Time: "14:00-16:00", Duration: "2 小時",
			CurrentMembers: 6, MaxMembers: 10,
			Captain: models.Captain{Name: "Kevin", Avatar: "👨", Rating: 4.8, SessionsHosted: 89, Tag: "資深隊長"},
			Price:   150, Description: "週末來打球！歡迎初學者和有經驗的球友一起來。",
			Highlights: []string{"提供飲水", "有更衣室", "請自備球鞋"},
		},
		{
			ID: "2", Type: models.SportBadminton, Title: "羽球雙打練習",
			Venue: "信義國小體育館", Location: "台北市信義區松勤路 60 號",
			Level: models.LevelIntermediate, LevelScore: 5,
			Date: "週六", Time: "19:00-20:30", Duration: "1.5 小時",
			CurrentMembers: 3, MaxMembers: 4,
			Captain: models.Captain{Name: "Amy", Avatar: "👩", Rating: 4.9, SessionsHosted: 112},
			Price:   200, Description: "固定徵人，球友程度穩定，包含球場租借與球。",
			Highlights: []string{"含球費", "近捷運站"},
		},
		{
			ID: "3", Type: models.SportVolleyball, Title: "排球六排友誼賽",
			Venue: "中正運動中心", Location: "台北市中正區信義路一段1號",
			Level: models.LevelIntermediate, LevelScore: 4,
			Date: "後天", Time: "18:00-21:00", Duration: "3 小時",
			CurrentMembers: 10, MaxMembers: 12,
			Captain: models.Captain{Name: "Jason", Avatar: "🏐", Rating: 4.7, SessionsHosted: 45},
			Price:   250, Description: "歡迎有基礎的球友一起來玩，流流汗。",
			Highlights: []string{"分組對抗", "專業排球場"},
		},
		{
			ID: "4", Type: models.SportBadminton, Title: "羽球中階暢打",
			Venue: "松山運動中心", Location: "台北市松山區敦化北路1號",
			Level: models.LevelIntermediate, LevelScore: 6,
			Date: "下週一", Time: "20:00-22:00", Duration: "2 小時",
			CurrentMembers: 8, MaxMembers: 16,
			Captain: models.Captain{Name: "王小明", Avatar: "🏸", Rating: 4.9, SessionsHosted: 210},
			Price:   300, Description: "程度約在 6 級左右，謝絕純新手，感謝配合。",
			Highlights: []string{"多場地", "專業級用球"},
		},
		{
			ID: "5", Type: models.SportTennis, Title: "網球雙打對抗",
			Venue: "彩虹河濱公園網球場", Location: "台北市內湖區堤頂大道一段",
			Level: models.LevelAdvanced, LevelScore: 8,
			Date: "下週六", Time: "08:00-10:00", Duration: "2 小時",
			CurrentMembers: 2, MaxMembers: 4,
			Captain: models.Captain{Name: "老張", Avatar: "🎾", Rating: 4.5, SessionsHosted: 32},
			Price:   180, Description: "找球友對打，程度需有比賽經驗。",
			Highlights: []string{"河濱場地", "免費停車"},
		},
	}
}
