package models

// SportType identifies a sport category across the app.
type SportType string

const (
	SportAll         SportType = "all"
	SportBasketball  SportType = "basketball"
	SportBadminton   SportType = "badminton"
	SportVolleyball  SportType = "volleyball"
	SportTableTennis SportType = "tabletennis"
	SportTennis      SportType = "tennis"
	SportSoccer      SportType = "soccer"
	SportSwimming    SportType = "swimming"
	SportFitness     SportType = "fitness"
)

// SportLabels maps sport ids to their zh-TW display labels.
var SportLabels = map[SportType]string{
	SportAll:         "全部",
	SportBasketball:  "籃球",
	SportBadminton:   "羽球",
	SportVolleyball:  "排球",
	SportTableTennis: "桌球",
	SportTennis:      "網球",
	SportSoccer:      "足球",
	SportSwimming:    "游泳",
	SportFitness:     "健身",
}

// SportIcons maps sport ids to their emoji markers.
var SportIcons = map[SportType]string{
	SportAll:         "🌟",
	SportBasketball:  "🏀",
	SportBadminton:   "🏸",
	SportVolleyball:  "🏐",
	SportTableTennis: "🏓",
	SportTennis:      "🎾",
	SportSoccer:      "⚽",
	SportSwimming:    "🏊‍♂️",
	SportFitness:     "💪",
}

// SkillLevel grades an activity's expected ability.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
)

// LevelLabels maps skill levels to their zh-TW display labels.
var LevelLabels = map[SkillLevel]string{
	LevelBeginner:     "初階",
	LevelIntermediate: "中階",
	LevelAdvanced:     "進階",
}

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
