package reservation

import "fitapp/models"

// SlotCatalog supplies the ordered slot grid for a sport. The default
// catalog serves one shared grid regardless of sport; per-sport or
// per-venue grids plug in behind this interface.
type SlotCatalog interface {
	ListSlots(sport models.SportType) []models.TimeSlot
	FindSlot(sport models.SportType, label string) (models.TimeSlot, bool)
}

// StaticSlotCatalog is the fixed daily grid: hourly slots from 06:00 to
// 22:00 with a midday break, two of them already full.
type StaticSlotCatalog struct {
	slots []models.TimeSlot
}

func NewStaticSlotCatalog() *StaticSlotCatalog {
	return &StaticSlotCatalog{
		slots: []models.TimeSlot{
			{Start: "06:00", End: "07:00"},
			{Start: "07:00", End: "08:00"},
			{Start: "08:00", End: "09:00", IsFull: true},
			{Start: "09:00", End: "10:00", IsFull: true},
			{Start: "10:00", End: "11:00"},
			{Start: "11:00", End: "12:00"},
			{Start: "13:00", End: "14:00"},
			{Start: "14:00", End: "15:00"},
			{Start: "15:00", End: "16:00"},
			{Start: "16:00", End: "17:00"},
			{Start: "17:00", End: "18:00"},
			{Start: "18:00", End: "19:00"},
			{Start: "19:00", End: "20:00"},
			{Start: "20:00", End: "21:00"},
			{Start: "21:00", End: "22:00"},
		},
	}
}

func (c *StaticSlotCatalog) ListSlots(models.SportType) []models.TimeSlot {
	out := make([]models.TimeSlot, len(c.slots))
	copy(out, c.slots)
	return out
}

func (c *StaticSlotCatalog) FindSlot(_ models.SportType, label string) (models.TimeSlot, bool) {
	for _, s := range c.slots {
		if s.Label() == label {
			return s, true
		}
	}
	return models.TimeSlot{}, false
}
