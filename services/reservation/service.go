package reservation

import (
	"context"
	"encoding/json"
	"time"

	"fitapp/catalog"
	"fitapp/models"
	"fitapp/services/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderScheduler enqueues a reminder for a committed reservation.
// The cron package provides the asynq-backed implementation.
type ReminderScheduler interface {
	ScheduleReminder(p models.ReminderPayload) error
}

// Service drives the venue reservation flow: selection state transitions,
// cart mutation and the derived projections over both.
type Service interface {
	StartSession(ctx context.Context) (models.ReservationSession, error)
	GetSession(ctx context.Context, sessionID string) (models.ReservationSession, error)
	SelectSport(ctx context.Context, sessionID string, sport models.SportType) (models.ReservationSession, error)
	SelectDay(ctx context.Context, sessionID, date string) (models.ReservationSession, error)
	ToggleSlot(ctx context.Context, sessionID, label string) (models.ReservationSession, error)
	CommitSelection(ctx context.Context, sessionID string) (models.ReservationSession, int, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (models.ReservationSession, error)
	Checkout(ctx context.Context, sessionID string) (models.ReservationSession, float64, error)
}

// DefaultReservationService is the session-store-backed implementation.
type DefaultReservationService struct {
	Catalog   SlotCatalog
	Venues    catalog.VenueRepository
	Sessions  session.Store
	Scheduler ReminderScheduler // optional
	UnitPrice float64
	Logger    *zap.Logger
	Now       func() time.Time
}

func (s *DefaultReservationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultReservationService) StartSession(ctx context.Context) (models.ReservationSession, error) {
	sess := models.ReservationSession{
		SessionID: uuid.New().String(),
		Selection: models.Selection{ChosenSlots: []string{}},
		Cart:      []models.CartItem{},
	}
	if err := s.save(ctx, sess); err != nil {
		return models.ReservationSession{}, err
	}
	return sess, nil
}

func (s *DefaultReservationService) GetSession(ctx context.Context, sessionID string) (models.ReservationSession, error) {
	return s.load(ctx, sessionID)
}

func (s *DefaultReservationService) SelectSport(ctx context.Context, sessionID string, sport models.SportType) (models.ReservationSession, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return models.ReservationSession{}, err
	}
	if !s.sportExists(sport) {
		return sess, ErrUnknownSport
	}
	sess.Selection.Sport = sport
	if err := s.save(ctx, sess); err != nil {
		return models.ReservationSession{}, err
	}
	return sess, nil
}

// SelectDay sets the selection's date and clears the chosen slots.
// Days strictly before today are a silent no-op: the returned session is
// unchanged, mirroring a disabled calendar cell.
func (s *DefaultReservationService) SelectDay(ctx context.Context, sessionID, date string) (models.ReservationSession, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return models.ReservationSession{}, err
	}
	day, err := time.ParseInLocation(dateLayout, date, s.now().Location())
	if err != nil {
		return sess, ErrInvalidDate
	}
	if day.Before(Midnight(s.now())) {
		if s.Logger != nil {
			s.Logger.Debug("Ignoring past day selection", zap.String("date", date))
		}
		return sess, nil
	}
	sess.Selection.Date = day.Format(dateLayout)
	sess.Selection.ChosenSlots = []string{}
	if err := s.save(ctx, sess); err != nil {
		return models.ReservationSession{}, err
	}
	return sess, nil
}

// ToggleSlot flips a slot label's membership in the chosen set. Without a
// selected date, or for full/unknown slots, it is a no-op.
func (s *DefaultReservationService) ToggleSlot(ctx context.Context, sessionID, label string) (models.ReservationSession, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return models.ReservationSession{}, err
	}
	if sess.Selection.Date == "" {
		return sess, nil
	}
	slot, ok := s.Catalog.FindSlot(sess.Selection.Sport, label)
	if !ok || slot.IsFull {
		return sess, nil
	}

	chosen := sess.Selection.ChosenSlots
	removed := false
	for i, l := range chosen {
		if l == label {
			chosen = append(chosen[:i:i], chosen[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		chosen = append(chosen, label)
	}
	sess.Selection.ChosenSlots = chosen

	if err := s.save(ctx, sess); err != nil {
		return models.ReservationSession{}, err
	}
	return sess, nil
}

// CommitSelection turns every chosen slot into a cart line in one batch.
// Preconditions (sport, date, at least one slot) are checked up front so a
// failed commit never mutates the cart. Sport and date survive the commit;
// only the chosen slots are cleared.
func (s *DefaultReservationService) CommitSelection(ctx context.Context, sessionID string) (models.ReservationSession, int, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return models.ReservationSession{}, 0, err
	}
	sel := sess.Selection
	if sel.Sport == "" || sel.Date == "" || len(sel.ChosenSlots) == 0 {
		return sess, 0, ErrIncompleteSelection
	}

	venueName := s.venueNameFor(sel.Sport)
	displayDate := FormatDisplayDate(sel.Date)
	items := make([]models.CartItem, 0, len(sel.ChosenSlots))
	for _, label := range sel.ChosenSlots {
		items = append(items, models.CartItem{
			ID:        uuid.New().String(),
			Sport:     sel.Sport,
			VenueName: venueName,
			Date:      displayDate,
			Time:      label,
			Price:     s.UnitPrice,
		})
	}
	sess.Cart = append(sess.Cart, items...)
	sess.Selection.ChosenSlots = []string{}

	if err := s.save(ctx, sess); err != nil {
		return models.ReservationSession{}, 0, err
	}

	if s.Scheduler != nil {
		for _, item := range items {
			payload := models.ReminderPayload{
				SessionID: sess.SessionID,
				VenueName: item.VenueName,
				Date:      item.Date,
				Time:      item.Time,
			}
			if err := s.Scheduler.ScheduleReminder(payload); err != nil && s.Logger != nil {
				s.Logger.Warn("Failed to schedule reservation reminder", zap.Error(err))
			}
		}
	}

	return sess, len(items), nil
}

// RemoveItem drops the cart line with the given id. Removing an absent id
// leaves the cart unchanged.
func (s *DefaultReservationService) RemoveItem(ctx context.Context, sessionID, itemID string) (models.ReservationSession, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return models.ReservationSession{}, err
	}
	for i, item := range sess.Cart {
		if item.ID == itemID {
			sess.Cart = append(sess.Cart[:i:i], sess.Cart[i+1:]...)
			if err := s.save(ctx, sess); err != nil {
				return models.ReservationSession{}, err
			}
			break
		}
	}
	return sess, nil
}

// Checkout reports the cart total and empties the cart. The payment step
// itself is an external collaborator; this only hands over the total.
func (s *DefaultReservationService) Checkout(ctx context.Context, sessionID string) (models.ReservationSession, float64, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return models.ReservationSession{}, 0, err
	}
	total := sess.Total()
	sess.Cart = []models.CartItem{}
	if err := s.save(ctx, sess); err != nil {
		return models.ReservationSession{}, 0, err
	}
	return sess, total, nil
}

func (s *DefaultReservationService) sportExists(sport models.SportType) bool {
	for _, sp := range s.Venues.ListSports() {
		if sp.ID == sport {
			return true
		}
	}
	return false
}

// venueNameFor resolves the display label for a committed line, e.g.
// "羽球A (A區)". One fixed court per sport, as in the source app.
func (s *DefaultReservationService) venueNameFor(sport models.SportType) string {
	for _, sp := range s.Venues.ListSports() {
		if sp.ID == sport {
			return sp.Label + "A (A區)"
		}
	}
	return string(sport) + "A (A區)"
}

func (s *DefaultReservationService) load(ctx context.Context, sessionID string) (models.ReservationSession, error) {
	data, ok, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return models.ReservationSession{}, err
	}
	if !ok {
		return models.ReservationSession{}, ErrSessionNotFound
	}
	var sess models.ReservationSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return models.ReservationSession{}, err
	}
	return sess, nil
}

func (s *DefaultReservationService) save(ctx context.Context, sess models.ReservationSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.Sessions.Set(ctx, sess.SessionID, data)
}
