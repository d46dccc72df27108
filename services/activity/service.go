package activity

import (
	"errors"
	"sync"
	"time"

	"fitapp/catalog"
	"fitapp/models"

	"github.com/google/uuid"
)

var (
	// ErrActivityFull means the activity has no open spots left.
	ErrActivityFull = errors.New("activity is full")
	// ErrAlreadyJoined means this visitor already joined the activity.
	ErrAlreadyJoined = errors.New("already joined this activity")
)

// Service handles pickup activity listing, joining and leave requests.
type Service interface {
	List(sport models.SportType) []models.Activity
	Get(id string) (models.Activity, error)
	Join(id string) (models.Activity, error)
	MyActivities() []models.Activity
	SubmitLeave(bookingID, sessionOn, reason string) (models.LeaveRequest, error)
}

// DefaultActivityService overlays session-scoped join state on the static
// activity catalog. Joined counts live only in process memory.
type DefaultActivityService struct {
	Repo catalog.ActivityRepository
	Now  func() time.Time

	mu     sync.Mutex
	joined map[string]bool
	leaves []models.LeaveRequest
}

func NewDefaultActivityService(repo catalog.ActivityRepository) *DefaultActivityService {
	return &DefaultActivityService{Repo: repo, joined: make(map[string]bool)}
}

func (s *DefaultActivityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultActivityService) List(sport models.SportType) []models.Activity {
	return s.overlay(s.Repo.ListBySport(sport))
}

func (s *DefaultActivityService) Get(id string) (models.Activity, error) {
	a, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Activity{}, err
	}
	return s.overlayOne(a), nil
}

// Join adds the visitor to the activity after a capacity check.
func (s *DefaultActivityService) Join(id string) (models.Activity, error) {
	a, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Activity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.joined[id] {
		return s.overlayOneLocked(a), ErrAlreadyJoined
	}
	if a.IsFull() {
		return a, ErrActivityFull
	}
	s.joined[id] = true
	return s.overlayOneLocked(a), nil
}

func (s *DefaultActivityService) MyActivities() []models.Activity {
	s.mu.Lock()
	ids := make([]string, 0, len(s.joined))
	for id := range s.joined {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	var out []models.Activity
	for _, a := range s.Repo.List() {
		for _, id := range ids {
			if a.ID == id {
				out = append(out, s.overlayOne(a))
				break
			}
		}
	}
	return out
}

// SubmitLeave records a leave request for one session of a booked class.
func (s *DefaultActivityService) SubmitLeave(bookingID, sessionOn, reason string) (models.LeaveRequest, error) {
	req := models.LeaveRequest{
		ID:          uuid.New().String(),
		BookingID:   bookingID,
		SessionOn:   sessionOn,
		Reason:      reason,
		SubmittedAt: s.now().Format("2006-01-02 15:04"),
	}
	s.mu.Lock()
	s.leaves = append(s.leaves, req)
	s.mu.Unlock()
	return req, nil
}

func (s *DefaultActivityService) overlay(activities []models.Activity) []models.Activity {
	out := make([]models.Activity, 0, len(activities))
	for _, a := range activities {
		out = append(out, s.overlayOne(a))
	}
	return out
}

func (s *DefaultActivityService) overlayOne(a models.Activity) models.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overlayOneLocked(a)
}

func (s *DefaultActivityService) overlayOneLocked(a models.Activity) models.Activity {
	if s.joined[a.ID] {
		a.CurrentMembers++
	}
	return a
}
