package activity

import (
	"testing"
	"time"

	"fitapp/catalog"
	"fitapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	activities []models.Activity
}

func (r *stubRepo) List() []models.Activity { return r.activities }

func (r *stubRepo) ListBySport(sport models.SportType) []models.Activity {
	if sport == "" || sport == models.SportAll {
		return r.activities
	}
	var out []models.Activity
	for _, a := range r.activities {
		if a.Type == sport {
			out = append(out, a)
		}
	}
	return out
}

func (r *stubRepo) GetByID(id string) (models.Activity, error) {
	for _, a := range r.activities {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Activity{}, catalog.ErrNotFound
}

func TestJoin(t *testing.T) {
	svc := NewDefaultActivityService(&stubRepo{activities: []models.Activity{
		{ID: "a1", Type: models.SportBadminton, CurrentMembers: 3, MaxMembers: 4},
	}})

	joined, err := svc.Join("a1")
	require.NoError(t, err)
	assert.Equal(t, 4, joined.CurrentMembers)

	_, err = svc.Join("a1")
	assert.ErrorIs(t, err, ErrAlreadyJoined)
}

func TestJoin_Full(t *testing.T) {
	svc := NewDefaultActivityService(&stubRepo{activities: []models.Activity{
		{ID: "a1", CurrentMembers: 4, MaxMembers: 4},
	}})

	_, err := svc.Join("a1")
	assert.ErrorIs(t, err, ErrActivityFull)
}

func TestJoin_Unknown(t *testing.T) {
	svc := NewDefaultActivityService(&stubRepo{})

	_, err := svc.Join("nope")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestListOverlaysJoinCount(t *testing.T) {
	svc := NewDefaultActivityService(&stubRepo{activities: []models.Activity{
		{ID: "a1", Type: models.SportBadminton, CurrentMembers: 2, MaxMembers: 6},
		{ID: "a2", Type: models.SportBasketball, CurrentMembers: 5, MaxMembers: 10},
	}})

	_, err := svc.Join("a1")
	require.NoError(t, err)

	all := svc.List("")
	require.Len(t, all, 2)
	assert.Equal(t, 3, all[0].CurrentMembers)
	assert.Equal(t, 5, all[1].CurrentMembers)

	badminton := svc.List(models.SportBadminton)
	require.Len(t, badminton, 1)
	assert.Equal(t, "a1", badminton[0].ID)
}

func TestMyActivities(t *testing.T) {
	svc := NewDefaultActivityService(&stubRepo{activities: []models.Activity{
		{ID: "a1", CurrentMembers: 2, MaxMembers: 6},
		{ID: "a2", CurrentMembers: 5, MaxMembers: 10},
	}})

	assert.Empty(t, svc.MyActivities())

	_, err := svc.Join("a2")
	require.NoError(t, err)

	mine := svc.MyActivities()
	require.Len(t, mine, 1)
	assert.Equal(t, "a2", mine[0].ID)
	assert.Equal(t, 6, mine[0].CurrentMembers)
}

func TestSubmitLeave(t *testing.T) {
	svc := NewDefaultActivityService(&stubRepo{})
	svc.Now = func() time.Time { return time.Date(2026, 8, 29, 9, 30, 0, 0, time.Local) }

	req, err := svc.SubmitLeave("b1", "2026-09-05", "出差")
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, "b1", req.BookingID)
	assert.Equal(t, "2026-09-05", req.SessionOn)
	assert.Equal(t, "出差", req.Reason)
	assert.Equal(t, "2026-08-29 09:30", req.SubmittedAt)
}
