package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitapp/appstate"
	"fitapp/catalog"
	"fitapp/services/reservation"
	"fitapp/services/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newReservationRouter() (*gin.Engine, *appstate.AppState) {
	gin.SetMode(gin.TestMode)

	svc := &reservation.DefaultReservationService{
		Catalog:   reservation.NewStaticSlotCatalog(),
		Venues:    catalog.NewMemoryVenueRepo(),
		Sessions:  session.NewMemoryStore(30 * time.Minute),
		UnitPrice: 300,
		Now:       func() time.Time { return time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local) },
	}
	app := appstate.New("台北市 大安區")
	h := NewReservationHandler(svc, svc.Catalog, app, zap.NewNop())

	router := gin.New()
	router.POST("/api/reservation/session", h.StartSession)
	router.GET("/api/reservation/session/:sessionID", h.GetSession)
	router.PUT("/api/reservation/session/:sessionID/sport", h.SelectSport)
	router.PUT("/api/reservation/session/:sessionID/date", h.SelectDay)
	router.PUT("/api/reservation/session/:sessionID/slots", h.ToggleSlot)
	router.POST("/api/reservation/session/:sessionID/commit", h.CommitSelection)
	router.DELETE("/api/reservation/session/:sessionID/cart/:itemID", h.RemoveItem)
	router.POST("/api/reservation/session/:sessionID/checkout", h.Checkout)
	router.GET("/api/reservation/slots", h.ListSlots)
	return router, app
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type sessionResponse struct {
	Session struct {
		SessionID string `json:"sessionId"`
		Selection struct {
			Sport       string   `json:"sport"`
			Date        string   `json:"date"`
			ChosenSlots []string `json:"chosenSlots"`
		} `json:"selection"`
		Cart []struct {
			ID        string  `json:"id"`
			VenueName string  `json:"venueName"`
			Date      string  `json:"date"`
			Time      string  `json:"time"`
			Price     float64 `json:"price"`
		} `json:"cart"`
	} `json:"session"`
	Stage         int     `json:"stage"`
	Total         float64 `json:"total"`
	Committed     int     `json:"committed"`
	CheckoutTotal float64 `json:"checkoutTotal"`
}

func decodeSession(t *testing.T, w *httptest.ResponseRecorder) sessionResponse {
	t.Helper()
	var resp sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestReservationFlow(t *testing.T) {
	router, app := newReservationRouter()

	w := doJSON(t, router, http.MethodPost, "/api/reservation/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeSession(t, w)
	sid := resp.Session.SessionID
	require.NotEmpty(t, sid)
	assert.Equal(t, 1, resp.Stage)

	w = doJSON(t, router, http.MethodPut, "/api/reservation/session/"+sid+"/sport", gin.H{"sport": "badminton"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/reservation/session/"+sid+"/date", gin.H{"date": "2026-08-30"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeSession(t, w)
	assert.Equal(t, 2, resp.Stage)

	for _, label := range []string{"18:00-19:00", "19:00-20:00"} {
		w = doJSON(t, router, http.MethodPut, "/api/reservation/session/"+sid+"/slots", gin.H{"label": label})
		require.Equal(t, http.StatusOK, w.Code)
	}
	resp = decodeSession(t, w)
	assert.Equal(t, 3, resp.Stage)
	assert.Equal(t, []string{"18:00-19:00", "19:00-20:00"}, resp.Session.Selection.ChosenSlots)

	w = doJSON(t, router, http.MethodPost, "/api/reservation/session/"+sid+"/commit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeSession(t, w)
	assert.Equal(t, 2, resp.Committed)
	assert.Equal(t, 600.0, resp.Total)
	require.Len(t, resp.Session.Cart, 2)
	assert.Equal(t, "羽球A (A區)", resp.Session.Cart[0].VenueName)
	assert.Equal(t, "2026/8/30", resp.Session.Cart[0].Date)
	assert.Empty(t, resp.Session.Selection.ChosenSlots)
	assert.Equal(t, "badminton", resp.Session.Selection.Sport)
	toast, _ := app.LastToast()
	assert.Equal(t, "成功預約 2 個時段", toast)

	w = doJSON(t, router, http.MethodDelete,
		fmt.Sprintf("/api/reservation/session/%s/cart/%s", sid, resp.Session.Cart[0].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeSession(t, w)
	require.Len(t, resp.Session.Cart, 1)
	assert.Equal(t, 300.0, resp.Total)
	toast, _ = app.LastToast()
	assert.Equal(t, "已移除預約", toast)

	w = doJSON(t, router, http.MethodPost, "/api/reservation/session/"+sid+"/checkout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeSession(t, w)
	assert.Equal(t, 300.0, resp.CheckoutTotal)
	assert.Empty(t, resp.Session.Cart)
}

func TestReservationErrors(t *testing.T) {
	router, _ := newReservationRouter()

	w := doJSON(t, router, http.MethodGet, "/api/reservation/session/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/reservation/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sid := decodeSession(t, w).Session.SessionID

	w = doJSON(t, router, http.MethodPut, "/api/reservation/session/"+sid+"/sport", gin.H{"sport": "curling"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/reservation/session/"+sid+"/date", gin.H{"date": "30/08/2026"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/reservation/session/"+sid+"/commit", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/reservation/session/"+sid+"/sport", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReservationPastDayKeepsSession(t *testing.T) {
	router, _ := newReservationRouter()

	w := doJSON(t, router, http.MethodPost, "/api/reservation/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sid := decodeSession(t, w).Session.SessionID

	w = doJSON(t, router, http.MethodPut, "/api/reservation/session/"+sid+"/date", gin.H{"date": "2026-09-01"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/reservation/session/"+sid+"/date", gin.H{"date": "2026-08-01"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeSession(t, w)
	assert.Equal(t, "2026-09-01", resp.Session.Selection.Date)
}

func TestListSlots(t *testing.T) {
	router, _ := newReservationRouter()

	w := doJSON(t, router, http.MethodGet, "/api/reservation/slots?sport=badminton", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Slots []struct {
			Start  string `json:"start"`
			End    string `json:"end"`
			IsFull bool   `json:"isFull"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 15)
	assert.True(t, resp.Slots[2].IsFull)
	assert.True(t, resp.Slots[3].IsFull)
}
