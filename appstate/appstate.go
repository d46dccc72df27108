// Package appstate holds the few pieces of state every screen may touch:
// the current district, the selected venue and the last toast message.
// One instance is created at startup and injected into handlers; it is
// mutated only through its setters.
package appstate

import (
	"sync"
	"time"
)

// AppState is the shared cross-screen state container.
type AppState struct {
	mu            sync.RWMutex
	district      string
	selectedVenue string
	lastToast     string
	toastAt       time.Time
}

// New creates the app state with the preset district.
func New(defaultDistrict string) *AppState {
	return &AppState{district: defaultDistrict}
}

func (s *AppState) District() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.district
}

func (s *AppState) SetDistrict(district string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.district = district
}

func (s *AppState) SelectedVenue() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedVenue
}

func (s *AppState) SetSelectedVenue(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedVenue = name
}

// ShowToast records a toast message any screen may display.
func (s *AppState) ShowToast(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastToast = msg
	s.toastAt = time.Now()
}

// LastToast returns the most recent toast and when it was raised.
func (s *AppState) LastToast() (string, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastToast, s.toastAt
}
