package service

import (
	"sync"

	"geolocator/internal/models"
)

// LastResolved remembers the most recent successful lookup so "show on map"
// can work without repeating the query.
type LastResolved struct {
	mu  sync.Mutex
	loc *models.Location
}

func (l *LastResolved) Set(loc *models.Location) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cp := *loc
	l.loc = &cp
}

// Get returns the last resolved location, or false when nothing was resolved yet.
func (l *LastResolved) Get() (models.Location, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loc == nil {
		return models.Location{}, false
	}
	return *l.loc, true
}
