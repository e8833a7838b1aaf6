package memory

import (
	"sync"

	"github.com/dmorneau/sabrpage/internal/models"
)

// Repository caches the resolved season between scheduled publish runs so
// the availability probe only hits the API once a day.
type Repository struct {
	season *models.SeasonInfo
	mu     sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveSeason(info *models.SeasonInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.season = info
}

func (r *Repository) GetSeason() *models.SeasonInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.season
}
