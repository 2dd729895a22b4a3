package metadata_cache

import (
	"sync"
	"time"

	"github.com/Mhd-Shakir/carlet/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// The catalog is immutable, so this is purely about skipping the recount on
// every request. The TTL keeps the pattern honest for the day the catalog
// source becomes a real backend.

type entry struct {
	metadata  models.FilterMetadata
	fetchedAt time.Time
}

var (
	mu     sync.RWMutex
	cached *entry
)

func Get() (models.FilterMetadata, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cached != nil && time.Since(cached.fetchedAt) < TTL {
		return cached.metadata, true
	}
	return models.FilterMetadata{}, false
}

func Set(metadata models.FilterMetadata) {
	mu.Lock()
	defer mu.Unlock()
	cached = &entry{metadata: metadata, fetchedAt: time.Now()}
}

func Invalidate() {
	mu.Lock()
	cached = nil
	mu.Unlock()
}
