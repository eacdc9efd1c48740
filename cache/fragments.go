// Package cache provides rendered-fragment caching keyed by source markup
// and the styleguide it was resolved against.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/MarkupMedia/pagetags-go/config"
	"github.com/MarkupMedia/pagetags-go/models"
)

// Manager owns the fragment cache and its TTL bookkeeping.
type Manager struct {
	cache *models.FragmentCache
	ttl   time.Duration
}

// NewManager creates a fragment cache manager with the configured TTL.
func NewManager() *Manager {
	return &Manager{
		cache: &models.FragmentCache{
			Fragments:    make(map[string]*models.RenderedFragment),
			LastAccessed: make(map[string]time.Time),
		},
		ttl: config.FragmentCacheTTL,
	}
}

// Key derives the cache key for a markup payload against a styleguide
// version. An empty styleguide id keys the preset-only variant.
func Key(markup, styleguideID string, styleguideVer int64) string {
	sum := sha256.Sum256([]byte(markup))
	return fmt.Sprintf("%s:%s:%d", hex.EncodeToString(sum[:]), styleguideID, styleguideVer)
}

// Get retrieves a cached fragment, honoring TTL expiry.
func (m *Manager) Get(key string) (*models.RenderedFragment, bool) {
	m.cache.Mu.RLock()
	frag, exists := m.cache.Fragments[key]
	m.cache.Mu.RUnlock()

	if !exists {
		return nil, false
	}
	if time.Since(frag.CachedAt) > m.ttl {
		m.cache.Mu.Lock()
		delete(m.cache.Fragments, key)
		delete(m.cache.LastAccessed, key)
		m.cache.Mu.Unlock()
		return nil, false
	}

	m.cache.Mu.Lock()
	m.cache.LastAccessed[key] = time.Now().UTC()
	m.cache.Mu.Unlock()
	return frag, true
}

// Set stores a rendered fragment.
func (m *Manager) Set(key string, frag *models.RenderedFragment) {
	frag.CachedAt = time.Now().UTC()
	m.cache.Mu.Lock()
	m.cache.Fragments[key] = frag
	m.cache.LastAccessed[key] = frag.CachedAt
	m.cache.Mu.Unlock()
}

// InvalidateStyleguide drops every fragment rendered against a styleguide
// id, called when the styleguide is updated.
func (m *Manager) InvalidateStyleguide(styleguideID string) {
	m.cache.Mu.Lock()
	defer m.cache.Mu.Unlock()
	for key, frag := range m.cache.Fragments {
		if frag.StyleguideID == styleguideID {
			delete(m.cache.Fragments, key)
			delete(m.cache.LastAccessed, key)
		}
	}
}

// Len reports the number of cached fragments.
func (m *Manager) Len() int {
	m.cache.Mu.RLock()
	defer m.cache.Mu.RUnlock()
	return len(m.cache.Fragments)
}

// StartCleanupRoutine evicts expired fragments on the configured interval.
func StartCleanupRoutine(m *Manager) {
	go func() {
		ticker := time.NewTicker(config.CleanupInterval)
		defer ticker.Stop()
		for range ticker.C {
			m.evictExpired()
		}
	}()
}

func (m *Manager) evictExpired() {
	m.cache.Mu.Lock()
	defer m.cache.Mu.Unlock()
	now := time.Now()
	for key, frag := range m.cache.Fragments {
		if now.Sub(frag.CachedAt) > m.ttl {
			delete(m.cache.Fragments, key)
			delete(m.cache.LastAccessed, key)
		}
	}
}
