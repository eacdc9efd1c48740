// Package models defines cache data structures for rendered fragments.
package models

import (
	"sync"
	"time"
)

// RenderedFragment is one cached render result, keyed by the hash of the
// source markup plus the styleguide it was resolved against.
type RenderedFragment struct {
	HTML          string    `json:"html"`
	Fonts         []string  `json:"fonts,omitempty"`
	StyleguideID  string    `json:"styleguideId,omitempty"`
	StyleguideVer int64     `json:"styleguideVer,omitempty"`
	CachedAt      time.Time `json:"cachedAt"`
}

// FragmentCache holds rendered fragments with TTL-based expiry.
type FragmentCache struct {
	Fragments map[string]*RenderedFragment // cache key -> fragment

	// Cache metadata
	Mu           sync.RWMutex
	LastAccessed map[string]time.Time // cache key -> last access
}
