// Package features implements the feature cache and the filter
// evaluation engine over it.
package features

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/quaggy/edge/internal/domain"
)

// Cache is the process-wide feature store: buy mode → sell mode →
// history days → item id → feature vector. All four inner levels are
// plain string-keyed maps; missing levels auto-vivify on write so
// ingestion never fails on an unseen key combination.
//
// A single RWMutex guards the structure: ingestion takes the write
// lock, lookups and evaluation read under the read lock and copy out,
// so a reader never observes a partially constructed level.
type Cache struct {
	data map[string]map[string]map[string]map[string]domain.FeatureVector
	mu   sync.RWMutex
	log  zerolog.Logger
}

// NewCache creates an empty feature cache.
func NewCache(log zerolog.Logger) *Cache {
	return &Cache{
		data: make(map[string]map[string]map[string]map[string]domain.FeatureVector),
		log:  log.With().Str("component", "feature_cache").Logger(),
	}
}

// digestKeyParts is the number of colon-separated parts in an ingestion
// key: Feature:ItemId:BuyMode:SellMode:HistoryDays. The ordering differs
// from the read-path key order; it is the wire format of the upstream
// engine and must not change.
const digestKeyParts = 5

// Ingest applies a flat digest to the cache. Keys and values are taken
// verbatim: feature names are not checked against the known feature set
// and values may be any JSON scalar. Re-ingesting a key overwrites the
// previous value. Every key is checked before anything is written, so
// a malformed digest leaves the cache untouched.
func (c *Cache) Ingest(update map[string]any) error {
	for key := range update {
		if n := len(strings.Split(key, ":")); n != digestKeyParts {
			return fmt.Errorf("digest key %q: expected %d colon-separated parts, got %d", key, digestKeyParts, n)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, value := range update {
		parts := strings.Split(key, ":")
		feature, itemId, buyMode, sellMode, historyDays := parts[0], parts[1], parts[2], parts[3], parts[4]

		bySell, ok := c.data[buyMode]
		if !ok {
			bySell = make(map[string]map[string]map[string]domain.FeatureVector)
			c.data[buyMode] = bySell
		}
		byDays, ok := bySell[sellMode]
		if !ok {
			byDays = make(map[string]map[string]domain.FeatureVector)
			bySell[sellMode] = byDays
		}
		byItem, ok := byDays[historyDays]
		if !ok {
			byItem = make(map[string]domain.FeatureVector)
			byDays[historyDays] = byItem
		}
		vector, ok := byItem[itemId]
		if !ok {
			vector = make(domain.FeatureVector)
			byItem[itemId] = vector
		}
		vector[feature] = value
	}

	c.log.Debug().Int("entries", len(update)).Msg("Digest ingested")
	return nil
}

// Lookup returns a copy of the feature vector at the given key, or
// (nil, false) when any level of the path is absent. Absence is never
// an error.
func (c *Cache) Lookup(buyMode, sellMode, historyDays, itemId string) (domain.FeatureVector, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	byItem, ok := c.level(buyMode, sellMode, historyDays)
	if !ok {
		return nil, false
	}
	vector, ok := byItem[itemId]
	if !ok {
		return nil, false
	}
	return vector.Copy(), true
}

// Entries returns a copy of the itemId → vector map for one
// (buyMode, sellMode, historyDays) context. An absent path yields an
// empty map.
func (c *Cache) Entries(buyMode, sellMode, historyDays string) map[string]domain.FeatureVector {
	c.mu.RLock()
	defer c.mu.RUnlock()

	byItem, ok := c.level(buyMode, sellMode, historyDays)
	if !ok {
		return map[string]domain.FeatureVector{}
	}
	out := make(map[string]domain.FeatureVector, len(byItem))
	for id, vector := range byItem {
		out[id] = vector.Copy()
	}
	return out
}

// All returns a deep copy of the entire nested structure. Used by the
// backend cache dump endpoint.
func (c *Cache) All() map[string]map[string]map[string]map[string]domain.FeatureVector {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]map[string]map[string]map[string]domain.FeatureVector, len(c.data))
	for buyMode, bySell := range c.data {
		outSell := make(map[string]map[string]map[string]domain.FeatureVector, len(bySell))
		out[buyMode] = outSell
		for sellMode, byDays := range bySell {
			outDays := make(map[string]map[string]domain.FeatureVector, len(byDays))
			outSell[sellMode] = outDays
			for days, byItem := range byDays {
				outItems := make(map[string]domain.FeatureVector, len(byItem))
				outDays[days] = outItems
				for id, vector := range byItem {
					outItems[id] = vector.Copy()
				}
			}
		}
	}
	return out
}

// Stats summarizes cache occupancy for health reporting.
type Stats struct {
	Contexts int `json:"contexts"` // distinct (buy, sell, days) paths
	Items    int `json:"items"`    // total feature vectors
	Values   int `json:"values"`   // total stored scalars
}

// Stats counts the current cache contents.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var s Stats
	for _, bySell := range c.data {
		for _, byDays := range bySell {
			for _, byItem := range byDays {
				s.Contexts++
				s.Items += len(byItem)
				for _, vector := range byItem {
					s.Values += len(vector)
				}
			}
		}
	}
	return s
}

// level walks the first three key levels; callers must hold the lock.
func (c *Cache) level(buyMode, sellMode, historyDays string) (map[string]domain.FeatureVector, bool) {
	bySell, ok := c.data[buyMode]
	if !ok {
		return nil, false
	}
	byDays, ok := bySell[sellMode]
	if !ok {
		return nil, false
	}
	byItem, ok := byDays[historyDays]
	return byItem, ok
}
