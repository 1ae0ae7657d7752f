package features

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/quaggy/edge/internal/domain"
)

// Engine evaluates validated filters against the feature cache. It
// never mutates the cache or the filter; evaluation is a pure function
// of the filter and the cache contents at read time.
type Engine struct {
	cache *Cache
	log   zerolog.Logger

	// StrictBounds changes how a bound on a feature the vector lacks is
	// treated. The historical behavior (false) is that an absent feature
	// imposes no constraint, which silently admits items with no data
	// for a bounded feature. When true, an absent bounded feature
	// excludes the item.
	StrictBounds bool
}

// NewEngine creates a filter evaluation engine over the given cache.
func NewEngine(cache *Cache, log zerolog.Logger) *Engine {
	return &Engine{
		cache: cache,
		log:   log.With().Str("component", "filter_engine").Logger(),
	}
}

// Apply returns the subset of items in the filter's (buy, sell, days)
// context whose resolved item type is in the filter's type set and
// whose bounded features fall inside the bounds. The result is unsorted;
// SortBy/SortOrder are declared on the filter but sorting is not
// implemented. An absent cache path yields an empty result, not an error.
func (e *Engine) Apply(filter domain.Filter) (map[string]domain.FeatureVector, error) {
	candidates := e.cache.Entries(filter.BuyMode, filter.SellMode, strconv.Itoa(filter.HistoryDays))

	chosen := make(map[string]domain.FeatureVector)
	for itemId, vector := range candidates {
		itemType, err := resolveItemType(vector)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", itemId, err)
		}
		if !containsString(filter.Types, itemType) {
			continue
		}
		if !e.withinBounds(vector, filter.Bounds) {
			continue
		}
		chosen[itemId] = vector
	}

	e.log.Debug().
		Int("candidates", len(candidates)).
		Int("chosen", len(chosen)).
		Msg("Filter applied")
	return chosen, nil
}

// withinBounds reports whether every bounded feature present in the
// vector falls inside its bound.
func (e *Engine) withinBounds(vector domain.FeatureVector, bounds map[string]domain.Bound) bool {
	for feature, bound := range bounds {
		raw, ok := vector[feature]
		if !ok {
			if e.StrictBounds {
				return false
			}
			// Absent feature imposes no constraint.
			continue
		}
		value, ok := asFloat(raw)
		if !ok {
			// Non-numeric values cannot satisfy a numeric bound.
			return false
		}
		if bound.Max != nil && value > *bound.Max {
			return false
		}
		if bound.Min != nil && value < *bound.Min {
			return false
		}
	}
	return true
}

// resolveItemType reads the vector's ItemType field, which the upstream
// engine stores as a numeric index (often serialized as a float string),
// and resolves it to an item-type name. A vector with a missing or
// unresolvable ItemType is corrupt upstream data.
func resolveItemType(vector domain.FeatureVector) (string, error) {
	raw, ok := vector["ItemType"]
	if !ok {
		return "", fmt.Errorf("feature vector has no ItemType field")
	}
	f, ok := asFloat(raw)
	if !ok {
		return "", fmt.Errorf("feature vector ItemType %v is not numeric", raw)
	}
	return domain.ItemTypeName(int(f))
}

// asFloat coerces a stored scalar to a float64 for comparison.
func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
