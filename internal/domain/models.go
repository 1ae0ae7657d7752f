// Package domain holds the core types of Quaggy Edge: feature vectors,
// filters, plans and the fixed trading-post enumerations they range over.
package domain

import "fmt"

// Trade modes. A feature vector exists for every combination of a buy
// mode and a sell mode.
const (
	ModeInstant = "Instant"
	ModeBid     = "Bid"
)

// Sort orders accepted on a filter. Sorting of results is declared but
// not implemented.
const (
	OrderAsc  = "Asc"
	OrderDesc = "Desc"
)

// AllowedHistoryDays is the fixed set of history windows the upstream
// engine computes features for.
var AllowedHistoryDays = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 15, 20, 25, 30, 35, 40, 45, 50, 75, 100}

// Features is the fixed set of feature names the engine produces.
// Ingestion accepts unknown names verbatim, but only these are
// addressable from a filter.
var Features = []string{
	"ItemID", "ItemType", "ItemRarity", "ItemLevel", "NumBuyOrders",
	"NumSellOrders", "BuyPrice", "SellPrice", "ZScoreBuyPrice", "ZScoreSellPrice",
	"MeanBuyPrice", "MeanSellPrice", "VarBuyPrice", "VarSellPrice", "MedianBuyPrice",
	"MedianSellPrice", "SlopeBuyPrice", "SlopeSellPrice", "CurrentFlipProfit",
	"MeanProfit", "VarProfit", "MedianProfit", "OurBuyPrice", "NumConsidered",
}

// ItemTypes is the fixed item-type enumeration. A feature vector stores
// the item type as a numeric index into this list.
var ItemTypes = []string{
	"Armor", "Back", "Bag", "Consumable", "Container", "CraftingMaterial",
	"Gizmo", "Mini", "Trinket", "Trophy", "UpgradeComponent", "Weapon",
}

// ItemTypeName resolves an item-type index to its name. An out-of-range
// index is corrupt upstream data, not a user error, so it fails closed.
func ItemTypeName(index int) (string, error) {
	if index < 0 || index >= len(ItemTypes) {
		return "", fmt.Errorf("item type index %d out of range [0,%d)", index, len(ItemTypes))
	}
	return ItemTypes[index], nil
}

// FeatureVector maps feature names to the scalar values the upstream
// engine produced for one item under one (buy mode, sell mode, history
// window) context. Values are raw JSON scalars; numeric comparisons
// coerce on read.
type FeatureVector map[string]any

// Copy returns an independent shallow copy of the vector.
func (fv FeatureVector) Copy() FeatureVector {
	out := make(FeatureVector, len(fv))
	for k, v := range fv {
		out[k] = v
	}
	return out
}

// Bound constrains a single feature. Either side may be absent.
type Bound struct {
	Min *float64 `json:"Min,omitempty"`
	Max *float64 `json:"Max,omitempty"`
}

// Filter is a validated, named predicate over feature vectors. It is
// immutable once validated; re-submitting under the same name replaces
// it wholesale.
type Filter struct {
	HistoryDays int              `json:"HistoryDays"`
	BuyMode     string           `json:"BuyMode"`
	SellMode    string           `json:"SellMode"`
	SortBy      string           `json:"SortBy"`
	SortOrder   string           `json:"SortOrder"`
	Types       []string         `json:"Types"`
	Bounds      map[string]Bound `json:"Bounds"`
}

// Plan is a transient single-vector lookup descriptor. It is validated
// once per feature request and never persisted.
type Plan struct {
	Id          int    `json:"Id"`
	HistoryDays int    `json:"HistoryDays"`
	BuyMode     string `json:"BuyMode"`
	SellMode    string `json:"SellMode"`
}
