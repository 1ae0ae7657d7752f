package validate

import (
	"unicode/utf8"

	"github.com/quaggy/edge/internal/apierr"
	"github.com/quaggy/edge/internal/domain"
)

// Filters validates a mapping of filter name to raw filter object and
// produces a new mapping of validated filters. Input is never mutated.
type Filters struct{}

// Validate checks every submitted filter. The first invalid field aborts
// the whole validation.
func (Filters) Validate(v any) (map[string]domain.Filter, error) {
	if v == nil {
		return nil, apierr.ValidationError("No filter provided")
	}
	raw, _, err := (Dict{FieldName: "filter", ForbidNone: true}).Validate(v)
	if err != nil {
		return nil, err
	}

	result := make(map[string]domain.Filter, len(raw))
	for name, rawFilter := range raw {
		if n := utf8.RuneCountInString(name); n <= 0 || n > 30 {
			return nil, apierr.ValidationError("Filter name must be length 1-30")
		}
		fil, _, err := (Dict{FieldName: name, ForbidNone: true}).Validate(rawFilter)
		if err != nil {
			return nil, err
		}

		var validated domain.Filter
		if validated.HistoryDays, err = (HistoryDays{}).Validate(fil["HistoryDays"]); err != nil {
			return nil, err
		}
		if validated.BuyMode, err = (Mode{}).Validate(fil["BuyMode"]); err != nil {
			return nil, err
		}
		if validated.SellMode, err = (Mode{}).Validate(fil["SellMode"]); err != nil {
			return nil, err
		}
		if validated.SortBy, err = (Feature{}).Validate(fil["SortBy"]); err != nil {
			return nil, err
		}
		if validated.SortOrder, err = (Order{}).Validate(fil["SortOrder"]); err != nil {
			return nil, err
		}

		types, _, err := (List{FieldName: "Types", ForbidNone: true}).Validate(fil["Types"])
		if err != nil {
			return nil, err
		}
		goodTypes := make([]string, 0, len(types))
		for _, rawType := range types {
			t, err := (ItemType{}).Validate(rawType)
			if err != nil {
				return nil, err
			}
			for _, seen := range goodTypes {
				if t == seen {
					return nil, apierr.ValidationError("Types list cannot contain duplicates")
				}
			}
			goodTypes = append(goodTypes, t)
		}
		validated.Types = goodTypes

		bounds, _, err := (Dict{FieldName: "Bounds", ForbidNone: true}).Validate(fil["Bounds"])
		if err != nil {
			return nil, err
		}
		goodBounds := make(map[string]domain.Bound, len(bounds))
		for rawFeature, rawBound := range bounds {
			feature, err := (Feature{}).Validate(rawFeature)
			if err != nil {
				return nil, err
			}
			boundMap, _, err := (Dict{FieldName: feature, ForbidNone: true}).Validate(rawBound)
			if err != nil {
				return nil, err
			}
			var bound domain.Bound
			if minVal, present, err := (Float{FieldName: "Min"}).Validate(boundMap["Min"]); err != nil {
				return nil, err
			} else if present {
				v := minVal
				bound.Min = &v
			}
			if maxVal, present, err := (Float{FieldName: "Max"}).Validate(boundMap["Max"]); err != nil {
				return nil, err
			} else if present {
				v := maxVal
				bound.Max = &v
			}
			goodBounds[feature] = bound
		}
		validated.Bounds = goodBounds

		result[name] = validated
	}
	return result, nil
}

// Plan validates a single feature-lookup descriptor. All fields are
// required; there are no partial plans.
type Plan struct{}

// Validate coerces and checks every plan field.
func (Plan) Validate(v any) (*domain.Plan, error) {
	if v == nil {
		return nil, apierr.ValidationError("No plan provided")
	}
	raw, _, err := (Dict{FieldName: "plan", ForbidNone: true}).Validate(v)
	if err != nil {
		return nil, err
	}

	var plan domain.Plan
	if plan.Id, _, err = (Integer{FieldName: "Id", ForbidNone: true}).Validate(raw["Id"]); err != nil {
		return nil, err
	}
	if plan.HistoryDays, err = (HistoryDays{}).Validate(raw["HistoryDays"]); err != nil {
		return nil, err
	}
	if plan.BuyMode, err = (Mode{}).Validate(raw["BuyMode"]); err != nil {
		return nil, err
	}
	if plan.SellMode, err = (Mode{}).Validate(raw["SellMode"]); err != nil {
		return nil, err
	}
	return &plan, nil
}
