package validate

import (
	"fmt"
	"strconv"

	"github.com/quaggy/edge/internal/apierr"
	"github.com/quaggy/edge/internal/domain"
)

// Enumeration rules narrow a coerced value to one of the fixed domain
// sets. Unlike the primitive rules they always require a value: a nil
// input is a validation failure with a field-specific message.

// Mode validates a trade mode.
type Mode struct{}

func (Mode) Validate(v any) (string, error) {
	if v == nil {
		return "", apierr.ValidationError("No mode provided")
	}
	mode, _, err := (String{FieldName: "mode"}).Validate(v)
	if err != nil {
		return "", err
	}
	if mode != domain.ModeInstant && mode != domain.ModeBid {
		return "", apierr.ValidationError("Mode must be Instant or Bid")
	}
	return mode, nil
}

// Order validates a sort order.
type Order struct{}

func (Order) Validate(v any) (string, error) {
	if v == nil {
		return "", apierr.ValidationError("No order provided")
	}
	order, _, err := (String{FieldName: "order"}).Validate(v)
	if err != nil {
		return "", err
	}
	if order != domain.OrderAsc && order != domain.OrderDesc {
		return "", apierr.ValidationError("Order must be Asc or Desc")
	}
	return order, nil
}

// HistoryDays validates a history window against the fixed allowed set.
type HistoryDays struct{}

func (HistoryDays) Validate(v any) (int, error) {
	if v == nil {
		return 0, apierr.ValidationError("No history days provided")
	}
	days, _, err := (Integer{FieldName: "history"}).Validate(v)
	if err != nil {
		return 0, err
	}
	for _, d := range domain.AllowedHistoryDays {
		if days == d {
			return days, nil
		}
	}
	return 0, apierr.ValidationError(strconv.Itoa(days) + " is not a valid history day amount")
}

// Feature validates a feature name against the fixed feature set.
type Feature struct{}

func (Feature) Validate(v any) (string, error) {
	if v == nil {
		return "", apierr.ValidationError("No feature provided")
	}
	feature, _, err := (String{FieldName: "feature"}).Validate(v)
	if err != nil {
		return "", err
	}
	for _, f := range domain.Features {
		if feature == f {
			return feature, nil
		}
	}
	return "", apierr.ValidationError(feature + " is not a valid feature")
}

// ItemType validates an item-type name against the fixed enumeration.
type ItemType struct{}

func (ItemType) Validate(v any) (string, error) {
	if v == nil {
		return "", apierr.ValidationError("No item type provided")
	}
	itemType, _, err := (String{FieldName: "item_type"}).Validate(v)
	if err != nil {
		return "", err
	}
	for _, t := range domain.ItemTypes {
		if itemType == t {
			return itemType, nil
		}
	}
	return "", apierr.ValidationError(itemType + " is not a valid item type")
}

// Username validates a signup/login username.
type Username struct{}

func (Username) Validate(v any) (string, error) {
	s, present, err := (String{FieldName: "username"}).Validate(v)
	if err != nil {
		return "", err
	}
	if !present || s == "" {
		return "", apierr.ValidationError("Username field was empty")
	}
	return s, nil
}

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// Password validates a signup/login password.
type Password struct{}

func (Password) Validate(v any) (string, error) {
	s, present, err := (String{FieldName: "password"}).Validate(v)
	if err != nil {
		return "", err
	}
	if !present || s == "" {
		return "", apierr.ValidationError("Password field was empty.")
	}
	if len(s) < MinPasswordLength {
		return "", apierr.ValidationError(fmt.Sprintf("Password must be at least %d characters.", MinPasswordLength))
	}
	return s, nil
}
