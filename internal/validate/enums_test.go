package validate

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaggy/edge/internal/apierr"
	"github.com/quaggy/edge/internal/domain"
)

func TestModeValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		wantErr string
	}{
		{name: "instant", input: "Instant", want: "Instant"},
		{name: "bid", input: "Bid", want: "Bid"},
		{name: "lowercase rejected", input: "instant", wantErr: "Mode must be Instant or Bid"},
		{name: "unknown rejected", input: "Market", wantErr: "Mode must be Instant or Bid"},
		{name: "nil rejected", input: nil, wantErr: "No mode provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (Mode{}).Validate(tt.input)
			if tt.wantErr != "" {
				var apiErr *apierr.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, -7, apiErr.StatusCode)
				assert.Equal(t, tt.wantErr, apiErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderValidate(t *testing.T) {
	for _, valid := range []string{"Asc", "Desc"} {
		got, err := (Order{}).Validate(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, got)
	}

	_, err := (Order{}).Validate("Ascending")
	require.Error(t, err)

	_, err = (Order{}).Validate(nil)
	require.Error(t, err)
}

func TestHistoryDaysValidate(t *testing.T) {
	// Every allowed day must pass both as a number and as a numeric string.
	for _, days := range domain.AllowedHistoryDays {
		got, err := (HistoryDays{}).Validate(float64(days))
		require.NoError(t, err, "days %d as number", days)
		assert.Equal(t, days, got)

		got, err = (HistoryDays{}).Validate(strconv.Itoa(days))
		require.NoError(t, err, "days %d as string", days)
		assert.Equal(t, days, got)
	}

	tests := []struct {
		name  string
		input any
	}{
		{name: "not in allowed set", input: float64(11)},
		{name: "zero", input: float64(0)},
		{name: "negative", input: float64(-5)},
		{name: "large", input: float64(1000)},
		{name: "non-numeric string", input: "many"},
		{name: "nil", input: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (HistoryDays{}).Validate(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestFeatureValidate(t *testing.T) {
	got, err := (Feature{}).Validate("MeanProfit")
	require.NoError(t, err)
	assert.Equal(t, "MeanProfit", got)

	_, err = (Feature{}).Validate("NotAFeature")
	var apiErr *apierr.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "NotAFeature is not a valid feature", apiErr.Message)

	_, err = (Feature{}).Validate(nil)
	assert.Error(t, err)
}

func TestItemTypeValidate(t *testing.T) {
	for _, itemType := range domain.ItemTypes {
		got, err := (ItemType{}).Validate(itemType)
		require.NoError(t, err)
		assert.Equal(t, itemType, got)
	}

	_, err := (ItemType{}).Validate("Sword")
	var apiErr *apierr.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Sword is not a valid item type", apiErr.Message)
}

func TestUsernameValidate(t *testing.T) {
	got, err := (Username{}).Validate("quaggy")
	require.NoError(t, err)
	assert.Equal(t, "quaggy", got)

	for _, input := range []any{nil, ""} {
		_, err := (Username{}).Validate(input)
		assert.Error(t, err)
	}
}

func TestPasswordValidate(t *testing.T) {
	got, err := (Password{}).Validate("hunter22")
	require.NoError(t, err)
	assert.Equal(t, "hunter22", got)

	tests := []struct {
		name  string
		input any
	}{
		{name: "nil", input: nil},
		{name: "empty", input: ""},
		{name: "too short", input: "five5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (Password{}).Validate(tt.input)
			assert.Error(t, err)
		})
	}
}
