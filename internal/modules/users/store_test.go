package users

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaggy/edge/internal/domain"
)

func testLogger() zerolog.Logger {
	return zerolog.New(nil).Level(zerolog.Disabled)
}

func TestPasswordHashAndVerify(t *testing.T) {
	u := New()
	u.Name = "quaggy"
	require.NoError(t, u.SetPassword("hunter22"))

	assert.NotEqual(t, "hunter22", u.PasswordHash, "password must not be stored in plaintext")
	assert.True(t, u.VerifyPassword("hunter22"))
	assert.False(t, u.VerifyPassword("hunter23"))
	assert.False(t, u.VerifyPassword(""))
}

func TestStoreCommitAndFind(t *testing.T) {
	store := NewStore(testLogger())

	_, ok := store.FindByName("quaggy")
	assert.False(t, ok)

	u := New()
	u.Name = "quaggy"
	require.NoError(t, u.SetPassword("hunter22"))
	store.Commit(u)

	found, ok := store.FindByName("quaggy")
	require.True(t, ok)
	assert.Equal(t, "quaggy", found.Name)
	assert.True(t, found.VerifyPassword("hunter22"))
	assert.Equal(t, 1, store.Len())
}

func TestStoreCommitOverwrites(t *testing.T) {
	store := NewStore(testLogger())

	u := New()
	u.Name = "quaggy"
	require.NoError(t, u.SetPassword("first_pw"))
	store.Commit(u)

	again := New()
	again.Name = "quaggy"
	require.NoError(t, again.SetPassword("second_pw"))
	store.Commit(again)

	found, ok := store.FindByName("quaggy")
	require.True(t, ok)
	assert.False(t, found.VerifyPassword("first_pw"))
	assert.True(t, found.VerifyPassword("second_pw"))
	assert.Equal(t, 1, store.Len())
}

func TestStoreAddFilters(t *testing.T) {
	store := NewStore(testLogger())

	u := New()
	u.Name = "quaggy"
	store.Commit(u)

	first := domain.Filter{HistoryDays: 5, BuyMode: "Instant", SellMode: "Bid", Types: []string{"Weapon"}}
	updated, ok := store.AddFilters("quaggy", map[string]domain.Filter{"deals": first})
	require.True(t, ok)
	assert.Len(t, updated.Filters, 1)

	// A reused name overwrites; new names merge.
	second := domain.Filter{HistoryDays: 10, BuyMode: "Bid", SellMode: "Bid", Types: []string{"Armor"}}
	other := domain.Filter{HistoryDays: 1, BuyMode: "Instant", SellMode: "Instant", Types: []string{"Bag"}}
	updated, ok = store.AddFilters("quaggy", map[string]domain.Filter{"deals": second, "cheap": other})
	require.True(t, ok)
	require.Len(t, updated.Filters, 2)
	assert.Equal(t, 10, updated.Filters["deals"].HistoryDays)
	assert.Equal(t, 1, updated.Filters["cheap"].HistoryDays)
}

func TestStoreAddFiltersUnknownUser(t *testing.T) {
	store := NewStore(testLogger())

	_, ok := store.AddFilters("ghost", map[string]domain.Filter{})
	assert.False(t, ok)
}

func TestStoreFindReturnsCopy(t *testing.T) {
	store := NewStore(testLogger())

	u := New()
	u.Name = "quaggy"
	u.Filters["deals"] = domain.Filter{HistoryDays: 5}
	store.Commit(u)

	found, ok := store.FindByName("quaggy")
	require.True(t, ok)
	found.Filters["rogue"] = domain.Filter{HistoryDays: 1}

	again, ok := store.FindByName("quaggy")
	require.True(t, ok)
	assert.NotContains(t, again.Filters, "rogue")
}

func TestPublicViewWithholdsHash(t *testing.T) {
	u := New()
	u.Name = "quaggy"
	require.NoError(t, u.SetPassword("hunter22"))
	u.Filters["deals"] = domain.Filter{HistoryDays: 5}

	public := u.Public()
	assert.Equal(t, "quaggy", public.Name)
	assert.Contains(t, public.Filters, "deals")
}
