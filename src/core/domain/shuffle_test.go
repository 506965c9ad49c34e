package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingOrderExcludesRater(t *testing.T) {
	names := []string{"alice", "bob", "carol", "dave"}
	day := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	order := RatingOrder("bob", names, day)

	require.Len(t, order, 3)
	assert.NotContains(t, order, "bob")
	assert.ElementsMatch(t, []string{"alice", "carol", "dave"}, order)
}

func TestRatingOrderDeterministicPerDay(t *testing.T) {
	names := []string{"alice", "bob", "carol", "dave", "erin", "frank"}
	day := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	later := time.Date(2026, 8, 25, 23, 59, 0, 0, time.UTC)

	first := RatingOrder("alice", names, day)
	second := RatingOrder("alice", names, later)

	assert.Equal(t, first, second, "same rater and day must get the same order")
}

func TestRatingOrderIndependentOfInputOrder(t *testing.T) {
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	a := RatingOrder("alice", []string{"bob", "carol", "dave"}, day)
	b := RatingOrder("alice", []string{"dave", "bob", "carol"}, day)

	assert.Equal(t, a, b)
}

func TestRatingOrderVariesByRaterAndDay(t *testing.T) {
	names := []string{"alice", "bob", "carol", "dave", "erin", "frank", "grace", "heidi"}
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)

	// Raters outside the list see the full set, so the element sets match and
	// only the seed differs. With 8 names a colliding permutation is as good
	// as impossible; a failure here means the seed is not being mixed in.
	base := RatingOrder("zed", names, day)
	assert.NotEqual(t, base, RatingOrder("yara", names, day))
	assert.NotEqual(t, base, RatingOrder("zed", names, nextDay))
}

func TestRatingOrderSinglePlayer(t *testing.T) {
	order := RatingOrder("alice", []string{"alice"}, time.Now())
	assert.Empty(t, order)
}
