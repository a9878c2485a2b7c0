package recommend

import (
	"testing"

	"MoodEat/internal/places"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func operational(id string, rating float64) places.Place {
	return places.Place{PlaceID: id, Rating: rating, BusinessStatus: "OPERATIONAL"}
}

func rankedIDs(recs []Recommendation) []string {
	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.Place.PlaceID)
	}
	return ids
}

func TestRankFilters(t *testing.T) {
	lowRating := operational("low", 3.9)
	noRating := places.Place{PlaceID: "none", BusinessStatus: "OPERATIONAL"}
	closedDown := places.Place{PlaceID: "closed", Rating: 4.8, BusinessStatus: "CLOSED_PERMANENTLY"}
	tooExpensive := operational("pricey", 4.6)
	tooExpensive.PriceLevel = 4
	noPrice := operational("noprice", 4.2)
	keeper := operational("keep", 4.5)
	keeper.PriceLevel = 2

	pool := []places.Place{lowRating, noRating, closedDown, tooExpensive, noPrice, keeper}
	recs := Rank(pool, Options{PriceLevel: 2, Limit: 10})

	// absent price level passes the ceiling, everything else is cut
	assert.Equal(t, []string{"keep", "noprice"}, rankedIDs(recs))
}

func TestRankOpenNowRequested(t *testing.T) {
	open := operational("open", 4.3)
	open.OpeningHours = &places.OpeningHours{OpenNow: true}
	shut := operational("shut", 4.9)
	shut.OpeningHours = &places.OpeningHours{OpenNow: false}
	unknown := operational("unknown", 4.7)

	recs := Rank([]places.Place{shut, unknown, open}, Options{OpenNow: true, Limit: 10})
	assert.Equal(t, []string{"open"}, rankedIDs(recs))

	// without the flag, the open state is not consulted
	recs = Rank([]places.Place{shut, unknown, open}, Options{Limit: 10})
	assert.Len(t, recs, 3)
}

func TestRankEatenSortsLastRegardlessOfRating(t *testing.T) {
	best := operational("best", 4.9)
	good := operational("good", 4.4)
	fine := operational("fine", 4.1)

	recs := Rank([]places.Place{fine, best, good}, Options{
		EatenIDs: EatenSet([]string{"best"}),
		Limit:    10,
	})

	require.Equal(t, []string{"good", "fine", "best"}, rankedIDs(recs))
	assert.False(t, recs[0].IsEaten)
	assert.False(t, recs[1].IsEaten)
	assert.True(t, recs[2].IsEaten)
}

func TestRankStableOnEqualRating(t *testing.T) {
	a := operational("a", 4.5)
	b := operational("b", 4.5)
	c := operational("c", 4.5)

	recs := Rank([]places.Place{a, b, c}, Options{Limit: 10})
	assert.Equal(t, []string{"a", "b", "c"}, rankedIDs(recs))
}

func TestRankBoundedOutput(t *testing.T) {
	pool := []places.Place{
		operational("1", 4.1), operational("2", 4.2), operational("3", 4.3),
		operational("4", 4.4), operational("5", 4.5), operational("6", 4.6),
		operational("7", 4.7),
	}

	recs := Rank(pool, Options{Limit: 5})
	require.Len(t, recs, 5)
	assert.Equal(t, []string{"7", "6", "5", "4", "3"}, rankedIDs(recs))
}

func TestRankEmptyPool(t *testing.T) {
	recs := Rank(nil, Options{Limit: 5})
	assert.Empty(t, recs)
	assert.NotNil(t, recs)
}

func TestEatenSet(t *testing.T) {
	assert.Nil(t, EatenSet(nil))
	assert.Nil(t, EatenSet([]string{}))

	set := EatenSet([]string{"a", "", "b", "a"})
	assert.Len(t, set, 2)
	_, ok := set["a"]
	assert.True(t, ok)
}
