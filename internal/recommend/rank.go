package recommend

import (
	"sort"

	"MoodEat/internal/places"
)

const (
	// MinRating is the floor a candidate must reach to be recommended.
	// Candidates without a rating decode to 0 and never pass.
	MinRating = 4.0

	statusOperational = "OPERATIONAL"
)

// Options carries the per-request filter and ranking inputs.
type Options struct {
	// PriceLevel is the maximum acceptable price level, 0 when unset.
	PriceLevel int
	// OpenNow requires the provider's open flag when true.
	OpenNow bool
	// EatenIDs holds place ids to deprioritize, not exclude.
	EatenIDs map[string]struct{}
	// Limit bounds the output length.
	Limit int
}

// Recommendation is a surviving candidate plus its eaten flag.
type Recommendation struct {
	Place   places.Place
	IsEaten bool
}

// Rank filters the pool, orders it and truncates to the limit.
//
// Filter: rating >= MinRating, operational status, open-now when requested,
// and the candidate's own price level (when declared) at or under the
// requested ceiling. Candidates with no declared price level pass the price
// filter unconditionally.
//
// Order: places already eaten sort strictly after the rest regardless of
// rating; within the same eaten group, descending rating. The sort is stable
// so equal-rating candidates keep their pool order.
func Rank(pool []places.Place, opts Options) []Recommendation {
	filtered := make([]places.Place, 0, len(pool))
	for _, p := range pool {
		if p.Rating < MinRating {
			continue
		}
		if p.BusinessStatus != statusOperational {
			continue
		}
		if opts.OpenNow && !p.IsOpenNow() {
			continue
		}
		if opts.PriceLevel > 0 && p.PriceLevel > 0 && p.PriceLevel > opts.PriceLevel {
			continue
		}
		filtered = append(filtered, p)
	}

	eaten := func(p places.Place) bool {
		_, ok := opts.EatenIDs[p.PlaceID]
		return ok
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		ei, ej := eaten(filtered[i]), eaten(filtered[j])
		if ei != ej {
			return !ei
		}
		return filtered[i].Rating > filtered[j].Rating
	})

	if opts.Limit > 0 && len(filtered) > opts.Limit {
		filtered = filtered[:opts.Limit]
	}

	recs := make([]Recommendation, 0, len(filtered))
	for _, p := range filtered {
		recs = append(recs, Recommendation{Place: p, IsEaten: eaten(p)})
	}
	return recs
}

// EatenSet converts the request's eaten id list into a lookup set.
func EatenSet(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}
