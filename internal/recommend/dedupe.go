package recommend

import "MoodEat/internal/places"

// Dedupe flattens keyword batches into one pool, unique by place id. Batches
// are scanned in keyword order, each batch in provider order, and the first
// occurrence of a place wins, so the pool order is first-seen order.
func Dedupe(batches [][]places.Place) []places.Place {
	total := 0
	for _, batch := range batches {
		total += len(batch)
	}

	seen := make(map[string]struct{}, total)
	pool := make([]places.Place, 0, total)
	for _, batch := range batches {
		for _, place := range batch {
			if place.PlaceID == "" {
				continue
			}
			if _, ok := seen[place.PlaceID]; ok {
				continue
			}
			seen[place.PlaceID] = struct{}{}
			pool = append(pool, place)
		}
	}

	return pool
}
