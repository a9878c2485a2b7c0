package helper

import (
	"MoodEat/internal/recommend"
	"MoodEat/internal/types"
)

func ToRestaurant(rec recommend.Recommendation) types.Restaurant {
	p := rec.Place
	return types.Restaurant{
		Id:               p.PlaceID,
		Name:             p.Name,
		Rating:           p.Rating,
		UserRatingsTotal: p.UserRatingsTotal,
		Vicinity:         p.Vicinity,
		Types:            p.Types,
		IsOpen:           p.IsOpenNow(),
		PhotoReference:   p.PhotoReference(),
		PriceLevel:       p.PriceLevel,
		Lat:              p.Geometry.Location.Lat,
		Lng:              p.Geometry.Location.Lng,
		IsEaten:          rec.IsEaten,
	}
}

func ToRestaurants(recs []recommend.Recommendation) []types.Restaurant {
	restaurants := make([]types.Restaurant, 0, len(recs))
	for _, rec := range recs {
		restaurants = append(restaurants, ToRestaurant(rec))
	}
	return restaurants
}
