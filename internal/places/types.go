package places

// Place mirrors one result entry of the provider's nearby-search response.
// Field names map 1:1 to the provider payload; absent numeric fields decode
// to their zero value (a missing rating counts as 0).
type Place struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	Rating           float64       `json:"rating"`
	UserRatingsTotal int           `json:"user_ratings_total"`
	Vicinity         string        `json:"vicinity"`
	Types            []string      `json:"types"`
	BusinessStatus   string        `json:"business_status"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`
	PriceLevel       int           `json:"price_level"`
	Photos           []Photo       `json:"photos,omitempty"`
	Geometry         Geometry      `json:"geometry"`
}

type OpeningHours struct {
	OpenNow bool `json:"open_now"`
}

type Photo struct {
	PhotoReference string `json:"photo_reference"`
}

type Geometry struct {
	Location LatLng `json:"location"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsOpenNow reports the provider's open flag, false when unknown.
func (p Place) IsOpenNow() bool {
	return p.OpeningHours != nil && p.OpeningHours.OpenNow
}

// PhotoReference returns the first photo reference, if any.
func (p Place) PhotoReference() string {
	if len(p.Photos) == 0 {
		return ""
	}
	return p.Photos[0].PhotoReference
}

type nearbyResponse struct {
	Status        string  `json:"status"`
	ErrorMessage  string  `json:"error_message"`
	Results       []Place `json:"results"`
	NextPageToken string  `json:"next_page_token"`
}
