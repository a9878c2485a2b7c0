// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type ChatMessage struct {
	Role string `json:"role,options=user|assistant"`
	Text string `json:"text,optional"`
}

type RecommendRequest struct {
	Messages   []ChatMessage `json:"messages"`
	Lat        float64       `json:"lat,range=[-90:90]"`
	Lng        float64       `json:"lng,range=[-180:180]"`
	PriceLevel int           `json:"priceLevel,optional,range=[0:4]"`
	Radius     int           `json:"radius,default=1500,range=(0:50000]"`
	Cuisines   []string      `json:"cuisines,optional"`
	EatenIds   []string      `json:"eatenIds,optional"`
	OpenNow    bool          `json:"openNow,default=false"`
}

type Restaurant struct {
	Id               string   `json:"id"`
	Name             string   `json:"name"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	Vicinity         string   `json:"vicinity"`
	Types            []string `json:"types"`
	IsOpen           bool     `json:"isOpen"`
	PhotoReference   string   `json:"photoReference,omitempty"`
	PriceLevel       int      `json:"priceLevel,omitempty"`
	Lat              float64  `json:"lat"`
	Lng              float64  `json:"lng"`
	IsEaten          bool     `json:"isEaten"`
}

type RecommendResponse struct {
	Mood             string       `json:"mood"`
	Reason           string       `json:"reason"`
	FoodTypes        []string     `json:"foodTypes"`
	FollowUpQuestion string       `json:"followUpQuestion,omitempty"`
	Restaurants      []Restaurant `json:"restaurants"`
}

type ListNearbyRequest struct {
	Lat     float64 `form:"lat,default=25.0117"`
	Lng     float64 `form:"lng,default=121.4651"`
	Radius  int     `form:"radius,default=2000,range=(0:50000]"`
	Keyword string  `form:"keyword,optional"`
}

type NearbyRestaurant struct {
	Id               string   `json:"id"`
	Name             string   `json:"name"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	ReviewCount      int      `json:"reviewCount"`
	Vicinity         string   `json:"vicinity"`
	Types            []string `json:"types"`
	Distance         int      `json:"distance"`
	ImageUrl         string   `json:"imageUrl"`
	IsOpen           bool     `json:"isOpen"`
	PriceLevel       int      `json:"priceLevel,omitempty"`
	Lat              float64  `json:"lat"`
	Lng              float64  `json:"lng"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
