package mockdata

import (
	"fmt"
	"hash/fnv"
	"sync"

	"MoodEat/internal/idgen"
	"MoodEat/internal/types"
)

// Serves as the /restaurants fallback when no provider credential is
// configured or the provider is unreachable.

type seed struct {
	name     string
	cuisine  string
	rating   float64
	reviews  int
	price    int
	distance int
	open     bool
}

var seeds = []seed{
	{name: "阿村牛肉麵", cuisine: "台式", rating: 4.6, reviews: 1824, price: 1, distance: 350, open: true},
	{name: "一幸舍豚骨拉麵", cuisine: "日式", rating: 4.4, reviews: 967, price: 2, distance: 540, open: true},
	{name: "府中炸雞大王", cuisine: "台式", rating: 4.2, reviews: 2210, price: 1, distance: 210, open: true},
	{name: "湊湊火鍋", cuisine: "日式", rating: 4.5, reviews: 1532, price: 3, distance: 880, open: true},
	{name: "Bella 義式廚房", cuisine: "義式", rating: 4.3, reviews: 645, price: 3, distance: 1200, open: false},
	{name: "首爾石鍋拌飯", cuisine: "韓式", rating: 4.1, reviews: 428, price: 2, distance: 760, open: true},
	{name: "泰口味船麵", cuisine: "泰式", rating: 4.0, reviews: 389, price: 2, distance: 990, open: true},
	{name: "晨光早午餐", cuisine: "美式", rating: 4.7, reviews: 1105, price: 2, distance: 430, open: true},
	{name: "老張廣東粥", cuisine: "台式", rating: 4.3, reviews: 876, price: 1, distance: 300, open: true},
	{name: "燒肉眾", cuisine: "日式", rating: 4.4, reviews: 1340, price: 4, distance: 1500, open: false},
}

var (
	once        sync.Once
	restaurants []types.NearbyRestaurant
)

// Restaurants returns the generated mock set. Ids are minted once per
// process so repeated fallback responses stay consistent within a run.
func Restaurants(lat, lng float64) []types.NearbyRestaurant {
	once.Do(func() {
		restaurants = make([]types.NearbyRestaurant, 0, len(seeds))
		for _, s := range seeds {
			restaurants = append(restaurants, types.NearbyRestaurant{
				Id:               fmt.Sprintf("mock-%d", idgen.Next()),
				Name:             s.name,
				Rating:           s.rating,
				UserRatingsTotal: s.reviews,
				ReviewCount:      s.reviews,
				Vicinity:         fmt.Sprintf("新北市板橋區（%s）", s.cuisine),
				Types:            []string{"restaurant", "food"},
				Distance:         s.distance,
				ImageUrl:         imageFor(s.name),
				IsOpen:           s.open,
				PriceLevel:       s.price,
			})
		}
	})

	out := make([]types.NearbyRestaurant, len(restaurants))
	copy(out, restaurants)
	for i := range out {
		out[i].Lat = lat + float64(i%5-2)*0.001
		out[i].Lng = lng + float64(i%3-1)*0.001
	}
	return out
}

var stockImages = []string{
	"https://images.unsplash.com/photo-1546069901-ba9599a7e63c?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1555939594-58d7cb561ad1?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?auto=format&fit=crop&w=800&q=80",
}

// imageFor picks a stable stock photo per restaurant name.
func imageFor(name string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return stockImages[int(h.Sum32())%len(stockImages)]
}
