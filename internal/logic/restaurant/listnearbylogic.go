// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package restaurant

import (
	"context"
	"time"

	"MoodEat/internal/mockdata"
	"MoodEat/internal/places"
	"MoodEat/internal/svc"
	"MoodEat/internal/types"
	"MoodEat/internal/util"

	"github.com/zeromicro/go-zero/core/logx"
)

const (
	maxPages = 3
	// the provider needs a short delay before a next_page_token becomes valid
	pageTokenDelay = 2 * time.Second

	typeFood = "food"
)

type ListNearbyLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListNearbyLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListNearbyLogic {
	return &ListNearbyLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ListNearby returns a broad nearby listing for browsing, paging through up
// to three provider result pages. Without a provider credential, or when the
// provider yields nothing usable, it serves generated mock restaurants.
func (l *ListNearbyLogic) ListNearby(req *types.ListNearbyRequest) ([]types.NearbyRestaurant, error) {
	if !l.svcCtx.Places.Configured() {
		l.Logger.Infof("no provider credential, serving mock restaurants")
		return mockdata.Restaurants(req.Lat, req.Lng), nil
	}

	all := l.fetchPages(req)
	if len(all) == 0 {
		l.Logger.Infof("no nearby results, serving mock restaurants")
		return mockdata.Restaurants(req.Lat, req.Lng), nil
	}

	restaurants := make([]types.NearbyRestaurant, 0, len(all))
	for _, p := range all {
		isOpen := true
		if p.OpeningHours != nil {
			isOpen = p.OpeningHours.OpenNow
		}
		restaurants = append(restaurants, types.NearbyRestaurant{
			Id:               p.PlaceID,
			Name:             p.Name,
			Rating:           p.Rating,
			UserRatingsTotal: p.UserRatingsTotal,
			ReviewCount:      p.UserRatingsTotal,
			Vicinity:         p.Vicinity,
			Types:            p.Types,
			Distance:         util.HaversineMeters(req.Lat, req.Lng, p.Geometry.Location.Lat, p.Geometry.Location.Lng),
			ImageUrl:         l.svcCtx.Places.PhotoURL(p.PhotoReference()),
			IsOpen:           isOpen,
			PriceLevel:       p.PriceLevel,
			Lat:              p.Geometry.Location.Lat,
			Lng:              p.Geometry.Location.Lng,
		})
	}

	return restaurants, nil
}

func (l *ListNearbyLogic) fetchPages(req *types.ListNearbyRequest) []places.Place {
	var all []places.Place
	pageToken := ""

	for page := 0; page < maxPages; page++ {
		if pageToken != "" {
			select {
			case <-l.ctx.Done():
				return all
			case <-time.After(pageTokenDelay):
			}
		}

		res, err := l.svcCtx.Places.NearbySearch(l.ctx, places.NearbyQuery{
			Lat:       req.Lat,
			Lng:       req.Lng,
			Radius:    req.Radius,
			Keyword:   req.Keyword,
			Type:      typeFood,
			PageToken: pageToken,
		})
		if err != nil {
			l.Logger.Errorf("nearby listing page %d failed: %v", page+1, err)
			return all
		}

		all = append(all, res.Places...)
		if res.NextPageToken == "" {
			return all
		}
		pageToken = res.NextPageToken
	}

	return all
}
