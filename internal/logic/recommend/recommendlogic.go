// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package recommend

import (
	"context"

	"MoodEat/internal/consts/errno"
	"MoodEat/internal/logic/helper"
	"MoodEat/internal/mood"
	"MoodEat/internal/places"
	engine "MoodEat/internal/recommend"
	"MoodEat/internal/svc"
	"MoodEat/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type RecommendLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRecommendLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RecommendLogic {
	return &RecommendLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Recommend runs the full pipeline: mood inference on the latest message,
// keyword derivation, the nearby-search fan-out, dedupe and rank. Degraded
// inference or an unconfigured provider shrink the restaurant list, never
// the response.
func (l *RecommendLogic) Recommend(req *types.RecommendRequest) (resp *types.RecommendResponse, err error) {
	if len(req.Messages) == 0 {
		return nil, errors.New(int(errno.InvalidParam), errno.MsgMissingParams)
	}

	last := req.Messages[len(req.Messages)-1]
	history := make([]string, 0, len(req.Messages)-1)
	for _, m := range req.Messages[:len(req.Messages)-1] {
		if m.Text != "" {
			history = append(history, m.Text)
		}
	}

	analysis := l.svcCtx.Mood.Analyze(l.ctx, mood.Input{
		Text:    last.Text,
		History: history,
	})
	l.Logger.Infof("mood analysis: mood=%s foodTypes=%v", analysis.Mood, analysis.FoodTypes)

	keywords := engine.DeriveKeywords(analysis.FoodTypes, req.Cuisines, l.svcCtx.Config.Recommend.MaxKeywords)

	var restaurants []types.Restaurant
	if len(keywords) > 0 {
		batches := places.FanOut(l.ctx, l.svcCtx.Places, keywords, places.NearbyQuery{
			Lat:      req.Lat,
			Lng:      req.Lng,
			Radius:   req.Radius,
			MaxPrice: req.PriceLevel,
			OpenNow:  req.OpenNow,
		})

		pool := engine.Dedupe(batches)
		recs := engine.Rank(pool, engine.Options{
			PriceLevel: req.PriceLevel,
			OpenNow:    req.OpenNow,
			EatenIDs:   engine.EatenSet(req.EatenIds),
			Limit:      l.svcCtx.Config.Recommend.Limit,
		})
		restaurants = helper.ToRestaurants(recs)
	} else {
		l.Logger.Infof("no search keywords derived, skipping nearby search")
		restaurants = []types.Restaurant{}
	}

	foodTypes := analysis.FoodTypes
	if foodTypes == nil {
		foodTypes = []string{}
	}

	resp = &types.RecommendResponse{
		Mood:             analysis.Mood,
		Reason:           analysis.Reason,
		FoodTypes:        foodTypes,
		FollowUpQuestion: analysis.FollowUpQuestion,
		Restaurants:      restaurants,
	}

	return
}
