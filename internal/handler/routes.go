// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"MoodEat/internal/handler/recommend"
	"MoodEat/internal/handler/restaurant"
	"MoodEat/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/recommend",
				Handler: recommend.RecommendHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/restaurants",
				Handler: restaurant.ListNearbyHandler(serverCtx),
			},
		},
	)
}
