// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package restaurant

import (
	"net/http"

	"MoodEat/internal/consts/errno"
	"MoodEat/internal/logic/restaurant"
	"MoodEat/internal/svc"
	"MoodEat/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

func ListNearbyHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ListNearbyRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errors.New(int(errno.InvalidParam), errno.MsgMissingParams))
			return
		}

		l := restaurant.NewListNearbyLogic(r.Context(), svcCtx)
		resp, err := l.ListNearby(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
