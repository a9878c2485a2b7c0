// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package recommend

import (
	"net/http"

	"MoodEat/internal/consts/errno"
	"MoodEat/internal/logic/recommend"
	"MoodEat/internal/svc"
	"MoodEat/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

func RecommendHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RecommendRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errors.New(int(errno.InvalidParam), errno.MsgMissingParams))
			return
		}

		l := recommend.NewRecommendLogic(r.Context(), svcCtx)
		resp, err := l.Recommend(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
