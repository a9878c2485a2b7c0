// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"net/http"

	"MoodEat/internal/config"
	"MoodEat/internal/consts/errno"
	"MoodEat/internal/handler"
	"MoodEat/internal/svc"
	"MoodEat/internal/types"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

var configFile = flag.String("f", "etc/moodeat-api.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf, rest.WithCors())
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	httpx.SetErrorHandlerCtx(errorHandler)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

// errorHandler maps coded errors to the fixed client-facing payloads.
// Anything not explicitly a parameter violation is reported generically and
// detailed only in the server logs.
func errorHandler(ctx context.Context, err error) (int, any) {
	var cm *errors.CodeMsg
	if stderrors.As(err, &cm) && cm.Code == errno.InvalidParam {
		return http.StatusBadRequest, types.ErrorResponse{Error: cm.Msg}
	}

	logx.WithContext(ctx).Errorf("request failed: %v", err)
	return http.StatusInternalServerError, types.ErrorResponse{Error: errno.MsgInternalError}
}
