// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"context"
	"time"

	"MoodEat/internal/config"
	"MoodEat/internal/mood"
	"MoodEat/internal/places"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/zeromicro/go-zero/core/logx"
)

type ServiceContext struct {
	Config config.Config

	Mood   mood.Analyzer
	Places places.Searcher
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)
	sc := &ServiceContext{Config: c}

	var chatModel model.BaseChatModel
	if c.ChatModel.APIKey != "" {
		cm, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
			BaseURL: c.ChatModel.BaseUrl,
			APIKey:  c.ChatModel.APIKey,
			Model:   c.ChatModel.Model,
		})
		if err != nil {
			logx.Errorw("init ark chat model failed", logx.Field("err", err))
		} else {
			chatModel = cm
			logx.Infow("ark chat model initialized")
		}
	}

	logger := logx.WithContext(context.Background())
	sc.Mood = mood.NewAnalyzer(context.Background(), logger, chatModel,
		time.Duration(c.ChatModel.TimeoutSeconds)*time.Second)
	sc.Places = places.NewClient(c.Places)

	return sc
}
