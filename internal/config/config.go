// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	LogConf logx.LogConf

	ChatModel ModelConf

	Places PlacesConf

	Recommend RecommendConf
}

type ModelConf struct {
	BaseUrl        string `json:",optional"`
	APIKey         string `json:",optional"`
	Model          string `json:",optional"`
	TimeoutSeconds int    `json:",default=15"`
}

type PlacesConf struct {
	APIKey         string `json:",optional"`
	Language       string `json:",default=zh-TW"`
	TimeoutSeconds int    `json:",default=10"`
}

type RecommendConf struct {
	// Limit bounds the restaurants array in a recommendation response.
	Limit int `json:",default=5"`
	// MaxKeywords bounds the nearby-search fan-out width per request.
	MaxKeywords int `json:",default=5"`
}
