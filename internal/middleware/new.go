package middleware

import (
	"schedule-assistant/config"
	"schedule-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	apiCfg  config.APIConfig
	limiter *rateLimiter
}

func New(l log.Logger, apiCfg config.APIConfig) Middleware {
	return Middleware{
		l:       l,
		apiCfg:  apiCfg,
		limiter: newRateLimiter(apiCfg.RateLimitPerMin),
	}
}
