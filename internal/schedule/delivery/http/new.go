package http

import (
	"schedule-assistant/internal/schedule"
	"schedule-assistant/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	Extract(c interface{})
	Apply(c interface{})
	List(c interface{})
	Summary(c interface{})
}

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
