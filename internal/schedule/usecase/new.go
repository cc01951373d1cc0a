package usecase

import (
	"schedule-assistant/internal/schedule/repository"
	"schedule-assistant/pkg/dateparse"
	"schedule-assistant/pkg/llmchat"
	pkgLog "schedule-assistant/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	llm   llmchat.IChat
	store repository.Store
	dates *dateparse.Parser
}

// New creates a new schedule UseCase instance.
func New(
	l pkgLog.Logger,
	llm llmchat.IChat,
	store repository.Store,
	dates *dateparse.Parser,
) *implUseCase {
	return &implUseCase{
		l:     l,
		llm:   llm,
		store: store,
		dates: dates,
	}
}
