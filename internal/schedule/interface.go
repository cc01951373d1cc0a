package schedule

import "context"

// UseCase defines the business logic interface for the schedule domain.
type UseCase interface {
	// ExtractIntent turns free-form text (optionally with an image) into a
	// structured ScheduleIntent via the model backend.
	ExtractIntent(ctx context.Context, input ExtractInput) (ExtractOutput, error)

	// ApplyIntent commits an intent against the external store.
	ApplyIntent(ctx context.Context, input ApplyInput) (ApplyOutput, error)

	// ListItems reads the current store snapshot for one target kind.
	ListItems(ctx context.Context, input ListInput) (ListOutput, error)

	// Summarize produces a short natural-language briefing of upcoming items.
	Summarize(ctx context.Context) (SummarizeOutput, error)
}
