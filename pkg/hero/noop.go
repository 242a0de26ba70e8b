package hero

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// NoopEventSink is a no-operation implementation of EventSink
type NoopEventSink struct{}

// NewNoopEventSink creates a new no-operation event sink
func NewNoopEventSink() EventSink {
	return &NoopEventSink{}
}

func (n *NoopEventSink) PrimaryHeroSaved(ctx context.Context, hero *PrimaryHero) error {
	return nil
}

func (n *NoopEventSink) PrimaryHeroDeleted(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (n *NoopEventSink) SecondaryHeroSaved(ctx context.Context, hero *SecondaryHero) error {
	return nil
}

func (n *NoopEventSink) SecondaryHeroDeleted(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (n *NoopEventSink) ModuleSaved(ctx context.Context, module *SecondaryHeroModule) error {
	return nil
}

func (n *NoopEventSink) ModuleDeleted(ctx context.Context, id uuid.UUID) error {
	return nil
}

// LogEventSink writes shelf lifecycle events to a structured logger
type LogEventSink struct {
	logger *slog.Logger
}

// NewLogEventSink creates an event sink logging to logger, or to the default
// logger when nil
func NewLogEventSink(logger *slog.Logger) EventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogEventSink{logger: logger}
}

func (l *LogEventSink) PrimaryHeroSaved(ctx context.Context, hero *PrimaryHero) error {
	l.logger.InfoContext(ctx, "Primary hero saved",
		"id", hero.ID, "discovery_item_id", hero.DiscoveryItemID, "enabled", hero.Enabled)
	return nil
}

func (l *LogEventSink) PrimaryHeroDeleted(ctx context.Context, id uuid.UUID) error {
	l.logger.InfoContext(ctx, "Primary hero deleted", "id", id)
	return nil
}

func (l *LogEventSink) SecondaryHeroSaved(ctx context.Context, hero *SecondaryHero) error {
	l.logger.InfoContext(ctx, "Secondary hero saved", "id", hero.ID, "enabled", hero.Enabled)
	return nil
}

func (l *LogEventSink) SecondaryHeroDeleted(ctx context.Context, id uuid.UUID) error {
	l.logger.InfoContext(ctx, "Secondary hero deleted", "id", id)
	return nil
}

func (l *LogEventSink) ModuleSaved(ctx context.Context, module *SecondaryHeroModule) error {
	l.logger.InfoContext(ctx, "Secondary hero module saved", "id", module.ID, "shelf_id", module.ShelfID)
	return nil
}

func (l *LogEventSink) ModuleDeleted(ctx context.Context, id uuid.UUID) error {
	l.logger.InfoContext(ctx, "Secondary hero module deleted", "id", id)
	return nil
}
