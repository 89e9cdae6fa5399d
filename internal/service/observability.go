package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/alexanderramin/apex/internal/repository"
)

// UseCaseEvent is the telemetry of one service use case.
type UseCaseEvent struct {
	Name      string
	StartedAt time.Time
	Duration  time.Duration
	Err       error
	// Fields carries domain context such as week, day, mode and xp.
	Fields map[string]any
}

// Success reports whether the use case completed without error.
func (e UseCaseEvent) Success() bool { return e.Err == nil }

// Refused reports whether the use case stopped at a guard the athlete can
// act on, as opposed to a storage or internal failure.
func (e UseCaseEvent) Refused() bool {
	for _, guard := range refusals {
		if errors.Is(e.Err, guard) {
			return true
		}
	}
	return false
}

var refusals = []error{
	ErrNotOnboarded,
	ErrAlreadyOnboarded,
	ErrInvalidInput,
	ErrNoProgramDefined,
	ErrNoActiveSession,
	ErrSessionAlreadyActive,
	ErrSeriesOutOfRange,
	ErrRecoveryConfirmationRequired,
	ErrUnknownExercise,
	ErrUnknownChallenge,
	ErrUnknownQuest,
	ErrUnknownSession,
	repository.ErrAmbiguousID,
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes one training_use_case record per event to w.
// Guard refusals log at WARN, failures at ERROR. A nil writer disables
// logging.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []slog.Attr{
		slog.String("use_case", event.Name),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
		slog.Bool("success", event.Success()),
	}
	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, event.Fields[k]))
	}

	level := slog.LevelInfo
	switch {
	case event.Refused():
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("refused", event.Err.Error()))
	case event.Err != nil:
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	}
	o.logger.LogAttrs(ctx, level, "training_use_case", attrs...)
}

func observe(ctx context.Context, obs UseCaseObserver, name string, startedAt time.Time, fields map[string]any, err error) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Err:       err,
		Fields:    fields,
	})
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
