package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	"github.com/SscSPs/blogging_platform_app/internal/core/ports/gateways"
	"github.com/SscSPs/blogging_platform_app/internal/middleware"
	"github.com/SscSPs/blogging_platform_app/internal/utils"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Events    gateways.EventPublisher
	Analytics *utils.PosthogClientWrapper
	Now       func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

func (s *BaseService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// publishEvent emits a domain event and reports it to analytics.
// Failures are logged only: the state change has already been committed.
func (s *BaseService) publishEvent(ctx context.Context, eventType, key, distinctID string, payload map[string]any) {
	if s.Analytics != nil {
		s.Analytics.Enqueue(distinctID, eventType, payload)
	}
	if s.Events == nil {
		return
	}
	event := domain.Event{Type: eventType, Key: key, OccurredAt: s.now(), Payload: payload}
	if err := s.Events.Publish(ctx, event); err != nil {
		s.GetLogger(ctx).Warn("Failed to publish domain event",
			slog.String("event_type", eventType),
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}
