package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/middleware"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// requestValidator reads the same `binding` tags gin uses, so dto structs are
// checked identically whether they arrive over HTTP or from Go callers.
var requestValidator = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

// BaseService provides common functionality for all services
type BaseService struct {
	Store     portsrepo.StateStore
	Publisher portssvc.NotificationPublisher
	Now       func() time.Time
	tracer    trace.Tracer
}

// ServiceOption is a functional option for configuring a service
type ServiceOption func(*BaseService)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Now = now
	}
}

// WithNotificationPublisher fans committed notifications out through p.
func WithNotificationPublisher(p portssvc.NotificationPublisher) ServiceOption {
	return func(s *BaseService) {
		s.Publisher = p
	}
}

func newBaseService(store portsrepo.StateStore, options ...ServiceOption) BaseService {
	base := BaseService{
		Store:  store,
		Now:    time.Now,
		tracer: otel.Tracer("github.com/sangwaemm/The-Partners-App/internal/core/services"),
	}
	for _, option := range options {
		option(&base)
	}
	return base
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
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// StartSpan opens a tracing span named after the service operation.
func (s *BaseService) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name)
}

// Today is the current calendar date according to the service clock.
func (s *BaseService) Today() domain.Date {
	return domain.DateOf(s.Now())
}

// ValidateRequest checks the binding tags of req and wraps failures in apperrors.ErrValidation.
func (s *BaseService) ValidateRequest(req any) error {
	err := requestValidator.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
}

// NewNotification builds an admin-targeted notification stamped with the service clock.
func (s *BaseService) NewNotification(message string, typ domain.NotificationType) domain.Notification {
	return domain.Notification{
		ID:         uuid.NewString(),
		Message:    message,
		Type:       typ,
		Date:       s.Now().UTC(),
		TargetRole: domain.RoleAdmin,
	}
}

// PrependNotification adds n as the newest notification of snap.
func PrependNotification(snap *domain.Snapshot, n domain.Notification) {
	snap.Notifications = append([]domain.Notification{n}, snap.Notifications...)
}

// Publish hands committed notifications to the publisher, if any.
// Failures are logged only; the command has already been committed.
func (s *BaseService) Publish(ctx context.Context, notes ...domain.Notification) {
	if s.Publisher == nil {
		return
	}
	for _, n := range notes {
		if err := s.Publisher.PublishNotification(ctx, n); err != nil {
			s.LogError(ctx, err, "Failed to publish notification", slog.String("notification_id", n.ID))
		}
	}
}

func requirePositive(field string, v decimal.Decimal) error {
	if v.Sign() <= 0 {
		return fmt.Errorf("%w: %s must be positive", apperrors.ErrValidation, field)
	}
	return nil
}

func requireNonNegative(field string, v decimal.Decimal) error {
	if v.Sign() < 0 {
		return fmt.Errorf("%w: %s cannot be negative", apperrors.ErrValidation, field)
	}
	return nil
}

func requireMember(snap *domain.Snapshot, memberID string) (domain.Member, error) {
	m, ok := domain.FindMember(snap.Members, memberID)
	if !ok {
		return domain.Member{}, fmt.Errorf("%w: member %s", apperrors.ErrNotFound, memberID)
	}
	return m, nil
}

// orToday returns d, or today when d is the zero date.
func (s *BaseService) orToday(d domain.Date) domain.Date {
	if d.IsZero() {
		return s.Today()
	}
	return d
}
