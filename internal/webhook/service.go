package webhook

import (
	"context"

	"go.uber.org/zap"

	"github.com/CapsLuky/api.flow.core.user/internal/config"
	"github.com/CapsLuky/api.flow.core.user/internal/models"
)

// UserStore is the persistence contract the dispatcher drives. Every
// operation is scoped to a tenant collection and reports a boolean
// outcome; implementations must not panic across this boundary.
type UserStore interface {
	InsertUser(ctx context.Context, tenant models.Tenant, user *models.ClerkUser) bool
	UpdateUser(ctx context.Context, tenant models.Tenant, user *models.ClerkUser) bool
	DeleteUserByClerkID(ctx context.Context, tenant models.Tenant, clerkID string) bool
}

// Service is the webhook intake pipeline: admission, decode, dispatch,
// persistence. It returns plain booleans; the HTTP handler maps them
// to status codes.
type Service struct {
	guard  *IntakeGuard
	store  UserStore
	logger *zap.Logger
}

func NewService(cfg config.ClerkConfig, store UserStore, logger *zap.Logger) *Service {
	return &Service{
		guard:  NewIntakeGuard(cfg, logger),
		store:  store,
		logger: logger,
	}
}

// ProcessWebhook runs a single delivery through the pipeline. False
// means the sender should retry (it maps to a 400); unknown event
// types return true so the sender does not retry them.
func (s *Service) ProcessWebhook(ctx context.Context, body []byte, headers RequestHeaders) bool {
	admission, err := s.guard.Admit(body, headers)
	if err != nil {
		return false
	}

	event, err := DecodeEvent(admission.Payload)
	if err != nil {
		s.logger.Warn("failed to decode webhook event",
			zap.String("tenant", admission.Tenant.String()),
			zap.Error(err),
		)
		return false
	}

	s.logger.Info("processing webhook event",
		zap.String("tenant", admission.Tenant.String()),
		zap.String("event_type", string(event.Type)),
	)

	switch event.Type {
	case models.UserCreated:
		return s.handleUserCreated(ctx, admission.Tenant, event)
	case models.UserUpdated:
		return s.handleUserUpdated(ctx, admission.Tenant, event)
	case models.UserDeleted:
		return s.handleUserDeleted(ctx, admission.Tenant, event)
	default:
		return s.handleUnknownEvent(event.Type)
	}
}

func (s *Service) handleUserCreated(ctx context.Context, tenant models.Tenant, event *models.ClerkEvent) bool {
	user, err := DecodeUser(event)
	if err != nil {
		s.logger.Warn("failed to decode created user",
			zap.String("tenant", tenant.String()),
			zap.String("event_type", string(event.Type)),
			zap.Error(err),
		)
		return false
	}

	s.logger.Info("persisting created user",
		zap.String("tenant", tenant.String()),
		zap.String("clerk_id", user.ClerkID),
	)
	return s.store.InsertUser(ctx, tenant, user)
}

func (s *Service) handleUserUpdated(ctx context.Context, tenant models.Tenant, event *models.ClerkEvent) bool {
	user, err := DecodeUser(event)
	if err != nil {
		s.logger.Warn("failed to decode updated user",
			zap.String("tenant", tenant.String()),
			zap.String("event_type", string(event.Type)),
			zap.Error(err),
		)
		return false
	}

	s.logger.Info("updating user",
		zap.String("tenant", tenant.String()),
		zap.String("clerk_id", user.ClerkID),
	)
	return s.store.UpdateUser(ctx, tenant, user)
}

func (s *Service) handleUserDeleted(ctx context.Context, tenant models.Tenant, event *models.ClerkEvent) bool {
	deleted, err := DecodeDeletedUser(event)
	if err != nil {
		s.logger.Warn("failed to decode deleted user",
			zap.String("tenant", tenant.String()),
			zap.String("event_type", string(event.Type)),
			zap.Error(err),
		)
		return false
	}

	s.logger.Info("deleting user",
		zap.String("tenant", tenant.String()),
		zap.String("clerk_id", deleted.ID),
	)
	return s.store.DeleteUserByClerkID(ctx, tenant, deleted.ID)
}

// handleUnknownEvent acknowledges event types we do not route, so the
// sender does not keep retrying them. Session, email, organization,
// membership and invitation events all land here.
func (s *Service) handleUnknownEvent(eventType models.ClerkEventType) bool {
	s.logger.Warn("unhandled webhook event type",
		zap.String("event_type", string(eventType)),
	)
	return true
}
