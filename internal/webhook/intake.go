package webhook

import (
	"time"

	"go.uber.org/zap"

	"github.com/CapsLuky/api.flow.core.user/internal/config"
	"github.com/CapsLuky/api.flow.core.user/internal/models"
)

// RequestHeaders carries the request headers the intake needs. The
// handler extracts them so that nothing below the HTTP layer touches
// the framework context.
type RequestHeaders struct {
	ApplicationID string
	SvixID        string
	SvixTimestamp string
	SvixSignature string
}

// Admission is the result of a successful intake: the tenant the
// delivery belongs to and the verified payload, byte-identical to the
// request body.
type Admission struct {
	Tenant  models.Tenant
	Payload []byte
}

// tenantByApplicationID routes the application_id header to a tenant.
// Anything not in the table falls back to the multi-tenant application;
// adding a tenant means adding a row here plus its secret in config.
var tenantByApplicationID = map[string]models.Tenant{
	"comgas": models.TenantComgas,
}

// IntakeGuard authenticates incoming webhook deliveries before any
// payload interpretation happens.
type IntakeGuard struct {
	cfg    config.ClerkConfig
	logger *zap.Logger
}

func NewIntakeGuard(cfg config.ClerkConfig, logger *zap.Logger) *IntakeGuard {
	return &IntakeGuard{cfg: cfg, logger: logger}
}

// Admit resolves the tenant, selects its signing secret and verifies
// the Svix signature over the raw body. The body must be fully
// buffered by the caller: the entire body is the signed message.
func (g *IntakeGuard) Admit(body []byte, headers RequestHeaders) (*Admission, error) {
	if headers.ApplicationID == "" {
		g.logger.Warn("webhook rejected: application_id header is missing")
		return nil, ErrMissingTenant
	}

	tenant, ok := tenantByApplicationID[headers.ApplicationID]
	if !ok {
		tenant = models.TenantMultiTenant
	}

	secret := g.secretFor(tenant)
	if secret == "" {
		g.logger.Error("webhook secret is not configured",
			zap.String("application_id", headers.ApplicationID),
			zap.String("tenant", tenant.String()),
		)
		return nil, ErrMisconfiguredSecret
	}

	if headers.SvixID == "" || headers.SvixTimestamp == "" || headers.SvixSignature == "" {
		g.logger.Warn("webhook rejected: svix headers are missing",
			zap.String("tenant", tenant.String()),
		)
		return nil, ErrMissingSignatureHeaders
	}

	if err := VerifyTimestamp(headers.SvixTimestamp, g.cfg.TimestampTolerance, time.Now()); err != nil {
		g.logger.Warn("webhook rejected: stale timestamp",
			zap.String("tenant", tenant.String()),
			zap.Error(err),
		)
		return nil, ErrInvalidSignature
	}

	if err := VerifySignature(secret, headers.SvixID, headers.SvixTimestamp, body, headers.SvixSignature); err != nil {
		g.logger.Warn("webhook rejected: signature verification failed",
			zap.String("tenant", tenant.String()),
			zap.Error(err),
		)
		return nil, ErrInvalidSignature
	}

	g.logger.Info("webhook verified",
		zap.String("tenant", tenant.String()),
	)

	return &Admission{Tenant: tenant, Payload: body}, nil
}

func (g *IntakeGuard) secretFor(tenant models.Tenant) string {
	if tenant == models.TenantComgas {
		return g.cfg.WebhookSecretComgas
	}
	return g.cfg.WebhookSecret
}
