package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/kgbdns/kgbdns/internal/model"
	"github.com/kgbdns/kgbdns/internal/repository"
)

// Audit action names.
const (
	actionRegister     = "REGISTER"
	actionCreateDomain = "CREATE_DOMAIN"
	actionUpdateDomain = "UPDATE_DOMAIN"
	actionRemoveDomain = "REMOVE_DOMAIN"
)

// recordAudit appends one entry best-effort; failures are logged, never
// surfaced to the caller.
func recordAudit(ctx context.Context, audit repository.AuditRepository, log *zap.Logger, actor, action, target, detail string) {
	id, err := uuid.NewV4()
	if err != nil {
		log.Warn("audit id", zap.Error(err))
		return
	}
	e := &model.AuditEntry{
		ID:        id,
		Actor:     actor,
		Action:    action,
		Target:    target,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if err := audit.Save(ctx, e); err != nil {
		log.Warn("audit save", zap.String("action", action), zap.Error(err))
	}
}
