package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kgbdns/kgbdns/internal/errs"
	"github.com/kgbdns/kgbdns/internal/metrics"
	"github.com/kgbdns/kgbdns/internal/model"
	"github.com/kgbdns/kgbdns/internal/provider"
	"github.com/kgbdns/kgbdns/internal/repository"
	"github.com/kgbdns/kgbdns/internal/validate"
)

// placeholderIP is the address a record points at until the owner's update
// client pushes a real one.
const placeholderIP = "1.1.1.1"

// DomainService defines the domain lifecycle operations.
//
// Create requires an authenticated username; UpdateIP and Remove require
// only the account token, so unattended clients can run without a session.
// Provider pushes always happen before the local write and no store
// transaction is held across them, so a crash in between can leave an
// orphaned remote record with no local owner. That gap is inherited from
// the original service and is logged, not compensated.
type DomainService interface {
	// List returns every record owned by username.
	List(ctx context.Context, username string) ([]model.DomainRecord, error)
	// Create registers domain for username and pushes the placeholder
	// record upstream.
	Create(ctx context.Context, username, domain string) (string, error)
	// UpdateIP repoints domain at ip, authorized by account token.
	UpdateIP(ctx context.Context, domain, token, ip string) error
	// Remove deletes domain upstream and locally, authorized by account token.
	Remove(ctx context.Context, domain, token string) error
}

// DomainServiceImpl is the production DomainService. Stateless; safe for
// concurrent use.
type DomainServiceImpl struct {
	domains    repository.DomainRepository
	audit      repository.AuditRepository
	prov       provider.Provider
	maxDomains int
	log        *zap.Logger
	now        func() int64 // millisecond clock
}

// NewDomainService constructs DomainService with required dependencies.
// maxDomains caps the number of records per account.
func NewDomainService(domains repository.DomainRepository, audit repository.AuditRepository, prov provider.Provider, maxDomains int, log *zap.Logger) *DomainServiceImpl {
	return &DomainServiceImpl{
		domains:    domains,
		audit:      audit,
		prov:       prov,
		maxDomains: maxDomains,
		log:        log,
		now:        func() int64 { return time.Now().UnixMilli() },
	}
}

// List returns the caller's records.
func (s *DomainServiceImpl) List(ctx context.Context, username string) ([]model.DomainRecord, error) {
	return s.domains.ListByOwner(ctx, username)
}

// Create checks quota, then name availability, then format, pushes the
// record upstream and finally inserts locally. The availability check runs
// before the format check on purpose: existing clients rely on "domain
// exists." winning over "domain invalid." for taken-but-malformed names.
func (s *DomainServiceImpl) Create(ctx context.Context, username, domain string) (string, error) {
	owned, err := s.domains.ListByOwner(ctx, username)
	if err != nil {
		return "", err
	}
	if len(owned) >= s.maxDomains {
		metrics.DomainOps.WithLabelValues("create", metrics.ResultFail).Inc()
		return "", errs.Reject(errs.ErrValidation, fmt.Sprintf("can not have more than %d domains.", s.maxDomains))
	}

	exists, err := s.domains.Exists(ctx, domain)
	if err != nil {
		return "", err
	}
	if exists {
		metrics.DomainOps.WithLabelValues("create", metrics.ResultFail).Inc()
		return "", errs.Reject(errs.ErrConflict, "domain exists.")
	}
	if !validate.DomainLabel(domain) {
		metrics.DomainOps.WithLabelValues("create", metrics.ResultFail).Inc()
		return "", errs.Reject(errs.ErrValidation, "domain invalid.")
	}

	if err := s.prov.CreateRecord(ctx, domain, placeholderIP); err != nil {
		metrics.UpstreamFailures.Inc()
		metrics.DomainOps.WithLabelValues("create", metrics.ResultFail).Inc()
		s.log.Warn("provider create failed", zap.String("domain", domain), zap.Error(err))
		return "", errs.Reject(errs.ErrUpstream, "subdomain creation failed.")
	}

	rec := &model.DomainRecord{
		Domain:    domain,
		Owner:     username,
		UpdatedAt: s.now(),
		IP:        placeholderIP,
	}
	if err := s.domains.Insert(ctx, rec); err != nil {
		// The remote record is already live with no local owner.
		s.log.Error("local insert failed after provider create, remote record orphaned",
			zap.String("domain", domain), zap.Error(err))
		if errors.Is(err, errs.ErrConflict) {
			metrics.DomainOps.WithLabelValues("create", metrics.ResultFail).Inc()
			return "", errs.Reject(errs.ErrConflict, "domain exists.")
		}
		return "", err
	}

	metrics.DomainOps.WithLabelValues("create", metrics.ResultOK).Inc()
	recordAudit(ctx, s.audit, s.log, username, actionCreateDomain, domain, placeholderIP)
	return domain, nil
}

// UpdateIP authorizes by token, validates the address, pushes upstream and
// then updates the local record. An unknown token and a domain owned by a
// different account are deliberately indistinguishable.
func (s *DomainServiceImpl) UpdateIP(ctx context.Context, domain, token, ip string) error {
	if err := s.authorize(ctx, domain, token); err != nil {
		metrics.DomainOps.WithLabelValues("update", metrics.ResultFail).Inc()
		return err
	}
	if !validate.IPv4(ip) {
		metrics.DomainOps.WithLabelValues("update", metrics.ResultFail).Inc()
		return errs.Reject(errs.ErrValidation, "ip invalid.")
	}

	if err := s.prov.UpdateRecord(ctx, domain, ip); err != nil {
		metrics.UpstreamFailures.Inc()
		metrics.DomainOps.WithLabelValues("update", metrics.ResultFail).Inc()
		s.log.Warn("provider update failed", zap.String("domain", domain), zap.Error(err))
		return errs.Reject(errs.ErrUpstream, "subdomain update failed.")
	}

	if err := s.domains.UpdateIP(ctx, domain, s.now(), ip); err != nil {
		return err
	}
	metrics.DomainOps.WithLabelValues("update", metrics.ResultOK).Inc()
	recordAudit(ctx, s.audit, s.log, "token", actionUpdateDomain, domain, ip)
	return nil
}

// Remove authorizes by token, deletes upstream and then locally. If the
// remote removal fails the local record stays untouched.
func (s *DomainServiceImpl) Remove(ctx context.Context, domain, token string) error {
	if err := s.authorize(ctx, domain, token); err != nil {
		metrics.DomainOps.WithLabelValues("remove", metrics.ResultFail).Inc()
		return err
	}

	if err := s.prov.DeleteRecord(ctx, domain); err != nil {
		metrics.UpstreamFailures.Inc()
		metrics.DomainOps.WithLabelValues("remove", metrics.ResultFail).Inc()
		s.log.Warn("provider delete failed", zap.String("domain", domain), zap.Error(err))
		return errs.Reject(errs.ErrUpstream, "subdomain removal failed.")
	}

	if err := s.domains.Delete(ctx, domain); err != nil {
		return err
	}
	metrics.DomainOps.WithLabelValues("remove", metrics.ResultOK).Inc()
	recordAudit(ctx, s.audit, s.log, "token", actionRemoveDomain, domain, "")
	return nil
}

// authorize resolves the domains owned by the account behind token and
// checks membership. This is a capability check, not a session check.
func (s *DomainServiceImpl) authorize(ctx context.Context, domain, token string) error {
	names, err := s.domains.NamesByToken(ctx, token)
	if err != nil {
		return err
	}
	for _, name := range names {
		if name == domain {
			return nil
		}
	}
	return errs.Reject(errs.ErrUnauthorized, "unauthorized.")
}
