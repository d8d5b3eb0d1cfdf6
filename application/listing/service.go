package listing

import (
	"context"
	"errors"
	"fmt"

	"spectra-directory/domain/listing"
	"spectra-directory/domain/payment"
	"spectra-directory/domain/shared"
	"spectra-directory/pkg/logger"

	"go.uber.org/zap"
)

// maxSlugAttempts bounds the insert-retry loop when concurrent
// submissions race for the same base slug.
const maxSlugAttempts = 100

// Service orchestrates the submission, payment and publication
// lifecycle of listings.
type Service struct {
	repo    listing.Repository
	uow     shared.UnitOfWork
	gateway payment.Gateway
}

// NewService creates the listing lifecycle service.
func NewService(repo listing.Repository, uow shared.UnitOfWork, gateway payment.Gateway) *Service {
	return &Service{
		repo:    repo,
		uow:     uow,
		gateway: gateway,
	}
}

// PaymentEnabled reports whether the payment gateway is configured.
func (s *Service) PaymentEnabled() bool {
	return s.gateway.Enabled()
}

// Submit validates a visitor submission and persists it as an
// unapproved draft with a unique slug. Validation failures return a
// *listing.ValidationError naming the missing fields.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*listing.Listing, error) {
	params := req.params()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	base := listing.Slugify(params.Trimmed().Name)

	var created *listing.Listing
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		slug, counter, err := s.nextFreeSlug(ctx, base)
		if err != nil {
			return err
		}

		// The count check above is advisory only; the unique constraint
		// on slug is authoritative, so retry the insert on conflict.
		for attempt := 0; attempt < maxSlugAttempts; attempt++ {
			l := listing.NewSubmission(params, slug)
			err := s.repo.Create(ctx, l)
			if err == nil {
				created = l
				return nil
			}
			if !errors.Is(err, listing.ErrSlugTaken) {
				return err
			}
			counter++
			slug = listing.SlugWithSuffix(base, counter)
		}
		return fmt.Errorf("no free slug found for %q after %d attempts", base, maxSlugAttempts)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Listing submitted",
		zap.String("slug", created.Slug),
		zap.String("category", string(created.Category)))
	return created, nil
}

// nextFreeSlug walks base, base-2, base-3, ... until the store reports
// no row with that slug.
func (s *Service) nextFreeSlug(ctx context.Context, base string) (string, int, error) {
	slug := base
	counter := 1
	for {
		count, err := s.repo.CountBySlug(ctx, slug)
		if err != nil {
			return "", 0, err
		}
		if count == 0 {
			return slug, counter, nil
		}
		counter++
		slug = listing.SlugWithSuffix(base, counter)
	}
}

// RouteAfterSubmit decides what happens to a freshly created draft:
// with payment configured the caller must send the visitor to checkout;
// otherwise the listing is published on the spot.
func (s *Service) RouteAfterSubmit(ctx context.Context, l *listing.Listing) (Outcome, error) {
	if s.gateway.Enabled() {
		return OutcomeRequiresPayment, nil
	}
	if err := s.Publish(ctx, l.Slug); err != nil {
		return OutcomeUnknown, err
	}
	l.Approve()
	return OutcomePublished, nil
}

// Publish idempotently flips the publication flag for the slug.
func (s *Service) Publish(ctx context.Context, slug string) error {
	if err := s.repo.Approve(ctx, slug); err != nil {
		return err
	}
	logger.Info("Listing published", zap.String("slug", slug))
	return nil
}

// StartCheckout opens a hosted payment session for the listing.
func (s *Service) StartCheckout(ctx context.Context, l *listing.Listing) (*payment.Session, error) {
	if !s.gateway.Enabled() {
		return nil, payment.ErrNotConfigured
	}
	return s.gateway.OpenSession(ctx, payment.SessionRequest{
		Slug: l.Slug,
		Name: l.Name,
	})
}

// ConfirmAndPublish polls the gateway for the session status and
// publishes the listing only on an exact "paid" answer. Every other
// status, and any gateway failure, leaves the store untouched; the
// listing stays unapproved and a later visit may retry.
func (s *Service) ConfirmAndPublish(ctx context.Context, slug, sessionID string) (Outcome, error) {
	if sessionID == "" {
		return OutcomeUnknown, nil
	}

	status, err := s.gateway.SessionStatus(ctx, sessionID)
	if err != nil {
		logger.Warn("Payment status check failed",
			zap.String("slug", slug),
			zap.String("session_id", sessionID),
			zap.Error(err))
		return OutcomeUnknown, nil
	}

	switch status {
	case payment.StatusPaid:
		if err := s.Publish(ctx, slug); err != nil {
			return OutcomeUnknown, err
		}
		return OutcomePublished, nil
	case payment.StatusUnpaid:
		return OutcomePending, nil
	default:
		return OutcomeUnknown, nil
	}
}

// ApprovedListings returns every published listing, featured first,
// then by name case-insensitively.
func (s *Service) ApprovedListings(ctx context.Context) ([]*listing.Listing, error) {
	return s.repo.FindApproved(ctx)
}

// ApprovedBySlug returns a published listing or listing.ErrNotFound.
func (s *Service) ApprovedBySlug(ctx context.Context, slug string) (*listing.Listing, error) {
	return s.repo.FindApprovedBySlug(ctx, slug)
}

// BySlug returns a listing regardless of approval state, used by the
// checkout path which must find drafts.
func (s *Service) BySlug(ctx context.Context, slug string) (*listing.Listing, error) {
	return s.repo.FindBySlug(ctx, slug)
}
