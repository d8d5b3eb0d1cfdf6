package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spectra-directory/domain/listing"
	"spectra-directory/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seeder populates an empty store with the fixed initial catalog. It
// never touches user data: seeding is skipped entirely as soon as the
// store holds a single row.
type Seeder struct {
	repo    listing.Repository
	catalog []CatalogEntry
}

func NewSeeder(repo listing.Repository) *Seeder {
	return &Seeder{repo: repo, catalog: Catalog()}
}

// Seed inserts the fixed catalog when the store is empty. Catalog
// entries are published immediately; a pre-existing slug makes the
// individual insert a no-op rather than an error.
func (s *Seeder) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count listings before seeding: %w", err)
	}
	if count > 0 {
		logger.Debug("Store already populated, skipping seed", zap.Int64("rows", count))
		return nil
	}

	now := time.Now().UTC()
	seeded := 0
	for _, entry := range s.catalog {
		l := &listing.Listing{
			ID:               uuid.NewString(),
			Name:             entry.Name,
			Slug:             listing.Slugify(entry.Name),
			WebsiteURL:       entry.WebsiteURL,
			ShortDescription: entry.ShortDescription,
			LongDescription:  entry.LongDescription,
			Category:         entry.Category,
			Tags:             entry.Tags,
			TargetAudience:   entry.TargetAudience,
			Pricing:          entry.Pricing,
			IsFeatured:       entry.Featured,
			IsApproved:       true,
			CreatedAt:        now,
		}
		if err := s.repo.Create(ctx, l); err != nil {
			if errors.Is(err, listing.ErrSlugTaken) {
				continue
			}
			return fmt.Errorf("failed to seed listing %q: %w", entry.Name, err)
		}
		seeded++
	}

	logger.Info("Seeded initial catalog", zap.Int("listings", seeded))
	return nil
}
