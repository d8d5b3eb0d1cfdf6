package sqlite

import (
	"context"
	"errors"
	"strings"

	"spectra-directory/domain/listing"
	"spectra-directory/infrastructure/persistence"
	"spectra-directory/infrastructure/persistence/sqlite/po"

	"gorm.io/gorm"
)

// ListingRepository is the GORM/SQLite implementation of
// listing.Repository.
type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	if err := r.getDB(ctx).Create(po.FromDomain(l)).Error; err != nil {
		if isDuplicateKeyError(err) {
			return listing.ErrSlugTaken
		}
		return err
	}
	return nil
}

func (r *ListingRepository) FindBySlug(ctx context.Context, slug string) (*listing.Listing, error) {
	var row po.ListingPO
	result := r.getDB(ctx).First(&row, "slug = ?", slug)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, listing.ErrNotFound
		}
		return nil, result.Error
	}
	return row.ToDomain(), nil
}

func (r *ListingRepository) FindApprovedBySlug(ctx context.Context, slug string) (*listing.Listing, error) {
	var row po.ListingPO
	result := r.getDB(ctx).First(&row, "slug = ? AND is_approved = ?", slug, true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, listing.ErrNotFound
		}
		return nil, result.Error
	}
	return row.ToDomain(), nil
}

func (r *ListingRepository) FindApproved(ctx context.Context) ([]*listing.Listing, error) {
	var rows []po.ListingPO
	result := r.getDB(ctx).
		Where("is_approved = ?", true).
		Order("is_featured DESC").
		Order("name COLLATE NOCASE ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	listings := make([]*listing.Listing, 0, len(rows))
	for i := range rows {
		listings = append(listings, rows[i].ToDomain())
	}
	return listings, nil
}

func (r *ListingRepository) CountBySlug(ctx context.Context, slug string) (int64, error) {
	var count int64
	if err := r.getDB(ctx).Model(&po.ListingPO{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ListingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.getDB(ctx).Model(&po.ListingPO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ListingRepository) Approve(ctx context.Context, slug string) error {
	result := r.getDB(ctx).
		Model(&po.ListingPO{}).
		Where("slug = ?", slug).
		Update("is_approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the row is missing or it was already approved; only
		// the former is an error.
		count, err := r.CountBySlug(ctx, slug)
		if err != nil {
			return err
		}
		if count == 0 {
			return listing.ErrNotFound
		}
	}
	return nil
}
