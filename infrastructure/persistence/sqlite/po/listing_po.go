package po

import (
	"time"

	"spectra-directory/domain/listing"
)

// ListingPO is the persistence object backing the tools table. The
// unique index on slug is what makes concurrent submissions safe.
type ListingPO struct {
	ID               string    `gorm:"primaryKey;size:36"`
	Name             string    `gorm:"size:255;not null"`
	Slug             string    `gorm:"size:255;uniqueIndex;not null"`
	WebsiteURL       string    `gorm:"size:1024;not null"`
	ShortDescription string    `gorm:"size:512;not null"`
	LongDescription  string    `gorm:"type:text"`
	Category         string    `gorm:"size:64;not null"`
	Tags             string    `gorm:"size:512"`
	TargetAudience   string    `gorm:"size:255"`
	Pricing          string    `gorm:"size:255"`
	IsFeatured       bool      `gorm:"default:false"`
	IsApproved       bool      `gorm:"default:false;index"`
	CreatedAt        time.Time `gorm:"not null"`
}

func (ListingPO) TableName() string {
	return "tools"
}

func FromDomain(l *listing.Listing) *ListingPO {
	return &ListingPO{
		ID:               l.ID,
		Name:             l.Name,
		Slug:             l.Slug,
		WebsiteURL:       l.WebsiteURL,
		ShortDescription: l.ShortDescription,
		LongDescription:  l.LongDescription,
		Category:         string(l.Category),
		Tags:             l.Tags,
		TargetAudience:   l.TargetAudience,
		Pricing:          l.Pricing,
		IsFeatured:       l.IsFeatured,
		IsApproved:       l.IsApproved,
		CreatedAt:        l.CreatedAt,
	}
}

func (p *ListingPO) ToDomain() *listing.Listing {
	return &listing.Listing{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		WebsiteURL:       p.WebsiteURL,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		Category:         listing.Category(p.Category),
		Tags:             p.Tags,
		TargetAudience:   p.TargetAudience,
		Pricing:          p.Pricing,
		IsFeatured:       p.IsFeatured,
		IsApproved:       p.IsApproved,
		CreatedAt:        p.CreatedAt,
	}
}
