package listing

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category groups listings in the directory UI. The set is fixed; it is
// deliberately not modeled as an entity of its own.
type Category string

const (
	CategoryProductivity    Category = "Productivity & Automation"
	CategorySalesMarketing  Category = "Sales & Marketing"
	CategoryCustomerSupport Category = "Customer Support"
	CategoryDataAnalytics   Category = "Data & Analytics"
	CategoryContentDesign   Category = "Content & Design"
	CategoryDeveloperOps    Category = "Developer & Ops"
)

// FallbackCategory is assigned when a submission omits the category or
// sends one outside the fixed set.
const FallbackCategory = CategoryProductivity

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryProductivity,
		CategorySalesMarketing,
		CategoryCustomerSupport,
		CategoryDataAnalytics,
		CategoryContentDesign,
		CategoryDeveloperOps,
	}
}

// NormalizeCategory maps free-form input onto the fixed set.
func NormalizeCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if string(c) == s {
			return c
		}
	}
	return FallbackCategory
}

// Listing is one catalog entry in the directory. Slug and CreatedAt are
// immutable once the listing is persisted; IsApproved is the publication
// flag and flips false-to-true exactly once.
type Listing struct {
	ID               string
	Name             string
	Slug             string
	WebsiteURL       string
	ShortDescription string
	LongDescription  string
	Category         Category
	Tags             string
	TargetAudience   string
	Pricing          string
	IsFeatured       bool
	IsApproved       bool
	CreatedAt        time.Time
}

// SubmissionParams carries the raw fields of a visitor submission.
type SubmissionParams struct {
	Name             string
	WebsiteURL       string
	ShortDescription string
	LongDescription  string
	Category         string
	Tags             string
	TargetAudience   string
	Pricing          string
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (p SubmissionParams) Trimmed() SubmissionParams {
	return SubmissionParams{
		Name:             strings.TrimSpace(p.Name),
		WebsiteURL:       strings.TrimSpace(p.WebsiteURL),
		ShortDescription: strings.TrimSpace(p.ShortDescription),
		LongDescription:  strings.TrimSpace(p.LongDescription),
		Category:         strings.TrimSpace(p.Category),
		Tags:             strings.TrimSpace(p.Tags),
		TargetAudience:   strings.TrimSpace(p.TargetAudience),
		Pricing:          strings.TrimSpace(p.Pricing),
	}
}

// Validate checks the required submission fields after trimming. It
// returns a *ValidationError naming every missing field, or nil.
func (p SubmissionParams) Validate() error {
	trimmed := p.Trimmed()
	var missing []string
	if trimmed.Name == "" {
		missing = append(missing, "name")
	}
	if trimmed.WebsiteURL == "" {
		missing = append(missing, "website_url")
	}
	if trimmed.ShortDescription == "" {
		missing = append(missing, "short_description")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// NewSubmission builds a draft listing from validated submission params.
// The listing starts unapproved and never featured; slug is the caller's
// responsibility because uniqueness is resolved against the store.
func NewSubmission(p SubmissionParams, slug string) *Listing {
	trimmed := p.Trimmed()
	return &Listing{
		ID:               uuid.NewString(),
		Name:             trimmed.Name,
		Slug:             slug,
		WebsiteURL:       trimmed.WebsiteURL,
		ShortDescription: trimmed.ShortDescription,
		LongDescription:  trimmed.LongDescription,
		Category:         NormalizeCategory(trimmed.Category),
		Tags:             trimmed.Tags,
		TargetAudience:   trimmed.TargetAudience,
		Pricing:          trimmed.Pricing,
		IsFeatured:       false,
		IsApproved:       false,
		CreatedAt:        time.Now().UTC(),
	}
}

// Approve flips the publication flag. Approving an already approved
// listing is a no-op.
func (l *Listing) Approve() {
	l.IsApproved = true
}
