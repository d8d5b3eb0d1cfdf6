package listing

import (
	"spectra-directory/domain/listing"
)

// SubmitRequest is the visitor submission form.
type SubmitRequest struct {
	Name             string `form:"name"`
	WebsiteURL       string `form:"website_url"`
	ShortDescription string `form:"short_description"`
	LongDescription  string `form:"long_description"`
	Category         string `form:"category"`
	Tags             string `form:"tags"`
	TargetAudience   string `form:"target_audience"`
	Pricing          string `form:"pricing"`
}

func (r SubmitRequest) params() listing.SubmissionParams {
	return listing.SubmissionParams{
		Name:             r.Name,
		WebsiteURL:       r.WebsiteURL,
		ShortDescription: r.ShortDescription,
		LongDescription:  r.LongDescription,
		Category:         r.Category,
		Tags:             r.Tags,
		TargetAudience:   r.TargetAudience,
		Pricing:          r.Pricing,
	}
}

// Outcome is the result of routing a listing through the publication
// lifecycle.
type Outcome int

const (
	// OutcomePublished means the listing is approved and publicly visible.
	OutcomePublished Outcome = iota
	// OutcomeRequiresPayment means a checkout must be completed first.
	OutcomeRequiresPayment
	// OutcomePending means the provider has not (yet) confirmed payment.
	OutcomePending
	// OutcomeUnknown means the payment state could not be determined;
	// the listing stays unapproved and a later confirmation may retry.
	OutcomeUnknown
)

func (o Outcome) String() string {
	switch o {
	case OutcomePublished:
		return "published"
	case OutcomeRequiresPayment:
		return "requires_payment"
	case OutcomePending:
		return "pending"
	default:
		return "unknown"
	}
}
