package seed

import "spectra-directory/domain/listing"

// CatalogEntry is one fixed entry of the initial directory catalog.
// Entries are pre-deduplicated; their base slugs never collide.
type CatalogEntry struct {
	Name             string
	WebsiteURL       string
	ShortDescription string
	LongDescription  string
	Category         listing.Category
	Tags             string
	TargetAudience   string
	Pricing          string
	Featured         bool
}

// Catalog returns the fixed initial catalog used to populate an empty
// store.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{
			Name:             "FlowDesk AI",
			WebsiteURL:       "https://flowdesk.ai",
			ShortDescription: "Automates recurring back-office workflows with AI agents.",
			LongDescription:  "FlowDesk connects your mail, calendar and CRM and turns repetitive admin chores into supervised automations.",
			Category:         listing.CategoryProductivity,
			Tags:             "automation, workflows, agents",
			TargetAudience:   "SMBs, operations teams",
			Pricing:          "Freemium",
			Featured:         true,
		},
		{
			Name:             "PitchPilot",
			WebsiteURL:       "https://pitchpilot.io",
			ShortDescription: "AI copilot that drafts and scores outbound sales sequences.",
			Category:         listing.CategorySalesMarketing,
			Tags:             "sales, outreach, copywriting",
			TargetAudience:   "Sales teams",
			Pricing:          "Paid",
			Featured:         true,
		},
		{
			Name:             "ReplyLoop",
			WebsiteURL:       "https://replyloop.com",
			ShortDescription: "Resolves tier-1 support tickets automatically from your help center.",
			Category:         listing.CategoryCustomerSupport,
			Tags:             "support, chatbot, helpdesk",
			TargetAudience:   "Customer support teams",
			Pricing:          "Subscription",
		},
		{
			Name:             "Queryline",
			WebsiteURL:       "https://queryline.dev",
			ShortDescription: "Ask questions about your warehouse in plain language.",
			Category:         listing.CategoryDataAnalytics,
			Tags:             "analytics, SQL, BI",
			TargetAudience:   "Data analysts, founders",
			Pricing:          "Freemium",
		},
		{
			Name:             "BrandForge Studio",
			WebsiteURL:       "https://brandforge.studio",
			ShortDescription: "Generates on-brand visuals and copy from a single style guide.",
			Category:         listing.CategoryContentDesign,
			Tags:             "design, branding, content",
			TargetAudience:   "Marketing and design teams",
			Pricing:          "Paid",
		},
		{
			Name:             "ShipSentry",
			WebsiteURL:       "https://shipsentry.dev",
			ShortDescription: "Reviews pull requests and flags risky changes before deploy.",
			Category:         listing.CategoryDeveloperOps,
			Tags:             "code review, CI, devops",
			TargetAudience:   "Engineering teams",
			Pricing:          "Freemium",
		},
	}
}
