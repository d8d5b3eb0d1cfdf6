package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() SubmissionParams {
	return SubmissionParams{
		Name:             "Acme AI",
		WebsiteURL:       "https://acme.ai",
		ShortDescription: "desc",
	}
}

func TestSubmissionParamsValidate(t *testing.T) {
	t.Run("all required present", func(t *testing.T) {
		assert.NoError(t, validParams().Validate())
	})

	t.Run("whitespace only counts as missing", func(t *testing.T) {
		p := validParams()
		p.Name = "   "
		p.ShortDescription = "\t\n"

		err := p.Validate()
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"name", "short_description"}, validationErr.Missing)
	})

	t.Run("every required field missing", func(t *testing.T) {
		err := SubmissionParams{}.Validate()
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"name", "website_url", "short_description"}, validationErr.Missing)
	})
}

func TestNewSubmission(t *testing.T) {
	p := validParams()
	p.Name = "  Acme AI  "
	p.Category = "Data & Analytics"

	l := NewSubmission(p, "acme-ai")

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "Acme AI", l.Name)
	assert.Equal(t, "acme-ai", l.Slug)
	assert.Equal(t, CategoryDataAnalytics, l.Category)
	assert.False(t, l.IsApproved, "submissions must start unapproved")
	assert.False(t, l.IsFeatured, "submissions are never featured")
	assert.WithinDuration(t, time.Now().UTC(), l.CreatedAt, time.Minute)
}

func TestNewSubmissionCategoryFallback(t *testing.T) {
	t.Run("empty category", func(t *testing.T) {
		l := NewSubmission(validParams(), "acme-ai")
		assert.Equal(t, FallbackCategory, l.Category)
	})

	t.Run("unknown category", func(t *testing.T) {
		p := validParams()
		p.Category = "Quantum Widgets"
		l := NewSubmission(p, "acme-ai")
		assert.Equal(t, FallbackCategory, l.Category)
	})
}

func TestApproveIsIdempotent(t *testing.T) {
	l := NewSubmission(validParams(), "acme-ai")
	l.Approve()
	assert.True(t, l.IsApproved)
	l.Approve()
	assert.True(t, l.IsApproved)
}

func TestCategoriesAreFixed(t *testing.T) {
	assert.Len(t, Categories(), 6)
	assert.Contains(t, Categories(), FallbackCategory)
}
