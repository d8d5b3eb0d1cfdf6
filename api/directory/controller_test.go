package directory

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	listingapp "spectra-directory/application/listing"
	"spectra-directory/domain/listing"
	"spectra-directory/mock"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplates = `
{{define "index.html"}}index:{{range .Listings}}{{.Slug}};{{end}}{{end}}
{{define "directory.html"}}directory:{{range .Listings}}{{.Slug}};{{end}}{{end}}
{{define "tool.html"}}tool:{{.Listing.Name}}{{end}}
{{define "error.html"}}error:{{.Title}}{{end}}
`

func setup(t *testing.T) (*gin.Engine, *mock.ListingRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := mock.NewListingRepository()
	svc := listingapp.NewService(repo, mock.NewUnitOfWork(), mock.NewPaymentGateway(false))

	engine := gin.New()
	engine.Use(sessions.Sessions("spectra_session", cookie.NewStore([]byte("test-secret"))))
	engine.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))
	NewController(svc).RegisterRoutes(engine)
	return engine, repo
}

func addListing(repo *mock.ListingRepository, name, slug string, approved bool) {
	l := listing.NewSubmission(listing.SubmissionParams{
		Name: name, WebsiteURL: "https://" + slug + ".example", ShortDescription: "d",
	}, slug)
	l.IsApproved = approved
	repo.Add(l)
}

func TestIndexListsOnlyApproved(t *testing.T) {
	engine, repo := setup(t)
	addListing(repo, "Visible", "visible", true)
	addListing(repo, "Hidden", "hidden", false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "visible;")
	assert.NotContains(t, w.Body.String(), "hidden;")
}

func TestDirectoryAliases(t *testing.T) {
	engine, repo := setup(t)
	addListing(repo, "Visible", "visible", true)

	for _, path := range []string{"/directory", "/annuaire"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "visible;")
	}
}

func TestToolDetail(t *testing.T) {
	engine, repo := setup(t)
	addListing(repo, "Acme AI", "acme-ai", true)
	addListing(repo, "Draft", "draft", false)

	t.Run("approved listing renders", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/tool/acme-ai", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "tool:Acme AI")
	})

	t.Run("draft is not reachable", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/tool/draft", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown slug is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/tool/nope", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
