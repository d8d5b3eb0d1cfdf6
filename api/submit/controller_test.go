package submit

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	listingapp "spectra-directory/application/listing"
	"spectra-directory/mock"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplates = `
{{define "add.html"}}add:{{.Error}}:{{.Form.Name}}{{end}}
{{define "error.html"}}error:{{.Title}}{{end}}
`

func setup(t *testing.T, paymentConfigured bool) (*gin.Engine, *mock.ListingRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := mock.NewListingRepository()
	svc := listingapp.NewService(repo, mock.NewUnitOfWork(), mock.NewPaymentGateway(paymentConfigured))

	engine := gin.New()
	engine.Use(sessions.Sessions("spectra_session", cookie.NewStore([]byte("test-secret"))))
	engine.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))
	NewController(svc).RegisterRoutes(engine)
	return engine, repo
}

func postForm(engine *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	engine.ServeHTTP(w, req)
	return w
}

func validForm() url.Values {
	return url.Values{
		"name":              {"Acme AI"},
		"website_url":       {"https://acme.ai"},
		"short_description": {"desc"},
	}
}

func TestFormRenders(t *testing.T) {
	engine, _ := setup(t, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/add", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateWithoutPaymentPublishesAndRedirects(t *testing.T) {
	engine, repo := setup(t, false)

	w := postForm(engine, validForm())

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/directory", w.Header().Get("Location"))

	stored := repo.Get("acme-ai")
	require.NotNil(t, stored)
	assert.True(t, stored.IsApproved, "without payment the listing publishes before the redirect")
}

func TestCreateWithPaymentRedirectsToCheckout(t *testing.T) {
	engine, repo := setup(t, true)

	w := postForm(engine, validForm())

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/checkout/acme-ai", w.Header().Get("Location"))

	stored := repo.Get("acme-ai")
	require.NotNil(t, stored)
	assert.False(t, stored.IsApproved, "the draft stays unapproved until payment confirms")
}

func TestCreateValidationFailureRerendersForm(t *testing.T) {
	engine, repo := setup(t, false)

	form := validForm()
	form.Set("website_url", "   ")
	w := postForm(engine, form)

	// Validation failures re-render the form with the entered values,
	// not an error status.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Acme AI", "entered values are kept")
	assert.Contains(t, w.Body.String(), "Please fill at least")

	count, _ := repo.Count(context.Background())
	assert.Zero(t, count, "nothing is persisted on a validation failure")
}
