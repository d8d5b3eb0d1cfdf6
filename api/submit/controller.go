package submit

import (
	"context"
	"errors"
	"net/http"

	"spectra-directory/api/flash"
	listingapp "spectra-directory/application/listing"
	"spectra-directory/domain/listing"

	"github.com/gin-gonic/gin"
)

// Service is the submission side of the listing lifecycle.
type Service interface {
	Submit(ctx context.Context, req listingapp.SubmitRequest) (*listing.Listing, error)
	RouteAfterSubmit(ctx context.Context, l *listing.Listing) (listingapp.Outcome, error)
}

// Controller serves the add-a-tool form.
type Controller struct {
	svc Service
}

func NewController(svc Service) *Controller {
	return &Controller{svc: svc}
}

func (ct *Controller) RegisterRoutes(e *gin.Engine) {
	e.GET("/add", ct.Form)
	e.POST("/add", ct.Create)
	// Legacy French route, kept so old links keep working.
	e.GET("/ajouter", ct.Form)
	e.POST("/ajouter", ct.Create)
}

// Form renders the empty submission form.
func (ct *Controller) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", gin.H{
		"Categories": listing.Categories(),
		"Form":       listingapp.SubmitRequest{},
		"Flashes":    flash.Take(c),
	})
}

// Create runs the submission. Validation failures re-render the form
// with the entered values; a successful submission is routed either to
// checkout or straight into the directory.
func (ct *Controller) Create(c *gin.Context) {
	var req listingapp.SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"Title":   "Bad request",
			"Message": "The submitted form could not be read.",
		})
		return
	}

	l, err := ct.svc.Submit(c.Request.Context(), req)
	if err != nil {
		var validationErr *listing.ValidationError
		if errors.As(err, &validationErr) {
			c.HTML(http.StatusOK, "add.html", gin.H{
				"Categories": listing.Categories(),
				"Form":       req,
				"Error":      "Please fill at least the name, website URL and short description.",
				"Missing":    validationErr.Missing,
			})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Title":   "Something went wrong",
			"Message": "Your tool could not be saved. Please try again.",
		})
		return
	}

	flash.Success(c, "Thanks! Your tool has been added to the directory.")

	outcome, err := ct.svc.RouteAfterSubmit(c.Request.Context(), l)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Title":   "Something went wrong",
			"Message": "Your tool was saved but could not be published. Please contact us.",
		})
		return
	}

	if outcome == listingapp.OutcomeRequiresPayment {
		c.Redirect(http.StatusFound, "/checkout/"+l.Slug)
		return
	}
	c.Redirect(http.StatusFound, "/directory")
}
