package checkout

import (
	"context"
	"errors"
	"net/http"

	"spectra-directory/api/flash"
	listingapp "spectra-directory/application/listing"
	"spectra-directory/domain/listing"
	"spectra-directory/domain/payment"

	"github.com/gin-gonic/gin"
)

// Service is the payment side of the listing lifecycle.
type Service interface {
	BySlug(ctx context.Context, slug string) (*listing.Listing, error)
	PaymentEnabled() bool
	StartCheckout(ctx context.Context, l *listing.Listing) (*payment.Session, error)
	ConfirmAndPublish(ctx context.Context, slug, sessionID string) (listingapp.Outcome, error)
}

// Controller drives the hosted checkout flow.
type Controller struct {
	svc Service
}

func NewController(svc Service) *Controller {
	return &Controller{svc: svc}
}

func (ct *Controller) RegisterRoutes(e *gin.Engine) {
	e.GET("/checkout/success", ct.Success)
	e.GET("/checkout/cancel", ct.Cancel)
	e.GET("/checkout/:slug", ct.Start)
}

// Start opens a payment session for the listing and redirects the
// visitor to the hosted payment page.
func (ct *Controller) Start(c *gin.Context) {
	slug := c.Param("slug")

	l, err := ct.svc.BySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{
				"Title":   "404 - Page not found",
				"Message": "This tool does not exist.",
			})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Title":   "Something went wrong",
			"Message": "The checkout could not be started. Please try again.",
		})
		return
	}

	if !ct.svc.PaymentEnabled() {
		flash.Error(c, "Payment is not configured yet. Please contact us directly.")
		c.Redirect(http.StatusFound, "/directory")
		return
	}

	session, err := ct.svc.StartCheckout(c.Request.Context(), l)
	if err != nil {
		flash.Error(c, "The payment provider is unavailable right now. Please try again later.")
		c.Redirect(http.StatusFound, "/directory")
		return
	}

	c.Redirect(http.StatusSeeOther, session.RedirectURL)
}

// Success is the return path from the hosted payment page. It polls
// the provider for the session status and publishes on a confirmed
// payment; every other outcome renders the confirmation page with the
// listing left unapproved.
func (ct *Controller) Success(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"Title":   "Bad request",
			"Message": "Missing tool reference on the payment confirmation.",
		})
		return
	}

	outcome, err := ct.svc.ConfirmAndPublish(c.Request.Context(), slug, c.Query("session_id"))
	if err != nil {
		outcome = listingapp.OutcomeUnknown
	}

	c.HTML(http.StatusOK, "checkout_success.html", gin.H{
		"Slug":      slug,
		"Outcome":   outcome.String(),
		"Published": outcome == listingapp.OutcomePublished,
	})
}

// Cancel is the abort path from the hosted payment page. Nothing is
// mutated; the listing stays saved but unconfirmed.
func (ct *Controller) Cancel(c *gin.Context) {
	flash.Error(c, "Payment cancelled. Your tool is still saved but not confirmed yet.")
	c.Redirect(http.StatusFound, "/directory")
}
