package directory

import (
	"context"
	"errors"
	"net/http"

	"spectra-directory/api/flash"
	"spectra-directory/domain/listing"

	"github.com/gin-gonic/gin"
)

// Service is the read side of the catalog consumed by the public pages.
type Service interface {
	ApprovedListings(ctx context.Context) ([]*listing.Listing, error)
	ApprovedBySlug(ctx context.Context, slug string) (*listing.Listing, error)
	PaymentEnabled() bool
}

// Controller serves the public directory pages.
type Controller struct {
	svc Service
}

func NewController(svc Service) *Controller {
	return &Controller{svc: svc}
}

func (ct *Controller) RegisterRoutes(e *gin.Engine) {
	e.GET("/", ct.Index)
	e.GET("/directory", ct.Directory)
	// Legacy French route, kept so old links keep working.
	e.GET("/annuaire", ct.Directory)
	e.GET("/tool/:slug", ct.ToolDetail)
}

// Index renders the landing page with the full approved catalog.
func (ct *Controller) Index(c *gin.Context) {
	ct.renderList(c, "index.html")
}

// Directory renders the shareable directory page, same content as the
// landing page.
func (ct *Controller) Directory(c *gin.Context) {
	ct.renderList(c, "directory.html")
}

func (ct *Controller) renderList(c *gin.Context, template string) {
	listings, err := ct.svc.ApprovedListings(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Title":   "Something went wrong",
			"Message": "The directory could not be loaded. Please try again.",
		})
		return
	}

	c.HTML(http.StatusOK, template, gin.H{
		"Listings":       listings,
		"Categories":     listing.Categories(),
		"PaymentEnabled": ct.svc.PaymentEnabled(),
		"Flashes":        flash.Take(c),
	})
}

// ToolDetail renders a single approved listing, 404 when the slug is
// unknown or the listing is still unapproved.
func (ct *Controller) ToolDetail(c *gin.Context) {
	slug := c.Param("slug")

	l, err := ct.svc.ApprovedBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{
				"Title":   "404 - Page not found",
				"Message": "This tool does not exist or is not published yet.",
			})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Title":   "Something went wrong",
			"Message": "The tool page could not be loaded. Please try again.",
		})
		return
	}

	c.HTML(http.StatusOK, "tool.html", gin.H{
		"Listing": l,
		"Flashes": flash.Take(c),
	})
}
