package seo

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"

	"spectra-directory/domain/listing"

	"github.com/gin-gonic/gin"
)

// Service provides the published listings referenced by the sitemap.
type Service interface {
	ApprovedListings(ctx context.Context) ([]*listing.Listing, error)
}

// Controller serves the crawler endpoints.
type Controller struct {
	svc     Service
	baseURL string
}

func NewController(svc Service, baseURL string) *Controller {
	return &Controller{svc: svc, baseURL: baseURL}
}

func (ct *Controller) RegisterRoutes(e *gin.Engine) {
	e.GET("/robots.txt", ct.Robots)
	e.GET("/sitemap.xml", ct.Sitemap)
}

// Robots serves the static crawl policy referencing the sitemap.
func (ct *Controller) Robots(c *gin.Context) {
	c.String(http.StatusOK,
		"User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", ct.baseURL)
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod,omitempty"`
	Priority string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap generates the sitemap from the static routes plus one entry
// per published listing, with its creation time as lastmod.
func (ct *Controller) Sitemap(c *gin.Context) {
	listings, err := ct.svc.ApprovedListings(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}

	urlSet := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: ct.baseURL + "/", Priority: "1.0"},
			{Loc: ct.baseURL + "/directory", Priority: "0.9"},
			{Loc: ct.baseURL + "/add", Priority: "0.5"},
		},
	}
	for _, l := range listings {
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc:      fmt.Sprintf("%s/tool/%s", ct.baseURL, l.Slug),
			LastMod:  l.CreatedAt.Format("2006-01-02"),
			Priority: "0.8",
		})
	}

	body, err := xml.MarshalIndent(urlSet, "", "  ")
	if err != nil {
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8",
		append([]byte(xml.Header), body...))
}
