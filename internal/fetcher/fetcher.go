package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// maxPage bounds how much of a page is parsed when looking for icon links.
const maxPage = 1 << 20

// Fetcher discovers the icon a site advertises for itself so service tiles
// without an image get one.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Favicon returns an absolute icon URL for pageURL: the first apple-touch or
// icon link in the page head, falling back to /favicon.ico.
func (f *Fetcher) Favicon(ctx context.Context, pageURL string) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil || (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return "", fmt.Errorf("invalid url %q", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", base.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("fetch %s: status %d", base.Host, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxPage))
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", base.Host, err)
	}

	// resp.Request.URL is the final URL after redirects
	if href := iconHref(doc); href != "" {
		ref, err := url.Parse(href)
		if err == nil {
			return resp.Request.URL.ResolveReference(ref).String(), nil
		}
	}

	fallback := &url.URL{Scheme: resp.Request.URL.Scheme, Host: resp.Request.URL.Host, Path: "/favicon.ico"}
	return fallback.String(), nil
}

var iconRels = []string{"apple-touch-icon", "icon", "shortcut icon"}

func iconHref(doc *goquery.Document) string {
	links := doc.Find("link[rel][href]")
	for _, want := range iconRels {
		var href string
		links.EachWithBreak(func(i int, s *goquery.Selection) bool {
			rel, _ := s.Attr("rel")
			if strings.EqualFold(strings.TrimSpace(rel), want) {
				href, _ = s.Attr("href")
				href = strings.TrimSpace(href)
				return href == ""
			}
			return true
		})
		if href != "" {
			return href
		}
	}
	return ""
}
