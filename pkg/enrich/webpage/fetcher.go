package webpage

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/patrickmn/go-cache"
	"golang.org/x/net/html"
)

// maxPageChars bounds how much cleaned text one page may contribute to the
// model context.
const maxPageChars = 8000

// FetchResult is the outcome of one page fetch. A failure never escapes the
// fetcher as an error; it travels here as a tagged reason so the prompt
// layer decides how to present it.
type FetchResult struct {
	URL     string
	Text    string
	Failure string
}

// OK reports whether the fetch produced usable page text.
func (r FetchResult) OK() bool {
	return r.Failure == ""
}

// PromptText renders the result for inclusion in a model prompt. Failures
// become a short bracketed placeholder instead of the page body.
func (r FetchResult) PromptText() string {
	if !r.OK() {
		return fmt.Sprintf("[Unable to retrieve content from this page: %s]", r.Failure)
	}
	return r.Text
}

// Fetcher downloads pages and reduces them to readable text. Successful
// fetches are memoized for a short window so repeated questions about the
// same campus page do not hammer the host.
type Fetcher struct {
	client    *http.Client
	cache     *cache.Cache
	userAgent string
}

func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		cache:     cache.New(5*time.Minute, 10*time.Minute),
		userAgent: userAgent,
	}
}

// Fetch retrieves one URL. Network errors, timeouts, and non-success status
// codes are absorbed into the result's Failure field.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) FetchResult {
	if cached, hit := f.cache.Get(pageURL); hit {
		return FetchResult{URL: pageURL, Text: cached.(string)}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return FetchResult{URL: pageURL, Failure: fmt.Sprintf("invalid url: %v", err)}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return FetchResult{URL: pageURL, Failure: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return FetchResult{URL: pageURL, Failure: fmt.Sprintf("status %d", resp.StatusCode)}
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return FetchResult{URL: pageURL, Failure: fmt.Sprintf("unreadable page: %v", err)}
	}

	text := cleanText(doc)
	if text == "" {
		return FetchResult{URL: pageURL, Failure: "no readable content"}
	}
	if len(text) > maxPageChars {
		// Never cut in the middle of a multibyte rune.
		cut := maxPageChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	f.cache.SetDefault(pageURL, text)
	return FetchResult{URL: pageURL, Text: text}
}

// Elements whose subtree carries no prose worth sending to the model.
var skippedElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"iframe":   {},
	"svg":      {},
	"nav":      {},
	"footer":   {},
	"header":   {},
}

var whitespacePattern = regexp.MustCompile(`\s+`)

func cleanText(doc *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, skip := skippedElements[n.Data]; skip {
				return
			}
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(whitespacePattern.ReplaceAllString(b.String(), " "))
}
