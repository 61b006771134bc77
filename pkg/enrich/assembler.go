package enrich

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"campus-assistant-be/internal/pkg/logger"
	"campus-assistant-be/pkg/enrich/extract"
	"campus-assistant-be/pkg/enrich/urlgen"
	"campus-assistant-be/pkg/enrich/webpage"
)

// MaxFetchURLs caps how many pages one chat turn may fetch, across every
// candidate source combined.
const MaxFetchURLs = 4

// maxGeneratedPerPath caps how many template candidates a single generator
// branch contributes before the global cap applies.
const maxGeneratedPerPath = 4

// Origin says where a candidate URL came from. Literal URLs outrank known
// mappings, which outrank generated templates.
type Origin string

const (
	OriginLiteral   Origin = "literal"
	OriginKnown     Origin = "known"
	OriginGenerated Origin = "generated"
)

// Candidate is one URL the assembler may fetch, tagged with its source.
type Candidate struct {
	URL    string
	Origin Origin
}

var eventKeywords = []string{"event", "happening", "activities", "calendar", "concert", "workshop", "fair"}

var professorKeywords = []string{"professor", "prof ", "prof.", "dr ", "dr.", "faculty", "staff", "contact", "office hours", "department"}

// PageFetcher retrieves one page. Satisfied by webpage.Fetcher.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) webpage.FetchResult
}

// Assembler turns a chat message into fetched web context. Pure string
// analysis picks candidate URLs; the fetcher resolves them concurrently.
type Assembler struct {
	fetcher PageFetcher
	log     logger.ILogger
}

func NewAssembler(fetcher PageFetcher, log logger.ILogger) *Assembler {
	return &Assembler{fetcher: fetcher, log: log}
}

// SelectCandidates decides which URLs are worth fetching for a message.
// Literal URLs in the message come first, then event-calendar candidates,
// then faculty-directory candidates, truncated to MaxFetchURLs.
func (a *Assembler) SelectCandidates(message string) []Candidate {
	var candidates []Candidate

	for _, u := range extract.URLs(message) {
		candidates = append(candidates, Candidate{URL: u, Origin: OriginLiteral})
	}

	if containsAny(message, eventKeywords) {
		if known, ok := urlgen.KnownEventURL(message); ok {
			candidates = append(candidates, Candidate{URL: known, Origin: OriginKnown})
		} else if uni, ok := extract.University(message); ok {
			for _, u := range capURLs(urlgen.GenerateEventURLs(uni.Value)) {
				candidates = append(candidates, Candidate{URL: u, Origin: OriginGenerated})
			}
		}
	}

	if containsAny(message, professorKeywords) {
		if uni, ok := extract.University(message); ok {
			professor := ""
			if m, ok := extract.Professor(message); ok {
				professor = m.Value
			}
			department := ""
			if m, ok := extract.Department(message); ok {
				department = m.Value
			}
			for _, u := range capURLs(urlgen.GenerateProfessorURLs(uni.Value, professor, department)) {
				candidates = append(candidates, Candidate{URL: u, Origin: OriginGenerated})
			}
		}
	}

	if len(candidates) > MaxFetchURLs {
		candidates = candidates[:MaxFetchURLs]
	}
	return candidates
}

// FetchAll resolves every candidate concurrently, preserving candidate
// order in the results. Fetch failures arrive as tagged results, so the
// returned error is always nil in practice.
func (a *Assembler) FetchAll(ctx context.Context, candidates []Candidate) []webpage.FetchResult {
	results := make([]webpage.FetchResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			results[i] = a.fetcher.Fetch(gctx, c.URL)
			return nil
		})
	}
	g.Wait()

	return results
}

// Enrich is the full pipeline for one message: candidate selection then
// concurrent fetch. A message with no campus cues returns no results and
// costs no network calls.
func (a *Assembler) Enrich(ctx context.Context, message string) []webpage.FetchResult {
	candidates := a.SelectCandidates(message)
	if len(candidates) == 0 {
		return nil
	}

	urls := make([]string, len(candidates))
	for i, c := range candidates {
		urls[i] = c.URL
	}
	a.log.Info("enrich", "fetching candidate pages", map[string]interface{}{
		"count": len(candidates),
		"urls":  urls,
	})

	results := a.FetchAll(ctx, candidates)
	for _, r := range results {
		if !r.OK() {
			a.log.Warn("enrich", "page fetch failed", map[string]interface{}{
				"url":     r.URL,
				"failure": r.Failure,
			})
		}
	}
	return results
}

func containsAny(message string, keywords []string) bool {
	lower := strings.ToLower(message)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func capURLs(urls []string) []string {
	if len(urls) > maxGeneratedPerPath {
		return urls[:maxGeneratedPerPath]
	}
	return urls
}
