package webpage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func newTestFetcher() *Fetcher {
	return NewFetcher(2*time.Second, "test-agent")
}

func TestFetchCleansMarkup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "test-agent" {
			t.Errorf("User-Agent = %q, want test-agent", got)
		}
		w.Write([]byte(`<html><head><style>body{color:red}</style></head>
			<body>
			<nav>Site Menu</nav>
			<script>alert("hi")</script>
			<main><h1>Fall  Concert</h1>
			<p>Tickets   available now.</p></main>
			<footer>Copyright</footer>
			</body></html>`))
	}))
	defer srv.Close()

	res := newTestFetcher().Fetch(context.Background(), srv.URL)
	if !res.OK() {
		t.Fatalf("unexpected failure: %s", res.Failure)
	}
	if strings.Contains(res.Text, "alert") || strings.Contains(res.Text, "color:red") {
		t.Errorf("script/style content leaked into text: %q", res.Text)
	}
	if strings.Contains(res.Text, "Site Menu") || strings.Contains(res.Text, "Copyright") {
		t.Errorf("nav/footer content leaked into text: %q", res.Text)
	}
	if !strings.Contains(res.Text, "Fall Concert") {
		t.Errorf("expected collapsed heading text, got %q", res.Text)
	}
	if !strings.Contains(res.Text, "Tickets available now.") {
		t.Errorf("expected collapsed paragraph text, got %q", res.Text)
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	res := newTestFetcher().Fetch(context.Background(), srv.URL)
	if res.OK() {
		t.Fatal("expected a failure result for 404")
	}
	if !strings.Contains(res.Failure, "404") {
		t.Errorf("failure = %q, want status code mentioned", res.Failure)
	}
	if !strings.HasPrefix(res.PromptText(), "[") {
		t.Errorf("placeholder should be bracketed, got %q", res.PromptText())
	}
}

func TestFetchUnreachableHost(t *testing.T) {
	res := newTestFetcher().Fetch(context.Background(), "http://127.0.0.1:1/never")
	if res.OK() {
		t.Fatal("expected a failure result for an unreachable host")
	}
	if !strings.HasPrefix(res.PromptText(), "[") {
		t.Errorf("placeholder should be bracketed, got %q", res.PromptText())
	}
}

func TestFetchEmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><script>only_code()</script></body></html>`))
	}))
	defer srv.Close()

	res := newTestFetcher().Fetch(context.Background(), srv.URL)
	if res.OK() {
		t.Fatal("expected a failure result for a page with no readable text")
	}
	if res.Failure != "no readable content" {
		t.Errorf("failure = %q", res.Failure)
	}
}

func TestFetchTruncatesLongPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>" + strings.Repeat("a", 20000) + "</p></body></html>"))
	}))
	defer srv.Close()

	res := newTestFetcher().Fetch(context.Background(), srv.URL)
	if !res.OK() {
		t.Fatalf("unexpected failure: %s", res.Failure)
	}
	if len(res.Text) != maxPageChars {
		t.Errorf("len(Text) = %d, want %d", len(res.Text), maxPageChars)
	}
}

func TestFetchTruncatesOnRuneBoundary(t *testing.T) {
	// Three-byte runes ensure the byte ceiling lands mid-rune.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>" + strings.Repeat("世", 4000) + "</p></body></html>"))
	}))
	defer srv.Close()

	res := newTestFetcher().Fetch(context.Background(), srv.URL)
	if !res.OK() {
		t.Fatalf("unexpected failure: %s", res.Failure)
	}
	if len(res.Text) > maxPageChars {
		t.Errorf("len(Text) = %d, want at most %d", len(res.Text), maxPageChars)
	}
	if !utf8.ValidString(res.Text) {
		t.Error("truncated text is not valid UTF-8")
	}
	if !strings.HasSuffix(res.Text, "世") {
		t.Errorf("text should end on a whole rune, got trailing bytes %q", res.Text[len(res.Text)-3:])
	}
}

func TestFetchMemoizesSuccesses(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`<html><body><p>cached page</p></body></html>`))
	}))
	defer srv.Close()

	f := newTestFetcher()
	f.Fetch(context.Background(), srv.URL)
	res := f.Fetch(context.Background(), srv.URL)

	if hits != 1 {
		t.Errorf("server hit %d times, want 1", hits)
	}
	if !strings.Contains(res.Text, "cached page") {
		t.Errorf("cached result text = %q", res.Text)
	}
}
