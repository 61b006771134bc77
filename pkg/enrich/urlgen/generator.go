package urlgen

import (
	"fmt"
	"net/url"
	"strings"
)

// Words dropped from an institution name before it becomes a domain token.
var fillerWords = map[string]struct{}{
	"university": {},
	"college":    {},
	"institute":  {},
	"of":         {},
	"the":        {},
}

// KnownInstitution maps a name fragment to the institution's real events
// page. Entries are checked in order by case-insensitive containment and
// take priority over generated candidates.
type KnownInstitution struct {
	Key string
	URL string
}

var knownInstitutions = []KnownInstitution{
	{Key: "howard", URL: "https://thedig.howard.edu/events"},
	{Key: "spelman", URL: "https://www.spelman.edu/campus-life/events"},
	{Key: "morehouse", URL: "https://www.morehouse.edu/life-at-morehouse/events"},
	{Key: "hampton", URL: "https://home.hamptonu.edu/events"},
	{Key: "morgan state", URL: "https://events.morgan.edu"},
	{Key: "north carolina a&t", URL: "https://www.ncat.edu/campus-life/events"},
}

// Token normalizes an institution name into a domain-candidate token:
// lower-cased, filler words removed, all spaces and punctuation dropped.
func Token(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.ToLower(name)) {
		if _, filler := fillerWords[word]; filler {
			continue
		}
		for _, r := range word {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// KnownEventURL returns the mapped events page when the message mentions a
// known institution.
func KnownEventURL(message string) (string, bool) {
	lower := strings.ToLower(message)
	for _, inst := range knownInstitutions {
		if strings.Contains(lower, inst.Key) {
			return inst.URL, true
		}
	}
	return "", false
}

// GenerateEventURLs produces candidate event-calendar addresses for an
// institution. Order is significant: downstream consumers fetch a prefix.
func GenerateEventURLs(university string) []string {
	token := Token(university)
	if token == "" {
		return nil
	}
	return []string{
		fmt.Sprintf("https://www.%s.edu/events", token),
		fmt.Sprintf("https://events.%s.edu", token),
		fmt.Sprintf("https://www.%s.edu/calendar", token),
		fmt.Sprintf("https://calendar.%s.edu", token),
		fmt.Sprintf("https://www.%s.edu/student-life/events", token),
		fmt.Sprintf("https://www.%s.ac.uk/events", token),
		fmt.Sprintf("https://www.%s.edu.au/events", token),
	}
}

// GenerateProfessorURLs produces faculty-directory candidates. The template
// set branches on which of professor/department is known.
func GenerateProfessorURLs(university, professor, department string) []string {
	token := Token(university)
	if token == "" {
		return nil
	}

	switch {
	case professor != "":
		query := url.QueryEscape(professor)
		slug := strings.ReplaceAll(strings.ToLower(professor), " ", "-")
		return []string{
			fmt.Sprintf("https://www.%s.edu/search?q=%s", token, query),
			fmt.Sprintf("https://www.%s.edu/directory?search=%s", token, query),
			fmt.Sprintf("https://www.%s.edu/faculty/%s", token, slug),
			fmt.Sprintf("https://www.%s.edu/people/%s", token, slug),
			fmt.Sprintf("https://directory.%s.edu/?q=%s", token, query),
		}
	case department != "":
		slug := strings.ReplaceAll(strings.ToLower(department), " ", "-")
		compact := strings.ReplaceAll(strings.ToLower(department), " ", "")
		return []string{
			fmt.Sprintf("https://www.%s.edu/%s/faculty", token, slug),
			fmt.Sprintf("https://%s.%s.edu/people", compact, token),
			fmt.Sprintf("https://www.%s.edu/academics/%s/faculty", token, slug),
			fmt.Sprintf("https://www.%s.edu/departments/%s", token, slug),
		}
	default:
		return []string{
			fmt.Sprintf("https://www.%s.edu/faculty", token),
			fmt.Sprintf("https://www.%s.edu/directory", token),
			fmt.Sprintf("https://www.%s.edu/academics/faculty", token),
			fmt.Sprintf("https://directory.%s.edu", token),
		}
	}
}
