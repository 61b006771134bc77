package extract

import (
	"regexp"
	"strings"
)

// Rule is one declarative matcher. Rules are tried in order; the first rule
// whose capture survives filtering wins and no later rule is consulted.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// Match carries the extracted value plus which rule produced it, so
// extraction decisions stay auditable in logs and tests.
type Match struct {
	Value string
	Rule  string
}

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "my": {}, "our": {}, "your": {},
	"this": {}, "that": {}, "any": {}, "some": {}, "what": {}, "which": {},
	"at": {}, "in": {}, "for": {}, "of": {}, "on": {},
}

var universityRules = []Rule{
	{
		Name:    "preposition-name-keyword",
		Pattern: regexp.MustCompile(`(?i)\b(?:at|from)\s+([A-Za-z][A-Za-z.&' -]{1,60}?(?:university|college|institute))\b`),
	},
	{
		Name:    "university-of",
		Pattern: regexp.MustCompile(`\b([Uu]niversity\s+of\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2})`),
	},
	{
		Name:    "titlecase-name-keyword",
		Pattern: regexp.MustCompile(`\b([A-Z][A-Za-z'&.]*(?:\s+[A-Z][A-Za-z'&.]*){0,3}\s+(?:University|College|Institute))\b`),
	},
}

var professorRules = []Rule{
	{
		Name:    "title-titlecase-name",
		Pattern: regexp.MustCompile(`\b(?i:professor|prof|dr)\.?\s+([A-Z][A-Za-z'-]+(?:\s+[A-Z][A-Za-z'-]+)?)`),
	},
	{
		Name:    "title-plain-name",
		Pattern: regexp.MustCompile(`(?i)\b(?:professor|prof|dr)\.?\s+([a-z][a-z'-]{2,})\b`),
	},
	{
		Name:    "office-hours-owner",
		Pattern: regexp.MustCompile(`\b([A-Z][A-Za-z'-]+(?:\s+[A-Z][A-Za-z'-]+)?)(?:'s)?\s+office\s+hours`),
	},
}

var departmentRules = []Rule{
	{
		Name:    "department-of",
		Pattern: regexp.MustCompile(`(?i)\b(?:department|dept\.?)\s+of\s+([A-Za-z]+(?:\s+[A-Za-z]+)?)`),
	},
	{
		Name:    "name-department",
		Pattern: regexp.MustCompile(`(?i)\b([A-Za-z]+(?:\s+[A-Za-z]+)?)\s+(?:department|faculty)\b`),
	},
}

var (
	urlPattern         = regexp.MustCompile(`https?://[^\s<>"']+`)
	institutionKeyword = regexp.MustCompile(`\b(?:university|college|institute)\b`)
)

// University extracts an institution name from free text.
func University(text string) (Match, bool) {
	for _, rule := range universityRules {
		m := rule.Pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value, ok := accept(m[1])
		if !ok || genericInstitution(value) {
			continue
		}
		return Match{Value: value, Rule: rule.Name}, true
	}
	return Match{}, false
}

// Professor extracts a professor name from free text.
func Professor(text string) (Match, bool) {
	return firstMatch(professorRules, text)
}

// Department extracts a department name from free text.
func Department(text string) (Match, bool) {
	return firstMatch(departmentRules, text)
}

// URLs returns every http(s) token in order of appearance. Duplicates are
// kept; downstream capping makes deduplication unnecessary.
func URLs(text string) []string {
	raw := urlPattern.FindAllString(text, -1)
	urls := make([]string, 0, len(raw))
	for _, u := range raw {
		urls = append(urls, trimURLToken(u))
	}
	return urls
}

// trimURLToken drops sentence punctuation that rode along with a URL token.
// A closing paren is kept when the URL itself opened it, so paths like
// /wiki/Go_(programming_language) survive intact.
func trimURLToken(u string) string {
	u = strings.TrimRight(u, ".,;:!?")
	for strings.HasSuffix(u, ")") && strings.Count(u, ")") > strings.Count(u, "(") {
		u = strings.TrimSuffix(u, ")")
		u = strings.TrimRight(u, ".,;:!?")
	}
	return u
}

func firstMatch(rules []Rule, text string) (Match, bool) {
	for _, rule := range rules {
		m := rule.Pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if value, ok := accept(m[1]); ok {
			return Match{Value: value, Rule: rule.Name}, true
		}
	}
	return Match{}, false
}

// accept trims the capture, drops leading/trailing noise words, and rejects
// captures that are too short or are bare stop words.
func accept(capture string) (string, bool) {
	words := strings.Fields(strings.Trim(strings.TrimSpace(capture), ".,!?;: "))

	for len(words) > 0 {
		if _, noise := stopWords[strings.ToLower(words[0])]; !noise {
			break
		}
		words = words[1:]
	}
	for len(words) > 0 {
		if _, noise := stopWords[strings.ToLower(words[len(words)-1])]; !noise {
			break
		}
		words = words[:len(words)-1]
	}

	value := strings.TrimSuffix(strings.Join(words, " "), "'s")
	if len(value) <= 2 {
		return "", false
	}
	if _, bad := stopWords[strings.ToLower(value)]; bad {
		return "", false
	}
	return value, true
}

// genericInstitution reports whether the name is just "university" etc.
// with nothing identifying left once the keyword is removed.
func genericInstitution(name string) bool {
	rest := strings.TrimSpace(institutionKeyword.ReplaceAllString(strings.ToLower(name), ""))
	if rest == "" {
		return true
	}
	_, bad := stopWords[rest]
	return bad
}
