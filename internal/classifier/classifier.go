// Package classifier files prompts with keyword heuristics. Every check is a
// case-insensitive substring test against the tables in keywords.go.
package classifier

import (
	"strings"

	"github.com/sereno-app/sereno/internal/models"
)

// Result bundles everything derived from one exchange.
type Result struct {
	Category                    models.Category
	Keywords                    []string
	Severity                    models.Severity
	RecommendedProfessionalHelp bool
}

// IsRelevant reports whether prompt mentions any supported topic.
func IsRelevant(prompt string) bool {
	return containsAny(strings.ToLower(prompt), RelevanceTerms)
}

// Categorize returns the first matching category and every term of that
// group found in prompt. Without a match it returns CategoryOther and an
// empty slice.
//
// The first group wins. Records written by the earlier Node service let the
// last matching group win and pooled keywords from every matching group, so
// older stored data can disagree with a fresh classification.
func Categorize(prompt string) (models.Category, []string) {
	text := strings.ToLower(prompt)
	for _, group := range CategoryTerms {
		found := matching(text, group.Terms)
		if len(found) > 0 {
			return group.Category, found
		}
	}
	return models.CategoryOther, []string{}
}

// DetectSeverity returns the severity of the first group with a hit.
func DetectSeverity(prompt string) models.Severity {
	text := strings.ToLower(prompt)
	for _, group := range SeverityTerms {
		if containsAny(text, group.Terms) {
			return group.Severity
		}
	}
	return models.SeverityUnspecified
}

// NeedsProfessionalHelp is true for severe prompts, or when the response
// itself mentions a professional or specialist.
func NeedsProfessionalHelp(severity models.Severity, response string) bool {
	if severity == models.SeveritySevere {
		return true
	}
	return containsAny(strings.ToLower(response), EscalationTerms)
}

// Classify runs every heuristic over a prompt and its response.
func Classify(prompt, response string) Result {
	category, keywords := Categorize(prompt)
	severity := DetectSeverity(prompt)
	return Result{
		Category:                    category,
		Keywords:                    keywords,
		Severity:                    severity,
		RecommendedProfessionalHelp: NeedsProfessionalHelp(severity, response),
	}
}

// Apply copies the result onto a conversation record.
func (r Result) Apply(c *models.Conversation) {
	c.Category = r.Category
	c.Keywords = r.Keywords
	c.Severity = r.Severity
	c.RecommendedProfessionalHelp = r.RecommendedProfessionalHelp
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func matching(text string, terms []string) []string {
	var found []string
	for _, term := range terms {
		if strings.Contains(text, strings.ToLower(term)) {
			found = append(found, term)
		}
	}
	return found
}
