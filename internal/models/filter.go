package models

// ConversationFilter narrows a history query. Zero values impose no
// constraint; all set fields must match.
type ConversationFilter struct {
	Category  string
	Severity  string
	NeedsHelp bool
}

// Matches reports whether c satisfies every set field of f.
func (f ConversationFilter) Matches(c *Conversation) bool {
	if f.Category != "" && string(c.Category) != f.Category {
		return false
	}
	if f.Severity != "" && string(c.Severity) != f.Severity {
		return false
	}
	if f.NeedsHelp && !c.RecommendedProfessionalHelp {
		return false
	}
	return true
}
