package models

import "time"

// Category is the topic a conversation was filed under.
type Category string

const (
	CategoryAnxiety        Category = "ansiedad"
	CategoryDepression     Category = "depresion"
	CategoryAcademicStress Category = "estres_academico"
	CategoryOther          Category = "otro"
)

// Severity is the intensity detected in the student's prompt.
type Severity string

const (
	SeveritySevere      Severity = "grave"
	SeverityModerate    Severity = "moderado"
	SeverityMild        Severity = "leve"
	SeverityUnspecified Severity = "no_especificado"
)

// Conversation is a single prompt/response exchange. Records are written once
// and never updated.
type Conversation struct {
	ID                          string    `json:"id" bson:"_id"`
	Prompt                      string    `json:"prompt" bson:"prompt" validate:"required"`
	Response                    string    `json:"response" bson:"response" validate:"required"`
	Category                    Category  `json:"category" bson:"category" validate:"oneof=ansiedad depresion estres_academico otro"`
	Keywords                    []string  `json:"keywords" bson:"keywords"`
	Severity                    Severity  `json:"severity" bson:"severity" validate:"oneof=grave moderado leve no_especificado"`
	CreatedAt                   time.Time `json:"createdAt" bson:"createdAt"`
	RecommendedProfessionalHelp bool      `json:"recommendedProfessionalHelp" bson:"recommendedProfessionalHelp"`
}

// NewConversation fills the defaults for a fresh record.
func NewConversation(prompt, response string) *Conversation {
	return &Conversation{
		ID:        newID(),
		Prompt:    prompt,
		Response:  response,
		Category:  CategoryOther,
		Keywords:  []string{},
		Severity:  SeverityUnspecified,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks the record invariants before it is persisted.
func (c *Conversation) Validate() error {
	return validate.Struct(c)
}
