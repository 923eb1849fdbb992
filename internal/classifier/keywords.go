package classifier

import "github.com/sereno-app/sereno/internal/models"

// RelevanceTerms gate which prompts are forwarded upstream at all.
var RelevanceTerms = []string{
	"ansiedad", "depresión", "estrés", "angustia", "preocupación",
	"nervios", "presión académica", "estudios", "exámenes", "universidad",
	"carrera", "clases", "tareas", "trabajos", "calificaciones",
	"insomnio", "cansancio", "agotamiento", "burnout", "motivación",
}

// CategoryGroup pairs a category with the terms that select it.
type CategoryGroup struct {
	Category models.Category
	Terms    []string
}

// CategoryTerms are scanned in order; the first group with a hit wins.
var CategoryTerms = []CategoryGroup{
	{models.CategoryAnxiety, []string{"ansiedad", "nervios", "angustia", "pánico", "preocupación"}},
	{models.CategoryDepression, []string{"depresión", "tristeza", "soledad", "desmotivación", "apatía"}},
	{models.CategoryAcademicStress, []string{"estrés", "exámenes", "universidad", "tareas", "presión"}},
}

// SeverityGroup pairs a severity with the terms that select it.
type SeverityGroup struct {
	Severity models.Severity
	Terms    []string
}

// SeverityTerms are scanned from most to least severe.
var SeverityTerms = []SeverityGroup{
	{models.SeveritySevere, []string{"muy", "mucho", "grave", "severo", "intenso", "siempre", "suicid", "crisis"}},
	{models.SeverityModerate, []string{"bastante", "moderado", "regular", "frecuente", "a menudo"}},
	{models.SeverityMild, []string{"poco", "leve", "ligero", "ocasional", "a veces"}},
}

// EscalationTerms in a model response mean it already pointed the student to
// professional care.
var EscalationTerms = []string{"profesional", "especialista"}
