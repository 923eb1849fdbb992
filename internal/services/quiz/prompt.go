package quiz

import "fmt"

// GeneratorPersona is the system prompt for quiz generation.
const GeneratorPersona = "Eres un generador de preguntas de quiz. Genera preguntas desafiantes pero justas."

const promptTemplate = `Genera %d preguntas de selección múltiple sobre %s.
Cada pregunta debe tener %d opciones de respuesta.
Devuelve la respuesta en formato JSON con el siguiente formato:
{
  "questions": [
    {
      "question": "pregunta aquí",
      "options": ["opción1", "opción2", "opción3", "opción4"],
      "correctAnswer": "opción correcta aquí"
    }
  ]
}`

// BuildPrompt renders the generation request for topic.
func BuildPrompt(topic string, questions, options int) string {
	return fmt.Sprintf(promptTemplate, questions, topic, options)
}
