package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sereno-app/sereno/internal/models"
)

// DecodeQuiz parses upstream text as a quiz and checks its shape. The text
// is used verbatim; nothing is repaired.
func DecodeQuiz(text string) (*models.Quiz, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.DisallowUnknownFields()

	var quiz models.Quiz
	if err := dec.Decode(&quiz); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrMalformedUpstream, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after quiz object", models.ErrMalformedUpstream)
	}

	if err := quiz.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrMalformedUpstream, err)
	}
	return &quiz, nil
}
