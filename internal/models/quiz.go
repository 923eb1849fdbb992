package models

import (
	"time"
)

// QuizTopics lists the topics a quiz can be generated for, in display order.
var QuizTopics = []string{"Arte", "Entretenimiento", "Deporte", "Ciencia", "Historia"}

// IsQuizTopic reports whether topic is one of QuizTopics.
func IsQuizTopic(topic string) bool {
	for _, t := range QuizTopics {
		if t == topic {
			return true
		}
	}
	return false
}

const (
	// QuizQuestionCount is how many questions every generated quiz carries.
	QuizQuestionCount = 5
	// QuizOptionCount is how many options every question carries.
	QuizOptionCount = 4
)

// QuizQuestion is a generated multiple-choice question.
type QuizQuestion struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"len=4,dive,required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
}

// Quiz is the payload returned to the client after generation.
type Quiz struct {
	Questions []QuizQuestion `json:"questions" validate:"len=5,dive"`
}

// Validate checks the quiz shape and that every answer is one of its options.
func (q *Quiz) Validate() error {
	if err := validate.Struct(q); err != nil {
		return err
	}
	for i, question := range q.Questions {
		found := false
		for _, option := range question.Options {
			if option == question.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return &AnswerNotInOptionsError{Index: i, Answer: question.CorrectAnswer}
		}
	}
	return nil
}

// AnsweredQuestion is a quiz question together with what the student picked.
type AnsweredQuestion struct {
	Question      string   `json:"question" bson:"question"`
	Options       []string `json:"options" bson:"options"`
	CorrectAnswer string   `json:"correctAnswer" bson:"correctAnswer"`
	UserAnswer    string   `json:"userAnswer" bson:"userAnswer"`
}

// QuizResult is a scored quiz attempt. Stored as submitted.
type QuizResult struct {
	ID        string             `json:"id" bson:"_id"`
	Topic     string             `json:"topic" bson:"topic"`
	Questions []AnsweredQuestion `json:"questions" bson:"questions"`
	Score     float64            `json:"score" bson:"score"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// Stamp assigns the id and creation time of a new result.
func (r *QuizResult) Stamp() {
	r.ID = newID()
	r.CreatedAt = time.Now().UTC()
	if r.Questions == nil {
		r.Questions = []AnsweredQuestion{}
	}
}
