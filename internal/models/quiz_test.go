package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validQuiz() *Quiz {
	q := &Quiz{}
	for i := 0; i < QuizQuestionCount; i++ {
		q.Questions = append(q.Questions, QuizQuestion{
			Question:      "¿Quién pintó La Gioconda?",
			Options:       []string{"Da Vinci", "Goya", "Velázquez", "Dalí"},
			CorrectAnswer: "Da Vinci",
		})
	}
	return q
}

func TestQuizValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *Quiz)
		wantErr bool
	}{
		{
			name:    "valid quiz",
			mutate:  func(q *Quiz) {},
			wantErr: false,
		},
		{
			name:    "too few questions",
			mutate:  func(q *Quiz) { q.Questions = q.Questions[:4] },
			wantErr: true,
		},
		{
			name:    "three options",
			mutate:  func(q *Quiz) { q.Questions[2].Options = q.Questions[2].Options[:3] },
			wantErr: true,
		},
		{
			name:    "empty option",
			mutate:  func(q *Quiz) { q.Questions[0].Options[3] = "" },
			wantErr: true,
		},
		{
			name:    "empty question text",
			mutate:  func(q *Quiz) { q.Questions[1].Question = "" },
			wantErr: true,
		},
		{
			name:    "answer not among options",
			mutate:  func(q *Quiz) { q.Questions[4].CorrectAnswer = "Picasso" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuiz()
			tt.mutate(q)
			err := q.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuizValidateReportsQuestionIndex(t *testing.T) {
	q := validQuiz()
	q.Questions[3].CorrectAnswer = "Picasso"

	var answerErr *AnswerNotInOptionsError
	err := q.Validate()
	if assert.True(t, errors.As(err, &answerErr)) {
		assert.Equal(t, 3, answerErr.Index)
		assert.Equal(t, "Picasso", answerErr.Answer)
	}
}

func TestIsQuizTopic(t *testing.T) {
	for _, topic := range QuizTopics {
		assert.True(t, IsQuizTopic(topic), topic)
	}
	assert.False(t, IsQuizTopic("deporte"))
	assert.False(t, IsQuizTopic("Música"))
	assert.False(t, IsQuizTopic(""))
}

func TestQuizResultStamp(t *testing.T) {
	r := QuizResult{Topic: "Arte", Score: 3}
	r.Stamp()

	assert.NotEmpty(t, r.ID)
	assert.False(t, r.CreatedAt.IsZero())
	assert.NotNil(t, r.Questions)
}
