package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sereno-app/sereno/internal/models"
	"github.com/sereno-app/sereno/internal/services/quiz"
	"github.com/sereno-app/sereno/pkg/httpext"
)

type quizRequest struct {
	Topic string `json:"topic"`
}

type quizResultRequest struct {
	Topic     string                    `json:"topic"`
	Questions []models.AnsweredQuestion `json:"questions"`
	Score     float64                   `json:"score"`
}

type quizResultResponse struct {
	Message string `json:"message"`
	Score   string `json:"score"`
}

// HandleGenerateQuiz returns a fresh five question quiz on the requested topic.
func HandleGenerateQuiz(quizService *quiz.Service, w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed JSON request")
		httpext.JsonError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	generated, err := quizService.Generate(r.Context(), req.Topic)
	if err != nil {
		writeServiceError(w, err, errorMessages{
			missingInput: msgMissingTopic,
			persistence:  msgProcessing,
		})
		return
	}

	httpext.Json(w, http.StatusOK, generated)
}

// HandleSaveQuizResult stores a scored attempt as submitted.
func HandleSaveQuizResult(quizService *quiz.Service, w http.ResponseWriter, r *http.Request) {
	var req quizResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed JSON request")
		httpext.JsonError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	label, err := quizService.SaveResult(r.Context(), models.QuizResult{
		Topic:     req.Topic,
		Questions: req.Questions,
		Score:     req.Score,
	})
	if err != nil {
		writeServiceError(w, err, errorMessages{persistence: msgSaveResult})
		return
	}

	httpext.Json(w, http.StatusOK, quizResultResponse{
		Message: "Resultados guardados correctamente",
		Score:   label,
	})
}
