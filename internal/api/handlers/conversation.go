package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sereno-app/sereno/internal/services/conversation"
	"github.com/sereno-app/sereno/pkg/httpext"
)

type conversationRequest struct {
	Prompt string `json:"prompt"`
}

// HandleConversation answers a single student prompt.
func HandleConversation(conversationService *conversation.Service, w http.ResponseWriter, r *http.Request) {
	var req conversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed JSON request")
		httpext.JsonError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	reply, err := conversationService.Respond(r.Context(), req.Prompt)
	if err != nil {
		writeServiceError(w, err, errorMessages{
			missingInput: msgMissingPrompt,
			persistence:  msgProcessing,
		})
		return
	}

	httpext.Json(w, http.StatusOK, reply)
}
