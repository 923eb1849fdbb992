package handlers

import (
	"net/http"

	"github.com/sereno-app/sereno/internal/models"
	"github.com/sereno-app/sereno/internal/services/history"
	"github.com/sereno-app/sereno/pkg/httpext"
)

// HandleHistory lists recent conversations. Recognised query parameters are
// category, severity and needsHelp; only needsHelp=true filters on the flag.
func HandleHistory(historyService *history.Service, w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.ConversationFilter{
		Category:  query.Get("category"),
		Severity:  query.Get("severity"),
		NeedsHelp: query.Get("needsHelp") == "true",
	}

	report, err := historyService.Query(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, errorMessages{persistence: msgHistory})
		return
	}

	httpext.Json(w, http.StatusOK, report)
}
