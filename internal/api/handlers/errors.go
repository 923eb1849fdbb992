package handlers

import (
	"errors"
	"net/http"

	"github.com/sereno-app/sereno/internal/models"
	"github.com/sereno-app/sereno/pkg/httpext"
	"github.com/sereno-app/sereno/pkg/logger"
)

const (
	msgInvalidBody      = "Formato de solicitud inválido"
	msgMissingPrompt    = "El prompt es requerido"
	msgMissingTopic     = "El tema es requerido"
	msgInvalidTopic     = "Tema no válido"
	msgOffTopic         = "Lo siento, solo puedo ayudarte con temas relacionados con bienestar emocional, ansiedad, depresión y estrés académico."
	msgNotConfigured    = "No se ha configurado correctamente la API de OpenAI"
	msgConfigInternal   = "Error interno del servidor al configurar OpenAI"
	msgProcessing       = "Error al procesar la solicitud"
	msgHistory          = "Error al obtener el historial de conversaciones"
	msgSaveResult       = "Error al guardar los resultados"
	msgNotFound         = "Recurso no encontrado"
	msgMethodNotAllowed = "Método no permitido"
	msgUnavailable      = "Servicio no disponible"
)

// errorMessages are the endpoint-specific texts for errors whose wording
// depends on the route.
type errorMessages struct {
	missingInput string
	persistence  string
}

// writeServiceError maps a workflow error to its HTTP status and body.
func writeServiceError(w http.ResponseWriter, err error, msgs errorMessages) {
	switch {
	case errors.Is(err, models.ErrMissingInput):
		httpext.JsonError(w, msgs.missingInput, http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidTopic):
		httpext.JsonError(w, msgInvalidTopic, http.StatusBadRequest)
	case errors.Is(err, models.ErrOffTopic):
		httpext.JsonError(w, msgOffTopic, http.StatusBadRequest)
	case errors.Is(err, models.ErrNotConfigured):
		logger.Error(logger.HANDLER, "Completion gateway is not configured")
		httpext.JsonErrorWithDetails(w, http.StatusInternalServerError, httpext.ErrorResponse{
			Error:   msgNotConfigured,
			Message: msgConfigInternal,
		})
	case errors.Is(err, models.ErrPersistence):
		logger.Error(logger.HANDLER, "Persistence failure: %v", err)
		httpext.JsonErrorWithDetails(w, http.StatusInternalServerError, httpext.ErrorResponse{
			Error:   msgs.persistence,
			Details: err.Error(),
		})
	default:
		// Upstream and malformed-upstream failures land here too.
		logger.Error(logger.HANDLER, "Request failed: %v", err)
		httpext.JsonErrorWithDetails(w, http.StatusInternalServerError, httpext.ErrorResponse{
			Error:   msgProcessing,
			Details: err.Error(),
		})
	}
}
