package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sereno-app/sereno/internal/api/middleware"
	"github.com/sereno-app/sereno/internal/config"
	"github.com/sereno-app/sereno/internal/services"
	"github.com/sereno-app/sereno/pkg/httpext"
)

func RegisterRoutes(router *mux.Router, services *services.Services, limits config.RateLimitConfig) {
	router.Use(middleware.RequestLogger)
	router.Use(middleware.RateLimit("global", limits, limits.Global))
	router.NotFoundHandler = middleware.RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpext.JsonError(w, msgNotFound, http.StatusNotFound)
	}))
	router.MethodNotAllowedHandler = middleware.RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpext.JsonError(w, msgMethodNotAllowed, http.StatusMethodNotAllowed)
	}))

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		HandleHealth(services.GetStore(), w, r)
	}).Methods("GET")

	router.Handle("/", middleware.RateLimit("conversation", limits, limits.Conversation)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleConversation(services.GetConversationService(), w, r)
	}))).Methods("POST")

	router.HandleFunc("/history", func(w http.ResponseWriter, r *http.Request) {
		HandleHistory(services.GetHistoryService(), w, r)
	}).Methods("GET")

	// Quiz routes
	quizLimit := middleware.RateLimit("quiz", limits, limits.Quiz)
	quizRouter := router.PathPrefix("/quiz").Subrouter()
	quizRouter.Handle("", quizLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleGenerateQuiz(services.GetQuizService(), w, r)
	}))).Methods("POST")
	quizRouter.Handle("/result", quizLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleSaveQuizResult(services.GetQuizService(), w, r)
	}))).Methods("POST")
}
