package server

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/umputun/newsquiz/pkg/quiz"
)

// error messages shown to quiz clients, both map to 500
const (
	msgSourceUnavailable    = "Kunde inte hämta eller tolka RSS-flödet."
	msgInsufficientMaterial = "För få nyheter i flödet för att skapa ett quiz just nu."
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// quizHandler generates a quiz for the category given by the optional "category" query param
func (s *Server) quizHandler(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	res, err := s.generator.Generate(r.Context(), category)
	if err != nil {
		if errors.Is(err, quiz.ErrInsufficientMaterial) {
			log.Printf("[WARN] can't make quiz for category %q: %v", category, err)
			renderError(w, r, errors.New(msgInsufficientMaterial), http.StatusInternalServerError)
			return
		}
		log.Printf("[ERROR] failed to generate quiz for category %q: %v", category, err)
		renderError(w, r, errors.New(msgSourceUnavailable), http.StatusInternalServerError)
		return
	}

	log.Printf("[DEBUG] quiz for %s with %d questions", res.Category, res.QuestionCount)
	renderJSON(w, r, http.StatusOK, res)
}

// categoriesHandler lists categories quizzes can be generated for
func (s *Server) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.generator.Categories())
}
