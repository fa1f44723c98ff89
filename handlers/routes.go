package handlers

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/andrewpaige1/flasheng-api/middleware"
)

// NewRouter wires every route of the API behind CORS, panic recovery and
// request logging.
func NewRouter(h *DBHandler, gate *middleware.Gate, origins []string) http.Handler {
	mux := http.NewServeMux()

	authed := func(fn http.HandlerFunc) http.Handler { return gate.Authenticate(fn) }
	admin := func(fn http.HandlerFunc) http.Handler { return gate.RequireAdmin(fn) }

	mux.HandleFunc("GET /health", h.Health)

	// Auth
	mux.HandleFunc("POST /api/auth/signup", h.Signup)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.Handle("GET /api/auth/check", authed(h.CheckAuth))
	mux.Handle("GET /api/auth/me", authed(h.CheckAuth))

	// Settings
	mux.Handle("GET /api/settings", authed(h.GetSettings))
	mux.Handle("PUT /api/settings", authed(h.UpdateSettings))

	// Categories
	mux.Handle("GET /api/categories", authed(h.GetCategories))
	mux.Handle("POST /api/categories", authed(h.CreateCategory))
	mux.Handle("PUT /api/categories/{id}", authed(h.UpdateCategory))
	mux.Handle("DELETE /api/categories/{id}", authed(h.DeleteCategory))
	mux.Handle("GET /api/categories/{id}/flashcards", authed(h.GetCategoryFlashcards))

	// Flashcards
	mux.Handle("GET /api/flashcards", authed(h.GetFlashcards))
	mux.Handle("POST /api/flashcards", authed(h.CreateFlashcard))
	mux.Handle("POST /api/flashcards/generate", authed(h.GenerateFlashcard))
	mux.Handle("GET /api/flashcards/{id}", authed(h.GetFlashcardByID))
	mux.Handle("PUT /api/flashcards/{id}", authed(h.UpdateFlashcard))
	mux.Handle("DELETE /api/flashcards/{id}", authed(h.DeleteFlashcard))

	// AI
	mux.Handle("POST /api/ai/generate-examples", authed(h.GenerateExamples))
	mux.Handle("POST /api/ai/regenerate-examples", authed(h.RegenerateExamples))
	mux.Handle("POST /api/ai/translate", authed(h.Translate))
	mux.Handle("POST /api/ai/translate-sentence", authed(h.TranslateSentence))

	// Admin
	mux.Handle("GET /api/admin/users", admin(h.AdminListUsers))
	mux.Handle("POST /api/admin/users", admin(h.AdminCreateUser))
	mux.Handle("PUT /api/admin/users/{id}/toggle-status", admin(h.AdminToggleUserStatus))
	mux.Handle("DELETE /api/admin/users/{id}", admin(h.AdminDeleteUser))

	mux.HandleFunc("/", h.NotFound)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	return middleware.RequestLogger(h.Log)(middleware.Recoverer(h.Log)(corsHandler))
}
