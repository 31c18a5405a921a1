package main

import (
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/personality-cat/backend/internal/admin"
	"github.com/personality-cat/backend/internal/assessment"
	"github.com/personality-cat/backend/internal/auth"
	"github.com/personality-cat/backend/internal/database"
	"github.com/personality-cat/backend/internal/itembank"
	"github.com/personality-cat/backend/internal/middleware"
)

func main() {
	// Database is optional: without one the server runs fully in memory and
	// the admin surface is unavailable.
	var sessionStore assessment.SessionStore
	var itemCache itembank.ItemCache
	var adminStore *admin.Store

	db, err := database.Connect()
	if err != nil {
		log.Printf("WARN: database unavailable, using in-memory session store: %v", err)
		sessionStore = assessment.NewMemoryStore()
	} else {
		defer db.Close()
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		sessionStore = assessment.NewPGStore(db)
		itemCache = itembank.NewPGItemCache(db)
		adminStore = admin.NewStore(db)
	}

	// Assessment wiring
	cfg := assessment.ConfigFromEnv()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	selector := assessment.NewSelector(cfg.Strategy, rng)
	engine := assessment.NewEngine(cfg, selector)

	llm := itembank.NewClient()
	provider := itembank.NewProvider(itembank.NewBank(), llm, itemCache)

	service := assessment.NewService(sessionStore, engine, provider, itembank.NewCompleter(llm))
	assessmentHandler := assessment.NewHandler(service)
	authHandler := auth.NewHandler()

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Participant routes (public)
	api.HandleFunc("/sessions", assessmentHandler.CreateSession).Methods("POST")
	api.HandleFunc("/sessions/{id}/question", assessmentHandler.GetQuestion).Methods("GET")
	api.HandleFunc("/answers", assessmentHandler.SubmitAnswer).Methods("POST")
	api.HandleFunc("/sessions/{id}/dimensions/{dimension}", assessmentHandler.GetDimension).Methods("GET")
	api.HandleFunc("/sessions/{id}/report", assessmentHandler.GetReport).Methods("GET")

	// Admin routes
	api.HandleFunc("/admin/login", authHandler.Login).Methods("POST")
	if adminStore != nil {
		adminHandler := admin.NewHandler(adminStore)
		protected := api.PathPrefix("/admin").Subrouter()
		protected.Use(middleware.RequireAdmin)
		protected.HandleFunc("/dashboard", adminHandler.Dashboard).Methods("GET")
		protected.HandleFunc("/participants", adminHandler.Participants).Methods("GET")
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s (strategy=%s, max_questions=%d)", port, cfg.Strategy, cfg.MaxQuestions)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
