// Package server provides the HTTP REST API for the resume screener.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talenthive/resume-screener/internal/config"
	"github.com/talenthive/resume-screener/internal/db"
	"github.com/talenthive/resume-screener/internal/llm"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	db         *db.DB
	llmClient  llm.Client
	analyzer   *llm.Analyzer
	jwtService *JWTService
	passwords  *config.PasswordConfig
}

// Config holds server configuration.
type Config struct {
	Port        string
	DatabaseURL string
	APIKey      string
	Model       string
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	llmClient, err := llm.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	s := &Server{
		db:         database,
		llmClient:  llmClient,
		analyzer:   llm.NewAnalyzer(llmClient),
		jwtService: NewJWTService(jwtConfig),
		passwords:  passwordConfig,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", s.handleLogin)

	// Platform administration
	mux.HandleFunc("POST /companies", s.handleCreateCompany)
	mux.HandleFunc("GET /companies", s.handleListCompanies)
	mux.HandleFunc("PATCH /companies/{company_id}", s.handleUpdateCompany)
	mux.HandleFunc("DELETE /companies/{company_id}", s.handleDeleteCompany)
	mux.HandleFunc("POST /users", s.handleCreateUser)
	mux.HandleFunc("GET /users", s.handleListUsers)
	mux.HandleFunc("PATCH /users/{user_id}", s.handleUpdateUser)
	mux.HandleFunc("DELETE /users/{user_id}", s.handleDeleteUser)
	mux.HandleFunc("GET /dashboard", s.handleDashboard)

	// Screening
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /history", s.handleHistory)
	mux.HandleFunc("GET /download/{analysis_id}", s.handleDownload)

	// Client and JD catalog
	mux.HandleFunc("GET /clients", s.handleListClients)
	mux.HandleFunc("GET /clients/{client_name}/jds", s.handleListJDs)
	mux.HandleFunc("GET /clients/{client_name}/jds/{jd_title}", s.handleGetJD)
	mux.HandleFunc("PUT /clients/{client_name}/jds/{jd_title}", s.handleUpdateJD)

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleIndex)

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // model calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.llmClient.Close(); err != nil {
		log.Printf("Failed to close model client: %v", err)
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-User-Role, X-User-Id, X-Company-Id")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
