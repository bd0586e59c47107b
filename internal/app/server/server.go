package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"hrpro/internal/assistant"
	"hrpro/internal/platform/config"
	"hrpro/internal/platform/db"
	"hrpro/internal/state"
	assistanthandler "hrpro/internal/transport/http/handlers/assistant"
	attendancehandler "hrpro/internal/transport/http/handlers/attendance"
	corehandler "hrpro/internal/transport/http/handlers/core"
	dashboardhandler "hrpro/internal/transport/http/handlers/dashboard"
	leavehandler "hrpro/internal/transport/http/handlers/leave"
	payrollhandler "hrpro/internal/transport/http/handlers/payroll"
	settingshandler "hrpro/internal/transport/http/handlers/settings"
	"hrpro/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	store := db.NewStore(cfg.DataFile)
	appState := state.New(store)

	assistantSvc, err := assistant.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AssistantTimeout)
	if err != nil {
		log.Fatalf("assistant init failed: %v", err)
	}
	if !assistantSvc.Enabled() {
		log.Print("GEMINI_API_KEY not set, assistant replies with the fixed error message")
	}

	router := NewRouter(appState, assistantSvc, cfg.FrontendDir)

	log.Printf("HR Pro server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func NewRouter(appState *state.State, assistantSvc *assistant.Service, frontendDir string) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		corehandler.NewHandler(appState).RegisterRoutes(r)
		attendancehandler.NewHandler(appState).RegisterRoutes(r)
		leavehandler.NewHandler(appState).RegisterRoutes(r)
		payrollhandler.NewHandler(appState).RegisterRoutes(r)
		settingshandler.NewHandler(appState).RegisterRoutes(r)
		dashboardhandler.NewHandler(appState).RegisterRoutes(r)
		assistanthandler.NewHandler(assistantSvc).RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: frontendDir, indexPath: "index.html"})

	return router
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
