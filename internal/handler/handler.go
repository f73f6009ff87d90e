package handler

import (
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/wok10-dev/shift-planner/backend/internal/config"
	"github.com/wok10-dev/shift-planner/backend/internal/grid"
	"github.com/wok10-dev/shift-planner/backend/internal/repository"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	repository *repository.Repository
	translator ut.Translator
	codec      *grid.Codec

	// mu is held while the current planning is replaced and its workbook rewritten.
	mu sync.Mutex

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, codec *grid.Codec) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		repository: repo,
		translator: trans,
		codec:      codec,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(middleware.RequestID)
	h.Mux.Use(middleware.RealIP)
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	h.Mux.Get("/health", h.Health)

	h.Mux.Route("/api", func(r chi.Router) {
		r.Post("/upload/excel", h.UploadExcel)

		r.Route("/planning", func(r chi.Router) {
			r.Post("/", h.CreatePlanning)
			r.With(h.currentPlanning).Get("/current", h.GetCurrentPlanning)
			r.Put("/update", h.UpdatePlanning)
			r.Delete("/clear", h.ClearPlanning)
		})

		r.With(h.currentPlanning).Get("/export/excel", h.ExportExcel)

		r.Get("/history", h.GetHistory)
	})
}
