package handler

import (
	"context"

	"github.com/carelink-dev/shift-market/backend/internal/config"
	"github.com/carelink-dev/shift-market/backend/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

// Store is the persistence surface the handlers depend on, satisfied by
// *repository.Repository.
type Store interface {
	GetAllUsers() ([]*domain.User, error)
	GetUserByID(id string) (*domain.User, error)
	GetUserByEmail(email string) (*domain.User, error)

	CreateShift(shift *domain.Shift) error
	GetAllShifts(status string, viewerUserID string) ([]*domain.Shift, error)
	GetShiftByID(id string, viewerUserID string) (*domain.Shift, error)
	HireProvider(applicationID string, shiftID string) (*domain.Shift, *domain.Application, error)

	CreateApplication(application *domain.Application) error
	GetApplicationsByUserID(userID string) ([]*domain.Application, error)
	UpdateApplicationStatus(id string, status domain.ApplicationStatus) (*domain.Application, error)
	DeleteApplication(id string) error
}

// MailPublisher is the slice of *amqp.Channel the handlers use.
type MailPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	store       Store
	translator  ut.Translator
	mailChannel MailPublisher
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, store Store, mailCh MailPublisher, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		store:       store,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/health", h.Health)

	// session selection: an identity convenience, not authorization. Every
	// operation below stays callable without a session.
	h.Mux.Route("/auth/session", func(r chi.Router) {
		r.Post("/", h.CreateSession)
		r.Get("/", h.GetSession)
		r.Delete("/", h.DeleteSession)
	})

	h.Mux.Route("/api", func(r chi.Router) {
		r.Get("/users", h.GetAllUsers)

		r.Route("/shifts", func(r chi.Router) {
			r.Use(h.viewer)
			r.Get("/", h.GetAllShifts)
			r.Post("/", h.CreateShift)
			r.Post("/hire", h.HireProvider)
			r.Get("/{id}", h.GetShift)
		})

		r.Route("/applications", func(r chi.Router) {
			r.Get("/", h.GetApplicationsByUser)
			r.Post("/", h.CreateApplication)
			r.Patch("/{id}", h.UpdateApplication)
			r.Delete("/{id}", h.DeleteApplication)
		})
	})
}
