// internal/wire/wire.go
package wire

import (
	"net/http"

	"garatge-booking/internal/adaptor"
	"garatge-booking/internal/data/repository"
	"garatge-booking/internal/usecase"
	"garatge-booking/pkg/middleware"
	"garatge-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, clients usecase.Clients, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, clients, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireBooking(r, handler.Booking)
	wireAppointment(r, handler.Appointment)
	wireContact(r, handler.Contact)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
