package usecase

import (
	"garatge-booking/internal/data/repository"
	"garatge-booking/pkg/gcal"
	"garatge-booking/pkg/mailer"
	"garatge-booking/pkg/upload"
	"garatge-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Clients groups the external collaborators. Every one is an interface
// (or a nil-able redis client) so tests can substitute fakes.
type Clients struct {
	Calendar gcal.Calendar
	Mailer   mailer.Mailer
	Uploader upload.Uploader
	Cache    *redis.Client
}

type Service struct {
	Booking     BookingService
	Appointment AppointmentService
	Contact     ContactService
}

func NewService(repo *repository.Repository, clients Clients, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Booking:     NewBookingService(repo, clients.Calendar, clients.Mailer, clients.Cache, config, log),
		Appointment: NewAppointmentService(repo, clients.Calendar, clients.Mailer, clients.Uploader, config, log),
		Contact:     NewContactService(clients.Mailer, config, log),
	}
}
