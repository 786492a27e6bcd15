package repository

import (
	"context"
	"fmt"
	"time"

	"garatge-booking/internal/data/entity"
	"garatge-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByToken(ctx context.Context, token string) (*entity.Appointment, error)

	// SlotTaken reports whether an active appointment already occupies
	// the exact (date, time) slot.
	SlotTaken(ctx context.Context, date time.Time, slot string) (bool, error)

	// BookedTimes returns the occupied HH:MM slots for a day.
	BookedTimes(ctx context.Context, date time.Time) ([]string, error)

	AttachCalendarEvent(ctx context.Context, id uuid.UUID, eventID, eventLink string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type appointmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAppointmentRepository(db database.PgxIface, log *zap.Logger) AppointmentRepository {
	return &appointmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "appointment")),
	}
}

const appointmentColumns = `id, name, email, phone, vehicle_brand, vehicle_model, service, date, time, message,
		status, cancel_token, google_event_id, google_event_link, attachment_urls, created_at, updated_at`

func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var apt entity.Appointment
	err := row.Scan(
		&apt.ID,
		&apt.Name,
		&apt.Email,
		&apt.Phone,
		&apt.VehicleBrand,
		&apt.VehicleModel,
		&apt.Service,
		&apt.Date,
		&apt.Time,
		&apt.Message,
		&apt.Status,
		&apt.CancelToken,
		&apt.GoogleEventID,
		&apt.GoogleEventLink,
		&apt.AttachmentURLs,
		&apt.CreatedAt,
		&apt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &apt, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, name, email, phone, vehicle_brand, vehicle_model, service, date, time, message,
			status, cancel_token, google_event_id, google_event_link, attachment_urls, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		appointment.ID,
		appointment.Name,
		appointment.Email,
		appointment.Phone,
		appointment.VehicleBrand,
		appointment.VehicleModel,
		appointment.Service,
		appointment.Date,
		appointment.Time,
		appointment.Message,
		appointment.Status,
		appointment.CancelToken,
		appointment.GoogleEventID,
		appointment.GoogleEventLink,
		appointment.AttachmentURLs,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create appointment",
			zap.Error(err),
			zap.String("email", appointment.Email),
			zap.Time("date", appointment.Date),
			zap.String("time", appointment.Time),
		)
		return fmt.Errorf("create appointment: %w", err)
	}

	return nil
}

func (r *appointmentRepository) FindByToken(ctx context.Context, token string) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE cancel_token = $1`

	apt, err := scanAppointment(r.db.QueryRow(ctx, query, token))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find appointment by token", zap.Error(err))
		return nil, fmt.Errorf("find appointment by token: %w", err)
	}

	return apt, nil
}

func (r *appointmentRepository) SlotTaken(ctx context.Context, date time.Time, slot string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE date = $1 AND time = $2 AND status IN ('pending', 'confirmed')
		)
	`

	var taken bool
	if err := r.db.QueryRow(ctx, query, date, slot).Scan(&taken); err != nil {
		r.log.Error("Failed to check appointment slot",
			zap.Error(err),
			zap.Time("date", date),
			zap.String("time", slot),
		)
		return false, fmt.Errorf("check appointment slot %s %s: %w", date.Format("2006-01-02"), slot, err)
	}

	return taken, nil
}

func (r *appointmentRepository) BookedTimes(ctx context.Context, date time.Time) ([]string, error) {
	query := `
		SELECT time FROM appointments
		WHERE date = $1 AND status IN ('pending', 'confirmed')
		ORDER BY time
	`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		r.log.Error("Failed to list booked times",
			zap.Error(err),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("list booked times for %s: %w", date.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			r.log.Error("Failed to scan booked time row", zap.Error(err))
			return nil, fmt.Errorf("scan booked time row: %w", err)
		}
		times = append(times, t)
	}

	return times, nil
}

func (r *appointmentRepository) AttachCalendarEvent(ctx context.Context, id uuid.UUID, eventID, eventLink string) error {
	query := `UPDATE appointments SET google_event_id = $2, google_event_link = $3, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, eventID, eventLink)
	if err != nil {
		r.log.Error("Failed to attach calendar event",
			zap.Error(err),
			zap.String("appointment_id", id.String()),
			zap.String("event_id", eventID),
		)
		return fmt.Errorf("attach calendar event to appointment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("appointment %s not found", id.String())
	}

	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM appointments WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete appointment",
			zap.Error(err),
			zap.String("appointment_id", id.String()),
		)
		return fmt.Errorf("delete appointment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("appointment %s not found", id.String())
	}

	r.log.Info("Appointment deleted", zap.String("appointment_id", id.String()))
	return nil
}
