package repository

import (
	"context"
	"fmt"

	"garatge-booking/internal/data/entity"
	"garatge-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByToken(ctx context.Context, token string) (*entity.Reservation, error)

	// FindActiveByResource returns pending and confirmed reservations
	// for a resource; cancelled ones never block availability.
	FindActiveByResource(ctx context.Context, resourceID uuid.UUID) ([]*entity.Reservation, error)

	AttachCalendarEvent(ctx context.Context, id uuid.UUID, eventID, eventLink string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `id, resource_id, resource_name, kind, customer_name, customer_email, customer_phone,
		start_date, end_date, days, total_price, status, cancel_token, google_event_id, google_event_link,
		created_at, updated_at`

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var res entity.Reservation
	err := row.Scan(
		&res.ID,
		&res.ResourceID,
		&res.ResourceName,
		&res.Kind,
		&res.CustomerName,
		&res.CustomerEmail,
		&res.CustomerPhone,
		&res.StartDate,
		&res.EndDate,
		&res.Days,
		&res.TotalPrice,
		&res.Status,
		&res.CancelToken,
		&res.GoogleEventID,
		&res.GoogleEventLink,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, resource_id, resource_name, kind, customer_name, customer_email, customer_phone,
			start_date, end_date, days, total_price, status, cancel_token, google_event_id, google_event_link,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.ResourceID,
		reservation.ResourceName,
		reservation.Kind,
		reservation.CustomerName,
		reservation.CustomerEmail,
		reservation.CustomerPhone,
		reservation.StartDate,
		reservation.EndDate,
		reservation.Days,
		reservation.TotalPrice,
		reservation.Status,
		reservation.CancelToken,
		reservation.GoogleEventID,
		reservation.GoogleEventLink,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("resource_id", reservation.ResourceID.String()),
			zap.String("customer_email", reservation.CustomerEmail),
		)
		return fmt.Errorf("create reservation for resource %s: %w", reservation.ResourceID.String(), err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return res, nil
}

func (r *reservationRepository) FindByToken(ctx context.Context, token string) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE cancel_token = $1`

	res, err := scanReservation(r.db.QueryRow(ctx, query, token))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by token", zap.Error(err))
		return nil, fmt.Errorf("find reservation by token: %w", err)
	}

	return res, nil
}

func (r *reservationRepository) FindActiveByResource(ctx context.Context, resourceID uuid.UUID) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE resource_id = $1 AND status IN ('pending', 'confirmed')
		ORDER BY start_date
	`

	rows, err := r.db.Query(ctx, query, resourceID)
	if err != nil {
		r.log.Error("Failed to find active reservations",
			zap.Error(err),
			zap.String("resource_id", resourceID.String()),
		)
		return nil, fmt.Errorf("find active reservations for resource %s: %w", resourceID.String(), err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, nil
}

func (r *reservationRepository) AttachCalendarEvent(ctx context.Context, id uuid.UUID, eventID, eventLink string) error {
	query := `UPDATE reservations SET google_event_id = $2, google_event_link = $3, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, eventID, eventLink)
	if err != nil {
		r.log.Error("Failed to attach calendar event",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
			zap.String("event_id", eventID),
		)
		return fmt.Errorf("attach calendar event to reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reservations WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("delete reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	r.log.Info("Reservation deleted", zap.String("reservation_id", id.String()))
	return nil
}
