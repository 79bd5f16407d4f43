package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/platform/logger"
	"github.com/pacificaway/pacificaway-api/internal/redact"
	"github.com/pacificaway/pacificaway-api/internal/store"
)

// ErrBookingFieldsMissing is returned when a booking request lacks a service
// or a date.
var ErrBookingFieldsMissing = domain.NewValidationError("service_id and date required")

// BookingService manages customer bookings.
//
// Status updates only check that the new status is one of the allowed
// values. Neither the current status nor the caller's relation to the
// booking is consulted.
type BookingService interface {
	Create(ctx context.Context, customerID uuid.UUID, serviceID, date string, notes *string) (*domain.Booking, error)
	ListMine(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.Booking, error)
}

type bookingService struct {
	bookings store.BookingStore
	schema   SchemaEnsurer
	logger   *slog.Logger
}

// NewBookingService creates a BookingService.
func NewBookingService(bookings store.BookingStore, schema SchemaEnsurer, log *slog.Logger) BookingService {
	if bookings == nil || schema == nil {
		panic("booking service dependencies cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &bookingService{
		bookings: bookings,
		schema:   schema,
		logger:   log.With("component", "booking_service"),
	}
}

var _ BookingService = (*bookingService)(nil)

func (s *bookingService) Create(
	ctx context.Context,
	customerID uuid.UUID,
	serviceID, date string,
	notes *string,
) (*domain.Booking, error) {
	serviceID, date = strings.TrimSpace(serviceID), strings.TrimSpace(date)
	if serviceID == "" || date == "" {
		return nil, ErrBookingFieldsMissing
	}

	if err := s.schema.EnsureCatalogSchema(ctx); err != nil {
		return nil, wrap("ensure catalog schema", err)
	}

	booking, err := s.bookings.Create(ctx, domain.NewBooking{
		ServiceID:  serviceID,
		CustomerID: customerID,
		Date:       date,
		Notes:      notes,
	})
	if err != nil {
		log := logger.FromContextOrDefault(ctx, s.logger)
		if errors.Is(err, store.ErrInvalidInput) || errors.Is(err, store.ErrInvalidEntity) {
			log.Debug("booking rejected by store", "reason", err.Error())
		} else {
			log.Error("failed to create booking",
				"error", redact.Error(err),
				"customer_id", customerID)
		}
		return nil, wrap("create booking", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("booking created",
		"booking_id", booking.ID,
		"customer_id", customerID)
	return booking, nil
}

func (s *bookingService) ListMine(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error) {
	if err := s.schema.EnsureCatalogSchema(ctx); err != nil {
		return nil, wrap("ensure catalog schema", err)
	}
	bookings, err := s.bookings.ListByCustomer(ctx, customerID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list bookings",
			"error", redact.Error(err),
			"customer_id", customerID)
		return nil, wrap("list bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.BookingStatus,
) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	if err := s.schema.EnsureCatalogSchema(ctx); err != nil {
		return nil, wrap("ensure catalog schema", err)
	}

	booking, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		if !store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to update booking status",
				"error", redact.Error(err),
				"booking_id", id)
		}
		return nil, wrap("update booking status", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("booking status updated",
		"booking_id", id,
		"status", status)
	return booking, nil
}
