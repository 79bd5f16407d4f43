package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/store"
)

const bookingColumns = "id, service_id, customer_id, date, status, notes, created_at, updated_at"

// PostgresBookingStore implements store.BookingStore.
type PostgresBookingStore struct {
	db store.DBTX
}

// NewPostgresBookingStore creates a booking store on db.
func NewPostgresBookingStore(db store.DBTX) *PostgresBookingStore {
	return &PostgresBookingStore{db: db}
}

var _ store.BookingStore = (*PostgresBookingStore)(nil)

func scanBooking(row rowScanner, withService bool) (*domain.Booking, error) {
	var (
		b           domain.Booking
		date        sql.NullTime
		status      sql.NullString
		notes       sql.NullString
		serviceName sql.NullString
	)
	dest := []any{&b.ID, &b.ServiceID, &b.CustomerID, &date, &status, &notes, &b.CreatedAt, &b.UpdatedAt}
	if withService {
		dest = append(dest, &serviceName)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	b.Date = date.Time
	b.Status = domain.BookingStatus(status.String)
	b.Notes = stringPtr(notes)
	b.ServiceName = stringPtr(serviceName)
	return &b, nil
}

// Create implements store.BookingStore.Create. ServiceID and Date are sent
// as text so PostgreSQL does the parsing.
func (s *PostgresBookingStore) Create(ctx context.Context, booking domain.NewBooking) (*domain.Booking, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO bookings (service_id, customer_id, date, notes, status)
		VALUES ($1, $2, $3, $4, 'pending')
		RETURNING `+bookingColumns,
		booking.ServiceID, booking.CustomerID, booking.Date, nullable(booking.Notes))
	b, err := scanBooking(row, false)
	if err != nil {
		return nil, MapError(err)
	}
	return b, nil
}

// ListByCustomer implements store.BookingStore.ListByCustomer.
func (s *PostgresBookingStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, b.service_id, b.customer_id, b.date, b.status, b.notes,
		       b.created_at, b.updated_at, s.title AS service_name
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		WHERE b.customer_id = $1
		ORDER BY b.created_at DESC`, customerID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	bookings := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows, true)
		if err != nil {
			return nil, MapError(err)
		}
		bookings = append(bookings, *b)
	}
	return bookings, MapError(rows.Err())
}

// UpdateStatus implements store.BookingStore.UpdateStatus.
func (s *PostgresBookingStore) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.BookingStatus,
) (*domain.Booking, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE bookings SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+bookingColumns, id, string(status))
	b, err := scanBooking(row, false)
	if err != nil {
		return nil, MapError(err)
	}
	return b, nil
}
