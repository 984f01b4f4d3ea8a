package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avkotov/KNS-SeatService/internal/domain"
	"github.com/avkotov/KNS-SeatService/pkg/dbmetrics"
	"github.com/avkotov/KNS-SeatService/pkg/psqlbuilder"
)

// Repository локальный снапшот журнала бронирований удаленного хранилища.
// Заполняется целиком при каждой успешной синхронизации и читается,
// когда удаленное хранилище недоступно (graceful degradation) и на старте.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория снапшота
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ReplaceAll заменяет содержимое снапшота целиком.
// Вызывается внутри транзакции (через txmanager), чтобы читатели
// не увидели пустую таблицу между delete и insert.
func (r *Repository) ReplaceAll(ctx context.Context, records []domain.BookingRecord, fetchedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("booking_snapshots").ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute delete: %v", ErrExecQuery, err)
	}

	if len(records) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("booking_snapshots").
		Columns(
			"booked_at",
			"event_date",
			"time_slot",
			"location_id",
			"location",
			"seats",
			"customer_name",
			"customer_email",
			"customer_phone",
			"booking_id",
			"status",
			"fetched_at",
		)

	for _, record := range records {
		insertBuilder = insertBuilder.Values(
			record.Timestamp,
			record.Key.Date,
			record.Key.TimeSlot,
			record.Key.LocationID,
			record.Location,
			domain.JoinSeats(record.Seats),
			record.CustomerName,
			record.CustomerEmail,
			record.CustomerPhone,
			record.BookingID,
			string(record.Status),
			fetchedAt,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListAll возвращает все записи снапшота
func (r *Repository) ListAll(ctx context.Context) ([]domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"booked_at",
		"event_date",
		"time_slot",
		"location_id",
		"location",
		"seats",
		"customer_name",
		"customer_email",
		"customer_phone",
		"booking_id",
		"status",
	).
		From("booking_snapshots").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

func (r *Repository) scanRecords(rows *sql.Rows) ([]domain.BookingRecord, error) {
	records := make([]domain.BookingRecord, 0)

	for rows.Next() {
		var (
			bookedAt sql.NullTime
			date     string
			timeSlot string
			location sql.NullString
			locID    sql.NullString
			seats    string
			name     sql.NullString
			email    sql.NullString
			phone    sql.NullString
			bookID   sql.NullString
			status   string
		)

		err := rows.Scan(
			&bookedAt,
			&date,
			&timeSlot,
			&locID,
			&location,
			&seats,
			&name,
			&email,
			&phone,
			&bookID,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRecords - scan row: %v", ErrScanRow, err)
		}

		key, err := domain.DeriveKey(date, timeSlot, locID.String)
		if err != nil {
			// Снапшот пишется только из валидных записей; битую строку пропускаем
			continue
		}

		records = append(records, domain.BookingRecord{
			Timestamp:     bookedAt.Time,
			Key:           key,
			Seats:         domain.SplitSeats(seats),
			CustomerName:  name.String,
			CustomerEmail: email.String,
			CustomerPhone: phone.String,
			Location:      location.String,
			BookingID:     bookID.String,
			Status:        domain.BookingStatus(status),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRecords - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
