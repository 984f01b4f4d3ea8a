package sheetstore

import (
	"fmt"
	"strings"
	"time"

	"github.com/avkotov/KNS-SeatService/internal/domain"
)

// appendPayload тело запроса на запись бронирования (RPC-эндпоинт)
type appendPayload struct {
	Timestamp     string `json:"timestamp"`
	Date          string `json:"date"`
	TimeSlot      string `json:"timeSlot"`
	Location      string `json:"location"`
	LocationID    string `json:"locationId"`
	Seats         string `json:"seats"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	TotalSeats    int    `json:"totalSeats"`
}

func newAppendPayload(record domain.BookingRecord) appendPayload {
	return appendPayload{
		Timestamp:     record.Timestamp.UTC().Format(time.RFC3339),
		Date:          record.Key.Date,
		TimeSlot:      record.Key.TimeSlot,
		Location:      record.Location,
		LocationID:    record.Key.LocationID,
		Seats:         domain.JoinSeats(record.Seats),
		CustomerName:  record.CustomerName,
		CustomerEmail: record.CustomerEmail,
		CustomerPhone: record.CustomerPhone,
		TotalSeats:    len(record.Seats),
	}
}

// appendResponse ответ RPC-эндпоинта на запись
type appendResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	Error     string `json:"error"`
}

// listResponse ответ RPC-эндпоинта на чтение всех бронирований
type listResponse struct {
	Success  bool                     `json:"success"`
	Bookings []map[string]interface{} `json:"bookings"`
	Error    string                   `json:"error"`
}

// normalizeHeaderKey приводит имя колонки к каноническому виду:
// нижний регистр, пробелы удалены ("Event Date" -> "eventdate").
// Исторически заголовки в таблице встречались в разном регистре
// и с разными пробелами; нормализация изолирована на этой границе,
// движок синхронизации видит только канонические записи.
func normalizeHeaderKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "")
}

func normalizeRow(row map[string]interface{}) map[string]string {
	normalized := make(map[string]string, len(row))
	for key, value := range row {
		if value == nil {
			continue
		}
		normalized[normalizeHeaderKey(key)] = strings.TrimSpace(fmt.Sprintf("%v", value))
	}
	return normalized
}

func firstNonEmpty(row map[string]string, keys ...string) string {
	for _, key := range keys {
		if v := row[key]; v != "" {
			return v
		}
	}
	return ""
}

// recordFromRow конвертирует сырую строку хранилища в доменную запись.
// Строки без даты или временного слота пропускаются (ok=false) -
// такие строки не могут участвовать в расчете занятости.
func recordFromRow(row map[string]interface{}) (domain.BookingRecord, bool) {
	fields := normalizeRow(row)

	date := firstNonEmpty(fields, "eventdate", "date", "bookingdate")
	timeSlot := firstNonEmpty(fields, "timeslot", "time")
	key, err := domain.DeriveKey(date, timeSlot, fields["locationid"])
	if err != nil {
		return domain.BookingRecord{}, false
	}

	record := domain.BookingRecord{
		Key:           key,
		Seats:         domain.SplitSeats(firstNonEmpty(fields, "selectedseats", "seats")),
		CustomerName:  fields["customername"],
		CustomerEmail: fields["customeremail"],
		CustomerPhone: fields["customerphone"],
		Location:      fields["location"],
		BookingID:     fields["bookingid"],
		Status:        domain.BookingStatus(strings.ToUpper(fields["status"])),
	}

	if ts := fields["timestamp"]; ts != "" {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			record.Timestamp = parsed
		}
	}

	return record, true
}

// recordsFromRows конвертирует список сырых строк, отбрасывая некорректные
func recordsFromRows(rows []map[string]interface{}) []domain.BookingRecord {
	records := make([]domain.BookingRecord, 0, len(rows))
	for _, row := range rows {
		if record, ok := recordFromRow(row); ok {
			records = append(records, record)
		}
	}
	return records
}

// tabularRow строка для универсального табличного API, ключи = заголовки колонок
func tabularRow(record domain.BookingRecord) map[string]interface{} {
	return map[string]interface{}{
		"Timestamp":      record.Timestamp.UTC().Format(time.RFC3339),
		"Customer Name":  record.CustomerName,
		"Customer Email": record.CustomerEmail,
		"Customer Phone": record.CustomerPhone,
		"Event Date":     record.Key.Date,
		"Time Slot":      record.Key.TimeSlot,
		"Location":       record.Location,
		"Location ID":    record.Key.LocationID,
		"Selected Seats": domain.JoinSeats(record.Seats),
		"Total Seats":    len(record.Seats),
		"Status":         string(record.Status),
	}
}
