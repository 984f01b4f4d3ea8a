package sheetstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avkotov/KNS-SeatService/internal/domain"
)

// ScriptClient клиент RPC-эндпоинта хранилища бронирований:
// POST с JSON телом на запись, GET с параметром action на чтение.
type ScriptClient struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewScriptClient создает новый экземпляр клиента RPC-эндпоинта
func NewScriptClient(baseURL string, timeout time.Duration, log Logger) *ScriptClient {
	return &ScriptClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// AppendBooking добавляет одну строку бронирования в хранилище.
// Неуспех (сетевая ошибка, не-2xx ответ, некорректное тело) - не исключение,
// а первоклассное возвращаемое значение: false плюс локальный лог.
// Вызывающая сторона сама решает, что сообщать пользователю.
func (c *ScriptClient) AppendBooking(ctx context.Context, record domain.BookingRecord) (string, bool) {
	body, err := json.Marshal(newAppendPayload(record))
	if err != nil {
		c.log.Error("AppendBooking: failed to marshal payload: %v", err)
		return "", false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		c.log.Error("AppendBooking: failed to create request: %v", err)
		return "", false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("AppendBooking: request failed: %v", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("AppendBooking: unexpected status code %d: %s", resp.StatusCode, string(respBody))
		return "", false
	}

	var result appendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.log.Error("AppendBooking: failed to decode response: %v", err)
		return "", false
	}

	if !result.Success {
		c.log.Error("AppendBooking: remote reported failure: %s", result.Error)
		return "", false
	}

	c.log.Info("AppendBooking: booking saved, booking_id=%s, key=%s, seats=%s",
		result.BookingID, record.Key.String(), domain.JoinSeats(record.Seats))
	return result.BookingID, true
}

// ListBookings читает все строки бронирований из хранилища.
// Любая сетевая ошибка или ошибка разбора возвращается как error -
// вызывающая сторона (движок синхронизации) переводит её
// в деградацию на локальный снапшот.
func (c *ScriptClient) ListBookings(ctx context.Context) ([]domain.BookingRecord, error) {
	url := c.baseURL + "?action=getAllBookings"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var result listResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !result.Success {
		return nil, fmt.Errorf("%w: %s", ErrRemoteFailure, result.Error)
	}

	return recordsFromRows(result.Bookings), nil
}
