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

// TabularClient клиент универсального табличного REST API:
// POST {"data": [row]} на запись, GET со списком строк на чтение.
// Ключи строк - заголовки колонок таблицы; их написание может
// различаться, нормализация выполняется в recordFromRow.
type TabularClient struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewTabularClient создает новый экземпляр клиента табличного API
func NewTabularClient(baseURL string, timeout time.Duration, log Logger) *TabularClient {
	return &TabularClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// AppendBooking добавляет одну строку бронирования.
// Табличный API не возвращает идентификатор бронирования,
// поэтому первый возвращаемый параметр всегда пустой.
func (c *TabularClient) AppendBooking(ctx context.Context, record domain.BookingRecord) (string, bool) {
	payload := map[string]interface{}{
		"data": []map[string]interface{}{tabularRow(record)},
	}

	body, err := json.Marshal(payload)
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

	// Тело успешного ответа табличного API не несет полезной информации
	_, _ = io.Copy(io.Discard, resp.Body)

	c.log.Info("AppendBooking: booking saved, key=%s, seats=%s",
		record.Key.String(), domain.JoinSeats(record.Seats))
	return "", true
}

// ListBookings читает все строки таблицы.
// Принимает как голый массив строк, так и обертку {"data": [...]}.
func (c *TabularClient) ListBookings(ctx context.Context) ([]domain.BookingRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
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

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInternal, err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		var wrapped struct {
			Data []map[string]interface{} `json:"data"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
		rows = wrapped.Data
	}

	return recordsFromRows(rows), nil
}
