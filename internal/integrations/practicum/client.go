package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Client клиент для работы с API статусов домашних работ Практикума
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewClient создает новый экземпляр клиента API Практикума
func NewClient(endpoint, token string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// HomeworkStatuses запрашивает изменения статусов домашних работ,
// произошедшие после временной метки fromDate.
//
// Любой сбой (сеть, не-200 статус, некорректный JSON, отсутствие form_date)
// возвращается типизированной ошибкой: вызывающий обязан обработать её явно,
// незавершённый ответ никогда не отдаётся как успешный.
func (c *Client) HomeworkStatuses(ctx context.Context, fromDate int64) (*Answer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrRequest, err)
	}

	req.Header.Set("Authorization", "OAuth "+c.token)

	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s returned %d: %s", ErrBadStatus, req.URL.String(), resp.StatusCode, string(body))
	}

	// Парсим ответ. Тип тела не фиксируется: валидацией формы занимается
	// сервис статусов, клиент отвечает только за транспорт и курсор.
	var body any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}

	answer := &Answer{Body: body}

	// Курсор извлекается здесь же: ответ без form_date бесполезен для
	// следующего цикла опроса. Тело не-объект отдаём валидатору как есть.
	if m, ok := body.(map[string]any); ok {
		raw, ok := m[FormDateKey]
		if !ok {
			return nil, ErrNoFormDate
		}
		formDate, ok := raw.(float64)
		if !ok {
			return nil, fmt.Errorf("%w: form_date is %T, not a number", ErrNoFormDate, raw)
		}
		answer.FormDate = int64(formDate)
	}

	return answer, nil
}
