package viewer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// Status - состояние загрузки списка происшествий
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// Client - HTTP-клиент API происшествий
type Client struct {
	httpClient *resty.Client
}

// NewClient создает клиент для базового адреса API (например "http://host/api")
func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{httpClient: client}
}

// FetchIncidents запрашивает список происшествий и нормализует конверт ответа.
// Ответ с неожиданной, но корректной JSON-формой дает пустой список, а не ошибку
func (c *Client) FetchIncidents(ctx context.Context) ([]any, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get("/incidents")
	if err != nil {
		return nil, fmt.Errorf("unable to load incidents: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("Request failed (%d)", resp.StatusCode())
	}

	var payload any
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("unable to decode incidents: %w", err)
	}
	return Normalize(payload), nil
}

// Loader хранит состояние списка между загрузками. Поздний ответ, пришедший
// после отмены контекста, состояние не меняет; при ошибке сохраняется
// последняя успешно загруженная коллекция
type Loader struct {
	client *Client

	mu        sync.Mutex
	incidents []any
	status    Status
	errMsg    string
}

func NewLoader(client *Client) *Loader {
	return &Loader{
		client:    client,
		incidents: []any{},
		status:    StatusIdle,
	}
}

// Load выполняет один запрос списка. Контекст играет роль флага отмены:
// его отмена не прерывает сетевой вызов насильно, но гарантирует,
// что результат не будет зафиксирован
func (l *Loader) Load(ctx context.Context) {
	l.mu.Lock()
	l.status = StatusLoading
	l.errMsg = ""
	l.mu.Unlock()

	incidents, err := l.client.FetchIncidents(ctx)

	if ctx.Err() != nil {
		// Потребитель ушел - поздний результат игнорируется
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.status = StatusError
		l.errMsg = err.Error()
		return
	}
	l.incidents = incidents
	l.status = StatusReady
}

// Incidents возвращает последнюю успешно загруженную коллекцию
func (l *Loader) Incidents() []any {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.incidents
}

// Status возвращает текущее состояние загрузки
func (l *Loader) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Err возвращает текст последней ошибки загрузки
func (l *Loader) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMsg
}
