package viewer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchIncidents_Success(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/incidents", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"incidents":[{"id":1,"title":"Fire"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	// Действие
	incidents, err := client.FetchIncidents(context.Background())

	// Проверки
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, "Fire", ResolveTitle(incidents[0]))
}

func TestFetchIncidents_UnexpectedShape(t *testing.T) {
	// Неожиданная, но корректная JSON-форма дает пустой список, а не ошибку
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"unexpected":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	incidents, err := client.FetchIncidents(context.Background())

	require.NoError(t, err)
	assert.Empty(t, incidents)
}

func TestFetchIncidents_HTTPError(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	// Действие
	incidents, err := client.FetchIncidents(context.Background())

	// Проверки: текст ошибки включает код статуса
	require.Error(t, err)
	assert.Nil(t, incidents)
	assert.Equal(t, "Request failed (500)", err.Error())
}

func TestLoader_SuccessfulLoad(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"title":"Fire"}]`))
	}))
	defer server.Close()

	loader := NewLoader(NewClient(server.URL, 5*time.Second))
	assert.Equal(t, StatusIdle, loader.Status())

	// Действие
	loader.Load(context.Background())

	// Проверки
	assert.Equal(t, StatusReady, loader.Status())
	assert.Len(t, loader.Incidents(), 1)
	assert.Empty(t, loader.Err())
}

func TestLoader_ErrorKeepsLastCollection(t *testing.T) {
	// Подготовка: первый ответ успешный, второй - ошибка сервера
	failing := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"title":"Fire"}]`))
	}))
	defer server.Close()

	loader := NewLoader(NewClient(server.URL, 5*time.Second))
	loader.Load(context.Background())
	require.Equal(t, StatusReady, loader.Status())

	// Действие
	failing = true
	loader.Load(context.Background())

	// Проверки: статус ошибочный, но последняя коллекция сохранена
	assert.Equal(t, StatusError, loader.Status())
	assert.Equal(t, "Request failed (500)", loader.Err())
	assert.Len(t, loader.Incidents(), 1)
}

func TestLoader_CancelledContextNotCommitted(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"title":"Fire"}]`))
	}))
	defer server.Close()

	loader := NewLoader(NewClient(server.URL, 5*time.Second))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Действие: контекст отменен до загрузки
	loader.Load(ctx)

	// Проверки: поздний результат не зафиксирован - ни данных, ни ошибки
	assert.Equal(t, StatusLoading, loader.Status())
	assert.Empty(t, loader.Incidents())
	assert.Empty(t, loader.Err())
}
