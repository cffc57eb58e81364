package translate

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func TestGoogleTranslator_Success(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Hello", r.PostForm.Get("q"))
		assert.Equal(t, "en", r.PostForm.Get("source"))
		assert.Equal(t, "de", r.PostForm.Get("target"))
		assert.Equal(t, "test-key", r.PostForm.Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"translations":[{"translatedText":"Hallo"}]}}`))
	}))
	defer server.Close()

	translator := NewGoogleTranslator(server.URL, "test-key", 5*time.Second, newTestLogger())

	// Действие
	translated, err := translator.Translate(context.Background(), "Hello", "en", "de")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Hallo", translated)
}

func TestGoogleTranslator_ErrorStatus(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	translator := NewGoogleTranslator(server.URL, "bad-key", 5*time.Second, newTestLogger())

	// Действие
	_, err := translator.Translate(context.Background(), "Hello", "en", "de")

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "translate API request failed (403)")
}

func TestGoogleTranslator_UnexpectedResponseShape(t *testing.T) {
	// Подготовка: корректный JSON без переводов
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"translations":[]}}`))
	}))
	defer server.Close()

	translator := NewGoogleTranslator(server.URL, "test-key", 5*time.Second, newTestLogger())

	// Действие
	_, err := translator.Translate(context.Background(), "Hello", "en", "de")

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid response from translate API")
}
