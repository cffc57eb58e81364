package translate

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// translatorFunc - стаб переводчика для тестов сервиса.
// Мок из mocks импортировать нельзя: пакет моков сам импортирует translate
type translatorFunc func(ctx context.Context, text, sourceLang, targetLang string) (string, error)

func (f translatorFunc) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	return f(ctx, text, sourceLang, targetLang)
}

var testLanguages = map[string]string{
	"en": "English",
	"de": "German",
	"fr": "French",
}

func echoTranslator() translatorFunc {
	return func(_ context.Context, text, _, targetLang string) (string, error) {
		return fmt.Sprintf("%s-%s", targetLang, text), nil
	}
}

func TestTranslateField_Success(t *testing.T) {
	// Подготовка
	store := NewMemoryStore()
	service := NewService(echoTranslator(), store, testLanguages, newTestLogger())
	ctx := context.Background()

	// Действие
	translations, err := service.TranslateField(ctx, "title", "Fire", "en")

	// Проверки: переведены все языки, кроме исходного
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"de": "de-Fire",
		"fr": "fr-Fire",
	}, translations)

	stored, err := store.Get(ctx, "title")
	require.NoError(t, err)
	assert.Equal(t, translations, stored)
}

func TestTranslateField_ReplacesStoredMap(t *testing.T) {
	// Подготовка: в хранилище лежат переводы старого текста
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "title", map[string]string{
		"de": "stale",
		"it": "stale",
	}))
	service := NewService(echoTranslator(), store, testLanguages, newTestLogger())

	// Действие
	_, err := service.TranslateField(ctx, "title", "Fire", "en")

	// Проверки: успех заменяет карту целиком, устаревший it исчез
	require.NoError(t, err)
	stored, err := store.Get(ctx, "title")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"de": "de-Fire",
		"fr": "fr-Fire",
	}, stored)
}

func TestTranslateField_AnyFailureAbortsBatch(t *testing.T) {
	// Подготовка: перевод на fr падает, de успевает успешно
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "title", map[string]string{"de": "old"}))

	var calls int32
	translator := translatorFunc(func(_ context.Context, text, _, targetLang string) (string, error) {
		atomic.AddInt32(&calls, 1)
		if targetLang == "fr" {
			return "", fmt.Errorf("quota exceeded")
		}
		return targetLang + "-" + text, nil
	})
	service := NewService(translator, store, testLanguages, newTestLogger())

	// Действие
	translations, err := service.TranslateField(ctx, "title", "Fire", "en")

	// Проверки: пакет отменен целиком, частичный успех не сохранен
	require.Error(t, err)
	assert.ErrorContains(t, err, `could not translate field "title" to "fr"`)
	assert.Nil(t, translations)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls)) // Запросы ушли на оба языка

	stored, storeErr := store.Get(ctx, "title")
	require.NoError(t, storeErr)
	assert.Equal(t, map[string]string{"de": "old"}, stored)
}

func TestTranslateField_EmptyText(t *testing.T) {
	service := NewService(echoTranslator(), NewMemoryStore(), testLanguages, newTestLogger())

	_, err := service.TranslateField(context.Background(), "title", "", "en")

	require.Error(t, err)
	assert.ErrorContains(t, err, "nothing to translate")
}

func TestTranslateFieldTo_MergesWithStored(t *testing.T) {
	// Подготовка
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "title", map[string]string{"fr": "Feu"}))
	service := NewService(echoTranslator(), store, testLanguages, newTestLogger())

	// Действие
	translated, err := service.TranslateFieldTo(ctx, "title", "Fire", "en", "de")

	// Проверки: одиночный перевод не трогает другие языки
	require.NoError(t, err)
	assert.Equal(t, "de-Fire", translated)

	stored, err := store.Get(ctx, "title")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"de": "de-Fire",
		"fr": "Feu",
	}, stored)
}

func TestTranslateFieldTo_UnknownLanguage(t *testing.T) {
	service := NewService(echoTranslator(), NewMemoryStore(), testLanguages, newTestLogger())

	_, err := service.TranslateFieldTo(context.Background(), "title", "Fire", "en", "xx")

	require.Error(t, err)
	assert.ErrorContains(t, err, `unknown target language "xx"`)
}

func TestApplyStored_DoesNotOverwriteCurrent(t *testing.T) {
	// Подготовка
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "title", map[string]string{"de": "Feuer"}))
	service := NewService(echoTranslator(), store, testLanguages, newTestLogger())

	// Действие и проверки: непустое текущее значение выигрывает у сохраненного
	value, err := service.ApplyStored(ctx, "title", "de", "User input")
	require.NoError(t, err)
	assert.Equal(t, "User input", value)

	// Пустое текущее значение замещается сохраненным переводом
	value, err = service.ApplyStored(ctx, "title", "de", "")
	require.NoError(t, err)
	assert.Equal(t, "Feuer", value)

	// Нет сохраненного перевода - остается пусто
	value, err = service.ApplyStored(ctx, "title", "it", "")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestClear(t *testing.T) {
	// Подготовка
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "title", map[string]string{"de": "Feuer"}))
	service := NewService(echoTranslator(), store, testLanguages, newTestLogger())

	// Действие
	require.NoError(t, service.Clear(ctx, "title"))

	// Проверки
	stored, err := store.Get(ctx, "title")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestMemoryStore_DefensiveCopies(t *testing.T) {
	// Подготовка
	store := NewMemoryStore()
	ctx := context.Background()
	original := map[string]string{"de": "Feuer"}
	require.NoError(t, store.Set(ctx, "title", original))

	// Действие: мутации снаружи не должны протекать в хранилище
	original["de"] = "mutated"
	got, err := store.Get(ctx, "title")
	require.NoError(t, err)
	got["de"] = "mutated again"

	// Проверки
	fresh, err := store.Get(ctx, "title")
	require.NoError(t, err)
	assert.Equal(t, "Feuer", fresh["de"])
}
