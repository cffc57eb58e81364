package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_BareArray(t *testing.T) {
	// Подготовка
	payload := []any{
		map[string]any{"id": "1"},
		map[string]any{"id": "2"},
	}

	// Действие
	incidents := Normalize(payload)

	// Проверки
	assert.Equal(t, payload, incidents)
}

func TestNormalize_IncidentsEnvelope(t *testing.T) {
	// Подготовка
	list := []any{map[string]any{"id": "1"}}
	payload := map[string]any{"incidents": list}

	// Действие
	incidents := Normalize(payload)

	// Проверки
	assert.Equal(t, list, incidents)
}

func TestNormalize_DataEnvelope(t *testing.T) {
	list := []any{map[string]any{"id": "1"}}
	payload := map[string]any{"data": list}

	incidents := Normalize(payload)

	assert.Equal(t, list, incidents)
}

func TestNormalize_ItemsEnvelope(t *testing.T) {
	list := []any{map[string]any{"id": "1"}}
	payload := map[string]any{"items": list}

	incidents := Normalize(payload)

	assert.Equal(t, list, incidents)
}

func TestNormalize_EmbeddedItemsEnvelope(t *testing.T) {
	list := []any{map[string]any{"id": "1"}}
	payload := map[string]any{
		"_embedded": map[string]any{"items": list},
	}

	incidents := Normalize(payload)

	assert.Equal(t, list, incidents)
}

func TestNormalize_FirstMatchWins(t *testing.T) {
	// Подготовка: incidents и data присутствуют одновременно
	fromIncidents := []any{map[string]any{"id": "from-incidents"}}
	fromData := []any{map[string]any{"id": "from-data"}}
	payload := map[string]any{
		"incidents": fromIncidents,
		"data":      fromData,
	}

	// Действие
	incidents := Normalize(payload)

	// Проверки
	assert.Equal(t, fromIncidents, incidents)
}

func TestNormalize_UnknownShapes(t *testing.T) {
	// Неизвестные формы дают пустой список, а не nil и не ошибку
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize(map[string]any{}))
	assert.Empty(t, Normalize(map[string]any{"foo": 1.0}))
	assert.Empty(t, Normalize("just a string"))
	assert.Empty(t, Normalize(map[string]any{"incidents": "not a list"}))
}

func TestNormalize_PreservesOrder(t *testing.T) {
	// Подготовка
	list := []any{
		map[string]any{"id": "3"},
		map[string]any{"id": "1"},
		map[string]any{"id": "2"},
	}
	payload := map[string]any{"incidents": list}

	// Действие
	incidents := Normalize(payload)

	// Проверки: нормализация не переупорядочивает элементы
	assert.Equal(t, list, incidents)
}
