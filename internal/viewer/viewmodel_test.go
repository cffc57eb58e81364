package viewer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// withUTC выполняет тест в UTC, чтобы форматирование эпохи не зависело
// от часового пояса машины
func withUTC(t *testing.T) {
	t.Helper()
	original := time.Local
	time.Local = time.UTC
	t.Cleanup(func() { time.Local = original })
}

func TestFormatValue_Scalars(t *testing.T) {
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "hello", FormatValue("hello"))
	assert.Equal(t, "42", FormatValue(42.0))
	assert.Equal(t, "42.5", FormatValue(42.5))
	assert.Equal(t, "7", FormatValue(7))
	assert.Equal(t, "true", FormatValue(true))
}

func TestFormatValue_WrapperObjects(t *testing.T) {
	// Обертка {value} разворачивается, в том числе рекурсивно
	assert.Equal(t, "uri", FormatValue(map[string]any{"value": "uri"}))
	assert.Equal(t, "Label", FormatValue(map[string]any{"label": "Label"}))
	assert.Equal(t, "inner", FormatValue(map[string]any{
		"value": map[string]any{"value": "inner"},
	}))
	// value имеет приоритет над label
	assert.Equal(t, "v", FormatValue(map[string]any{"value": "v", "label": "l"}))
	// Пустое value выигрывает у label: важен сам факт наличия ключа
	assert.Equal(t, "", FormatValue(map[string]any{"value": nil, "label": "l"}))
}

func TestFormatValue_OtherObjects(t *testing.T) {
	// Объект без value/label отрисовывается как JSON с сортированными ключами
	got := FormatValue(map[string]any{"b": 2.0, "a": 1.0})
	assert.Equal(t, `{"a":1,"b":2}`, got)
}

func TestFormatDateTime_EpochSeconds(t *testing.T) {
	// Подготовка
	withUTC(t)

	// Действие и проверки: секунды эпохи, минуты отделены дефисом
	assert.Equal(t, "2023-11-14 22-13", FormatDateTime(1700000000.0))
	assert.Equal(t, "1970-01-01 00-00", FormatDateTime(0.1))
}

func TestFormatDateTime_CalendarStrings(t *testing.T) {
	withUTC(t)

	assert.Equal(t, "2024-03-01 10-30", FormatDateTime("2024-03-01T10:30:00Z"))
	assert.Equal(t, "2024-03-01 10-30", FormatDateTime("2024-03-01 10:30"))
	assert.Equal(t, "2024-03-01 00-00", FormatDateTime("2024-03-01"))
}

func TestFormatDateTime_Unparseable(t *testing.T) {
	// Неразбираемая строка возвращается как есть - "Invalid Date" не бывает
	assert.Equal(t, "not-a-date", FormatDateTime("not-a-date"))
	assert.Equal(t, "", FormatDateTime(nil))
	assert.Equal(t, "", FormatDateTime(""))
}

func TestToTimestamp_Numbers(t *testing.T) {
	// Секунды эпохи превращаются в миллисекунды
	assert.Equal(t, int64(1700000000000), ToTimestamp(1700000000.0))
	assert.Equal(t, int64(1000), ToTimestamp(1))
}

func TestToTimestamp_AbsentOrUnparseable(t *testing.T) {
	// Отсутствующее или неразбираемое время сортируется как самое старое,
	// никогда как "сейчас"
	assert.Equal(t, int64(0), ToTimestamp(0.0))
	assert.Equal(t, int64(0), ToTimestamp(nil))
	assert.Equal(t, int64(0), ToTimestamp(""))
	assert.Equal(t, int64(0), ToTimestamp("not-a-date"))
	assert.Equal(t, int64(0), ToTimestamp(map[string]any{}))
}

func TestResolveID_CandidateChain(t *testing.T) {
	assert.Equal(t, "12", ResolveID(map[string]any{"id": 12.0, "uuid": "u"}))
	assert.Equal(t, "u-1", ResolveID(map[string]any{"uuid": "u-1"}))
	assert.Equal(t, "77", ResolveID(map[string]any{"nid": 77.0}))
	assert.Equal(t, "Fallback", ResolveID(map[string]any{"title": "Fallback"}))
	assert.Equal(t, "", ResolveID(map[string]any{}))
	// Пустые кандидаты пропускаются: ноль - не идентификатор
	assert.Equal(t, "next", ResolveID(map[string]any{"id": 0.0, "uuid": "next"}))
}

func TestResolveTitle_CandidateChain(t *testing.T) {
	assert.Equal(t, "Fire", ResolveTitle(map[string]any{"title": "Fire", "label": "x"}))
	assert.Equal(t, "Flood", ResolveTitle(map[string]any{"label": "Flood"}))
	assert.Equal(t, "Storm", ResolveTitle(map[string]any{"name": "Storm"}))
}

func TestResolveTitle_Placeholder(t *testing.T) {
	// Без заголовка подставляется "Incident {id}"
	assert.Equal(t, "Incident 5", ResolveTitle(map[string]any{"id": 5.0}))
	// Без заголовка и идентификатора - просто "Incident", без хвостового пробела
	assert.Equal(t, "Incident", ResolveTitle(map[string]any{}))
	assert.Equal(t, "Incident", ResolveTitle(nil))
}

func TestResolveTimestamp_CandidateChain(t *testing.T) {
	assert.Equal(t, 1.0, ResolveTimestamp(map[string]any{"incidentTime": 1.0, "created": 2.0}))
	assert.Equal(t, 3.0, ResolveTimestamp(map[string]any{"incident_time": 3.0}))
	assert.Equal(t, 2.0, ResolveTimestamp(map[string]any{"created": 2.0}))
	assert.Equal(t, "2024-01-01", ResolveTimestamp(map[string]any{"date": "2024-01-01"}))
	assert.Nil(t, ResolveTimestamp(map[string]any{}))
	// Пустая строка - не значение, цепочка идет дальше
	assert.Equal(t, 9.0, ResolveTimestamp(map[string]any{"incidentTime": "", "created": 9.0}))
}

func TestPersonName(t *testing.T) {
	assert.Equal(t, "Jane Doe", PersonName(map[string]any{"givenName": "Jane", "familyName": "Doe"}))
	assert.Equal(t, "Jane", PersonName(map[string]any{"givenName": "Jane"}))
	assert.Equal(t, "Doe", PersonName(map[string]any{"familyName": "Doe"}))
	assert.Equal(t, "", PersonName(map[string]any{}))
	assert.Equal(t, "", PersonName(nil))
}

func TestPersonNames_SkipsEmpty(t *testing.T) {
	// Подготовка
	record := map[string]any{
		"persons": []any{
			map[string]any{"givenName": "Jane", "familyName": "Doe"},
			map[string]any{},
			map[string]any{"familyName": "Smith"},
		},
	}

	// Действие
	names := PersonNames(record)

	// Проверки
	assert.Equal(t, []string{"Jane Doe", "Smith"}, names)
}

func TestPlaceCoords(t *testing.T) {
	record := map[string]any{
		"place": map[string]any{"latitude": "55.75", "longitude": "37.61"},
	}
	assert.Equal(t, "55.75 37.61", PlaceCoords(record))
	assert.Equal(t, "", PlaceCoords(map[string]any{}))
}

func TestDescription_CandidateChain(t *testing.T) {
	assert.Equal(t, "A", Description(map[string]any{"description": "A"}))
	assert.Equal(t, "B", Description(map[string]any{"field_description": "B"}))
	assert.Equal(t, "C", Description(map[string]any{"body": "C"}))
	assert.Equal(t, "No description provided.", Description(map[string]any{}))
}
