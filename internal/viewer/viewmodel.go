package viewer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Записи приходят из разных версий схемы, поэтому каждое отображаемое
// значение выводится через цепочку кандидатов, а не прямым доступом к полю.

var (
	titleFields     = []string{"title", "label", "name"}
	idFields        = []string{"id", "uuid", "nid", "title"}
	timestampFields = []string{"incidentTime", "incident_time", "created", "date"}
)

// fieldOf возвращает поле записи или nil, если запись - не объект
func fieldOf(record any, name string) any {
	obj, ok := record.(map[string]any)
	if !ok {
		return nil
	}
	return obj[name]
}

// present сообщает, несет ли значение полезную нагрузку:
// nil, пустая строка, ноль и false считаются пустыми
func present(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	default:
		return true
	}
}

// FormatValue приводит скаляр или объект к отображаемой строке.
// Поля приходят то сырыми скалярами, то обертками {value, label},
// поэтому обертки разворачиваются рекурсивно. Прочие объекты
// отрисовываются как стабильный JSON (ключи отсортированы)
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case map[string]any:
		if inner, ok := x["value"]; ok {
			return FormatValue(inner)
		}
		if inner, ok := x["label"]; ok {
			return FormatValue(inner)
		}
		return stableJSON(x)
	default:
		return stableJSON(x)
	}
}

func stableJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}

// dateLayouts - форматы календарных дат, которые клиент готов разобрать
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	time.RFC1123Z,
	time.RFC1123,
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateTime форматирует значение времени как "YYYY-MM-DD HH-MM"
// в локальном часовом поясе. Числа трактуются как секунды эпохи,
// строки разбираются как календарные даты. Неразбираемое значение
// возвращается через FormatValue как есть - "Invalid Date" не бывает
func FormatDateTime(v any) string {
	if !present(v) {
		return ""
	}

	var t time.Time
	switch x := v.(type) {
	case float64:
		t = time.UnixMilli(int64(x * 1000))
	case int:
		t = time.UnixMilli(int64(x) * 1000)
	case int64:
		t = time.UnixMilli(x * 1000)
	case string:
		parsed, ok := parseDate(x)
		if !ok {
			return FormatValue(v)
		}
		t = parsed
	default:
		return FormatValue(v)
	}

	t = t.In(time.Local)
	return fmt.Sprintf("%04d-%02d-%02d %02d-%02d", t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}

// ToTimestamp возвращает числовой ключ сортировки в миллисекундах эпохи.
// Отсутствующее, пустое или неразбираемое значение сортируется как 0
// (самое старое), никогда как "сейчас"
func ToTimestamp(v any) int64 {
	switch x := v.(type) {
	case float64:
		return int64(x * 1000)
	case int:
		return int64(x) * 1000
	case int64:
		return x * 1000
	case string:
		if x == "" {
			return 0
		}
		parsed, ok := parseDate(x)
		if !ok {
			return 0
		}
		return parsed.UnixMilli()
	default:
		return 0
	}
}

// ResolveID возвращает ключ записи для маршрутизации: первое непустое
// из id, uuid, nid, title, приведенное к строке
func ResolveID(record any) string {
	for _, name := range idFields {
		if v := fieldOf(record, name); present(v) {
			return FormatValue(v)
		}
	}
	return ""
}

// ResolveTitle возвращает заголовок: первое непустое из title, label, name,
// иначе подставной "Incident {id}" (с пустым суффиксом - просто "Incident")
func ResolveTitle(record any) string {
	for _, name := range titleFields {
		if v := fieldOf(record, name); present(v) {
			return FormatValue(v)
		}
	}

	suffix := ""
	for _, name := range []string{"id", "uuid", "nid"} {
		if v := fieldOf(record, name); present(v) {
			suffix = FormatValue(v)
			break
		}
	}
	return strings.TrimSpace("Incident " + suffix)
}

// ResolveTimestamp возвращает сырое значение времени происшествия:
// первое непустое из incidentTime, incident_time, created, date
func ResolveTimestamp(record any) any {
	for _, name := range timestampFields {
		if v := fieldOf(record, name); present(v) {
			return v
		}
	}
	return nil
}

// PersonName строит отображаемое имя человека: "{givenName} {familyName}"
// с обрезанными пробелами
func PersonName(person any) string {
	given := FormatValue(fieldOf(person, "givenName"))
	family := FormatValue(fieldOf(person, "familyName"))
	return strings.TrimSpace(given + " " + family)
}

// PersonNames возвращает имена участников записи; пустые имена опускаются
func PersonNames(record any) []string {
	list, ok := fieldOf(record, "persons").([]any)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(list))
	for _, person := range list {
		if name := PersonName(person); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// PlaceCoords возвращает координаты места как "широта долгота"
// или пустую строку, если места нет
func PlaceCoords(record any) string {
	place := fieldOf(record, "place")
	if place == nil {
		return ""
	}
	lat := FormatValue(fieldOf(place, "latitude"))
	lon := FormatValue(fieldOf(place, "longitude"))
	return strings.TrimSpace(lat + " " + lon)
}

// Description возвращает описание с учетом исторических имен поля
func Description(record any) string {
	for _, name := range []string{"description", "field_description", "body"} {
		if v := fieldOf(record, name); present(v) {
			return FormatValue(v)
		}
	}
	return "No description provided."
}
