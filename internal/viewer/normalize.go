package viewer

// Normalize извлекает список происшествий из JSON-ответа произвольной формы.
// Эндпоинт отвечает конвертом {"incidents": [...]}, но клиент обязан
// переживать исторические формы ответа. Проверки идут по порядку,
// первая совпавшая выигрывает; порядок элементов не меняется:
//  1. сам ответ - массив
//  2. payload.incidents
//  3. payload.data
//  4. payload.items
//  5. payload._embedded.items
//
// Ни одна форма не подошла - возвращается пустой список
func Normalize(payload any) []any {
	if list, ok := payload.([]any); ok {
		return list
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		return []any{}
	}

	for _, key := range []string{"incidents", "data", "items"} {
		if list, ok := obj[key].([]any); ok {
			return list
		}
	}

	if embedded, ok := obj["_embedded"].(map[string]any); ok {
		if list, ok := embedded["items"].([]any); ok {
			return list
		}
	}

	return []any{}
}
