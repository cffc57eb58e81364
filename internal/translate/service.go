package translate

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// Service - бизнес-логика переводов: пакетный перевод на все языки,
// одиночный перевод и подстановка сохраненных переводов
type Service struct {
	translator Translator
	store      Store
	languages  map[string]string
	logger     *logrus.Logger
}

func NewService(translator Translator, store Store, languages map[string]string, logger *logrus.Logger) *Service {
	return &Service{
		translator: translator,
		store:      store,
		languages:  languages,
		logger:     logger,
	}
}

// Languages возвращает настроенные целевые языки (код -> название)
func (s *Service) Languages() map[string]string {
	return s.languages
}

// TranslateField переводит текст на все настроенные языки, кроме исходного.
// Запросы уходят параллельно, по одному на язык; сервис дожидается всех.
// Неудача любого из них отменяет весь пакет - ничего не сохраняется.
// Успех заменяет сохраненную карту переводов поля целиком.
func (s *Service) TranslateField(ctx context.Context, field, text, sourceLang string) (map[string]string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "translate",
		"method":  "TranslateField",
		"field":   field,
	})

	if text == "" {
		return nil, fmt.Errorf("translate: nothing to translate for field %q", field)
	}

	targets := make([]string, 0, len(s.languages))
	for code := range s.languages {
		if code != sourceLang {
			targets = append(targets, code)
		}
	}
	sort.Strings(targets)
	if len(targets) == 0 {
		return nil, fmt.Errorf("translate: no target languages configured")
	}

	log.WithField("targets", targets).Info("Translating field to all languages")

	results := make([]string, len(targets))
	errs := make([]error, len(targets))
	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target string) {
			defer wg.Done()
			results[i], errs[i] = s.translator.Translate(ctx, text, sourceLang, target)
		}(i, target)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			log.WithError(err).WithField("target", targets[i]).Error("Translation batch failed")
			return nil, fmt.Errorf("translate: could not translate field %q to %q: %w", field, targets[i], err)
		}
	}

	translations := make(map[string]string, len(targets))
	for i, target := range targets {
		translations[target] = results[i]
	}

	if err := s.store.Set(ctx, field, translations); err != nil {
		log.WithError(err).Error("Failed to persist translations")
		return nil, fmt.Errorf("translate: could not persist translations: %w", err)
	}

	log.Info("Field translated to all languages")
	return translations, nil
}

// TranslateFieldTo переводит текст на один язык и сливает результат
// с уже сохраненными переводами, не трогая остальные языки
func (s *Service) TranslateFieldTo(ctx context.Context, field, text, sourceLang, targetLang string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "translate",
		"method":  "TranslateFieldTo",
		"field":   field,
		"target":  targetLang,
	})

	if text == "" {
		return "", fmt.Errorf("translate: nothing to translate for field %q", field)
	}
	if _, ok := s.languages[targetLang]; !ok {
		return "", fmt.Errorf("translate: unknown target language %q", targetLang)
	}

	translated, err := s.translator.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		log.WithError(err).Error("Translation failed")
		return "", fmt.Errorf("translate: could not translate field %q to %q: %w", field, targetLang, err)
	}

	stored, err := s.store.Get(ctx, field)
	if err != nil {
		log.WithError(err).Error("Failed to read stored translations")
		return "", fmt.Errorf("translate: could not read stored translations: %w", err)
	}
	stored[targetLang] = translated
	if err := s.store.Set(ctx, field, stored); err != nil {
		log.WithError(err).Error("Failed to persist translation")
		return "", fmt.Errorf("translate: could not persist translation: %w", err)
	}

	log.Info("Field translated")
	return translated, nil
}

// Stored возвращает сохраненные переводы поля
func (s *Service) Stored(ctx context.Context, field string) (map[string]string, error) {
	return s.store.Get(ctx, field)
}

// ApplyStored возвращает сохраненный перевод поля для языка, только если
// текущее значение пусто. Введенный пользователем текст не перезаписывается
func (s *Service) ApplyStored(ctx context.Context, field, lang, current string) (string, error) {
	if current != "" {
		return current, nil
	}
	stored, err := s.store.Get(ctx, field)
	if err != nil {
		return "", fmt.Errorf("translate: could not read stored translations: %w", err)
	}
	return stored[lang], nil
}

// Clear удаляет сохраненные переводы поля
func (s *Service) Clear(ctx context.Context, field string) error {
	return s.store.Clear(ctx, field)
}
