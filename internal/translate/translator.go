package translate

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=translator.go -destination=mocks/mock_translator.go -package=mocks

// Translator определяет контракт для внешнего сервиса перевода
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// googleResponse - успешный ответ Google Translate v2.
// Любая другая форма ответа считается ошибкой.
type googleResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// GoogleTranslator - клиент Google Translate v2 поверх resty
type GoogleTranslator struct {
	httpClient *resty.Client
	apiKey     string
	logger     *logrus.Logger
}

func NewGoogleTranslator(endpoint, apiKey string, timeout time.Duration, logger *logrus.Logger) *GoogleTranslator {
	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &GoogleTranslator{
		httpClient: client,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// Translate переводит текст с sourceLang на targetLang
func (t *GoogleTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	log := t.logger.WithFields(logrus.Fields{
		"source": sourceLang,
		"target": targetLang,
	})

	var result googleResponse
	resp, err := t.httpClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"q":      text,
			"source": sourceLang,
			"target": targetLang,
			"key":    t.apiKey,
		}).
		SetResult(&result).
		Post("")
	if err != nil {
		log.WithError(err).Error("Translate API call failed")
		return "", fmt.Errorf("failed to call translate API: %w", err)
	}

	if resp.IsError() {
		log.WithField("status_code", resp.StatusCode()).Error("Translate API returned error status")
		return "", fmt.Errorf("translate API request failed (%d)", resp.StatusCode())
	}

	if len(result.Data.Translations) == 0 {
		log.Error("Translate API returned unexpected response shape")
		return "", fmt.Errorf("invalid response from translate API")
	}

	log.Debug("Text translated successfully")
	return result.Data.Translations[0].TranslatedText, nil
}
