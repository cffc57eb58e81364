package translate

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_directory/internal/config"
	"github.com/sirupsen/logrus"
)

// Worker - фоновый обработчик очереди заданий перевода
type Worker struct {
	redisClient *redis.Client
	service     *Service
	logger      *logrus.Logger
	cfg         *config.Config
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, service *Service, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		service:     service,
		logger:      logger,
		cfg:         cfg,
	}
}

// Start запускает горутину для обработки очереди переводов
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting translate worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping translate worker.")
				return
			default:
				// BRPop - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, translateQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop translate job from Redis")
					time.Sleep(w.cfg.TranslateBaseDelay)
					continue
				}

				// result[0] - ключ, result[1] - значение
				var job Job
				if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal translate job from Redis")
					continue
				}

				w.processJob(ctx, job)
			}
		}
	}()
}

// processJob выполняет одно задание с повторными попытками.
// Пакет переводов атомарен: частичных сохранений не бывает,
// поэтому повтор всего задания безопасен
func (w *Worker) processJob(ctx context.Context, job Job) {
	log := w.logger.WithField("field", job.Field).WithField("source_lang", job.SourceLang)
	log.Debug("Processing translate job...")

	maxRetries := w.cfg.TranslateRetries
	baseDelay := w.cfg.TranslateBaseDelay

	for i := 0; i < maxRetries; i++ {
		_, err := w.service.TranslateField(ctx, job.Field, job.Text, job.SourceLang)
		if err == nil {
			log.Info("Translate job completed successfully.")
			return
		}

		log.WithError(err).Warnf("Translate job failed. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to complete translate job after %d retries.", maxRetries)
}
