package service

import (
	"context"
	"fmt"

	"github.com/shenikar/incident_directory/internal/config"
	"github.com/shenikar/incident_directory/internal/models"
	"github.com/shenikar/incident_directory/internal/translate"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// IncidentRepository определяет контракт для работы с хранилищем происшествий
type IncidentRepository interface {
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	CreateIncident(ctx context.Context, incident *models.Incident, personIDs []int64) error
	CreatePerson(ctx context.Context, person *models.Person) error
	CreateOrganization(ctx context.Context, org *models.Organization) error
	CreatePlace(ctx context.Context, place *models.Place) error
	CreateAddress(ctx context.Context, address *models.Address) error
	GetIncidentsFromCache(ctx context.Context) ([]*models.Incident, error)
	SetIncidentsCache(ctx context.Context, incidents []*models.Incident) error
	InvalidateIncidentsCache(ctx context.Context) error
}

// IncidentService определяет контракт для бизнес-логики каталога происшествий
type IncidentService interface {
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	CreateIncident(ctx context.Context, incident *models.Incident, personIDs []int64) error
	CreatePerson(ctx context.Context, person *models.Person) error
	CreateOrganization(ctx context.Context, org *models.Organization) error
	CreatePlace(ctx context.Context, place *models.Place) error
	CreateAddress(ctx context.Context, address *models.Address) error
}

type incidentService struct {
	repo           IncidentRepository
	logger         *logrus.Logger
	cfg            *config.Config
	translateQueue translate.Publisher
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, cfg *config.Config, translateQueue translate.Publisher) IncidentService {
	return &incidentService{
		repo:           repo,
		logger:         logger,
		cfg:            cfg,
		translateQueue: translateQueue,
	}
}

// ListIncidents возвращает все происшествия, новые первыми
func (s *incidentService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})
	log.Info("Listing incidents")

	cached, err := s.repo.GetIncidentsFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read incidents cache, falling back to database")
	}
	if cached != nil {
		log.WithField("count", len(cached)).Info("Incidents served from cache")
		return cached, nil
	}

	incidents, err := s.repo.ListIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	if err := s.repo.SetIncidentsCache(ctx, incidents); err != nil {
		log.WithError(err).Warn("Failed to store incidents in cache")
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// CreateIncident создает происшествие и ставит в очередь перевод его текстов
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident, personIDs []int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"title":   incident.Title,
	})
	log.Info("Attempting to create a new incident")

	if err := s.repo.CreateIncident(ctx, incident, personIDs); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentsCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate incidents cache")
	}

	s.enqueueTranslations(ctx, log, incident)

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// enqueueTranslations ставит в очередь перевод заголовка и описания.
// Ошибка очереди не прерывает создание: переводы - фоновая задача.
func (s *incidentService) enqueueTranslations(ctx context.Context, log *logrus.Entry, incident *models.Incident) {
	if s.cfg.TranslateAPIKey == "" {
		log.Debug("Translate API key is not configured, skipping translation jobs")
		return
	}

	jobs := []translate.Job{
		{Field: "title", Text: incident.Title, SourceLang: s.cfg.DefaultLanguage},
	}
	if incident.Description != nil && *incident.Description != "" {
		jobs = append(jobs, translate.Job{
			Field:      "field_description",
			Text:       *incident.Description,
			SourceLang: s.cfg.DefaultLanguage,
		})
	}

	for _, job := range jobs {
		if err := s.translateQueue.Publish(ctx, job); err != nil {
			log.WithError(err).WithField("field", job.Field).Warn("Failed to enqueue translation job")
		}
	}
}

// CreatePerson создает человека. Если имя неизвестно (nameKnown не задан),
// поля имени и фамилии очищаются - форма их скрывает
func (s *incidentService) CreatePerson(ctx context.Context, person *models.Person) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreatePerson",
	})
	log.Info("Attempting to create a new person")

	if person.NameKnown == nil {
		person.GivenName = nil
		person.FamilyName = nil
	}

	if err := s.repo.CreatePerson(ctx, person); err != nil {
		log.WithError(err).Error("Failed to create person in repository")
		return fmt.Errorf("service: could not create person: %w", err)
	}

	if err := s.repo.InvalidateIncidentsCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate incidents cache")
	}

	log.WithField("person_id", person.ID).Info("Person created successfully")
	return nil
}

// CreateOrganization создает организацию
func (s *incidentService) CreateOrganization(ctx context.Context, org *models.Organization) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateOrganization",
		"title":   org.Title,
	})
	log.Info("Attempting to create a new organization")

	if err := s.repo.CreateOrganization(ctx, org); err != nil {
		log.WithError(err).Error("Failed to create organization in repository")
		return fmt.Errorf("service: could not create organization: %w", err)
	}

	log.WithField("organization_id", org.ID).Info("Organization created successfully")
	return nil
}

// CreatePlace создает место происшествия
func (s *incidentService) CreatePlace(ctx context.Context, place *models.Place) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreatePlace",
	})
	log.Info("Attempting to create a new place")

	if err := s.repo.CreatePlace(ctx, place); err != nil {
		log.WithError(err).Error("Failed to create place in repository")
		return fmt.Errorf("service: could not create place: %w", err)
	}

	log.WithField("place_id", place.ID).Info("Place created successfully")
	return nil
}

// CreateAddress создает адрес
func (s *incidentService) CreateAddress(ctx context.Context, address *models.Address) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateAddress",
		"title":   address.Title,
	})
	log.Info("Attempting to create a new address")

	if err := s.repo.CreateAddress(ctx, address); err != nil {
		log.WithError(err).Error("Failed to create address in repository")
		return fmt.Errorf("service: could not create address: %w", err)
	}

	log.WithField("address_id", address.ID).Info("Address created successfully")
	return nil
}
