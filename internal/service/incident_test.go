package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/shenikar/incident_directory/internal/config"
	"github.com/shenikar/incident_directory/internal/models"
	"github.com/shenikar/incident_directory/internal/service/mocks"
	"github.com/shenikar/incident_directory/internal/translate"
	translate_mocks "github.com/shenikar/incident_directory/internal/translate/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *translate_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	publisherMock := translate_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		TranslateAPIKey: "test-translate-key",
		DefaultLanguage: "en",
	}

	service := NewIncidentService(repoMock, logger, cfg, publisherMock)
	return service.(*incidentService), repoMock, publisherMock
}

func strPtr(s string) *string {
	return &s
}

func TestListIncidents_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	expectedIncidents := []*models.Incident{
		{ID: 1, Title: "Пожар из кеша"},
	}

	// Ожидания
	repoMock.EXPECT().
		GetIncidentsFromCache(ctx).
		Return(expectedIncidents, nil).
		Times(1)

	// Действие
	incidents, err := service.ListIncidents(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncidents, incidents)
}

func TestListIncidents_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	expectedIncidents := []*models.Incident{
		{ID: 1, Title: "Пожар из БД"},
		{ID: 2, Title: "Наводнение из БД"},
	}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetIncidentsFromCache(ctx).
		Return(nil, nil).
		Times(1)

	// 2. Попадание в БД
	repoMock.EXPECT().
		ListIncidents(ctx).
		Return(expectedIncidents, nil).
		Times(1)

	// 3. Запись в кеш
	repoMock.EXPECT().
		SetIncidentsCache(ctx, expectedIncidents).
		Return(nil).
		Times(1)

	// Действие
	incidents, err := service.ListIncidents(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncidents, incidents)
}

func TestListIncidents_CacheErrorFallsThrough(t *testing.T) {
	// Подготовка: ошибка кеша не должна ломать чтение
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	expectedIncidents := []*models.Incident{{ID: 1, Title: "Пожар"}}
	cacheError := fmt.Errorf("redis недоступен")

	// Ожидания
	repoMock.EXPECT().GetIncidentsFromCache(ctx).Return(nil, cacheError).Times(1)
	repoMock.EXPECT().ListIncidents(ctx).Return(expectedIncidents, nil).Times(1)
	repoMock.EXPECT().SetIncidentsCache(ctx, expectedIncidents).Return(nil).Times(1)

	// Действие
	incidents, err := service.ListIncidents(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncidents, incidents)
}

func TestListIncidents_DBError(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("ошибка БД")

	// Ожидания
	repoMock.EXPECT().GetIncidentsFromCache(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListIncidents(ctx).Return(nil, dbError).Times(1)

	// Действие
	incidents, err := service.ListIncidents(ctx)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incidents)
	assert.ErrorContains(t, err, "could not list incidents")
}

func TestCreateIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentToCreate := &models.Incident{
		Title:       "Новый пожар",
		Description: strPtr("Горит склад"),
	}
	personIDs := []int64{3, 5}

	// Ожидания
	repoMock.EXPECT().
		CreateIncident(ctx, incidentToCreate, personIDs).
		DoAndReturn(func(ctx context.Context, inc *models.Incident, _ []int64) error {
			// Симулируем, что БД присвоила ID
			inc.ID = 42
			return nil
		}).Times(1)

	repoMock.EXPECT().
		InvalidateIncidentsCache(ctx).
		Return(nil).
		Times(1)

	// Переводы ставятся в очередь для заголовка и описания
	publisherMock.EXPECT().
		Publish(ctx, translate.Job{Field: "title", Text: "Новый пожар", SourceLang: "en"}).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, translate.Job{Field: "field_description", Text: "Горит склад", SourceLang: "en"}).
		Return(nil).
		Times(1)

	// Действие
	err := service.CreateIncident(ctx, incidentToCreate, personIDs)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(42), incidentToCreate.ID)
}

func TestCreateIncident_NoTranslateKey_SkipsQueue(t *testing.T) {
	// Подготовка: ключ перевода не настроен
	service, repoMock, publisherMock := newTestIncidentService(t)
	service.cfg.TranslateAPIKey = ""
	ctx := context.Background()
	incidentToCreate := &models.Incident{Title: "Пожар"}

	// Ожидания
	repoMock.EXPECT().CreateIncident(ctx, incidentToCreate, nil).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentsCache(ctx).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.CreateIncident(ctx, incidentToCreate, nil)

	// Проверки
	require.NoError(t, err)
}

func TestCreateIncident_PublishErrorDoesNotFail(t *testing.T) {
	// Подготовка: очередь переводов недоступна
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentToCreate := &models.Incident{Title: "Пожар"}
	queueError := fmt.Errorf("redis недоступен")

	// Ожидания
	repoMock.EXPECT().CreateIncident(ctx, incidentToCreate, nil).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentsCache(ctx).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(queueError).Times(1)

	// Действие
	err := service.CreateIncident(ctx, incidentToCreate, nil)

	// Проверки: перевод - фоновая задача, создание не прерывается
	require.NoError(t, err)
}

func TestCreateIncident_RepoError(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentToCreate := &models.Incident{Title: "Пожар"}
	repoError := fmt.Errorf("ошибка БД")

	// Ожидания
	repoMock.EXPECT().CreateIncident(ctx, incidentToCreate, nil).Return(repoError).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.CreateIncident(ctx, incidentToCreate, nil)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not create incident")
}

func TestCreatePerson_NameUnknown_ClearsNameFields(t *testing.T) {
	// Подготовка: nameKnown не задан - поля имени должны быть очищены
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	personToCreate := &models.Person{
		GivenName:  strPtr("Jane"),
		FamilyName: strPtr("Doe"),
		NameKnown:  nil,
	}

	// Ожидания
	repoMock.EXPECT().
		CreatePerson(ctx, gomock.Any()).
		Do(func(_ context.Context, person *models.Person) {
			assert.Nil(t, person.GivenName)
			assert.Nil(t, person.FamilyName)
		}).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentsCache(ctx).Return(nil).Times(1)

	// Действие
	err := service.CreatePerson(ctx, personToCreate)

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, personToCreate.GivenName)
	assert.Nil(t, personToCreate.FamilyName)
}

func TestCreatePerson_NameKnown_KeepsNameFields(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	personToCreate := &models.Person{
		GivenName:  strPtr("Jane"),
		FamilyName: strPtr("Doe"),
		NameKnown:  strPtr("1"),
	}

	// Ожидания
	repoMock.EXPECT().
		CreatePerson(ctx, gomock.Any()).
		Do(func(_ context.Context, person *models.Person) {
			require.NotNil(t, person.GivenName)
			assert.Equal(t, "Jane", *person.GivenName)
		}).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentsCache(ctx).Return(nil).Times(1)

	// Действие
	err := service.CreatePerson(ctx, personToCreate)

	// Проверки
	require.NoError(t, err)
}

func TestCreateOrganization_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	org := &models.Organization{Title: "Пожарная часть 12"}

	// Ожидания
	repoMock.EXPECT().CreateOrganization(ctx, org).Return(nil).Times(1)

	// Действие
	err := service.CreateOrganization(ctx, org)

	// Проверки
	require.NoError(t, err)
}

func TestCreatePlace_RepoError(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	place := &models.Place{}
	repoError := fmt.Errorf("ошибка БД")

	// Ожидания
	repoMock.EXPECT().CreatePlace(ctx, place).Return(repoError).Times(1)

	// Действие
	err := service.CreatePlace(ctx, place)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not create place")
}

func TestCreateAddress_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	address := &models.Address{Title: "Главная площадь"}

	// Ожидания
	repoMock.EXPECT().CreateAddress(ctx, address).Return(nil).Times(1)

	// Действие
	err := service.CreateAddress(ctx, address)

	// Проверки
	require.NoError(t, err)
}
