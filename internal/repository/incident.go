package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_directory/internal/models"
	"github.com/shenikar/incident_directory/internal/service"
)

const incidentsCacheKey = "incidents:list"

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// ListIncidents возвращает все происшествия, новые первыми, со всеми
// связанными сущностями, загруженными жадно
func (r *IncidentRepository) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	query := `
		SELECT id, uuid, title, description, incident_time, reporter_id, place_id, created_at
		FROM incidents
		ORDER BY created_at DESC, id DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{
			Persons: make([]*models.Person, 0),
			Photos:  make([]*models.Photo, 0),
		}
		err := rows.Scan(
			&incident.ID,
			&incident.UUID,
			&incident.Title,
			&incident.Description,
			&incident.IncidentTime,
			&incident.ReporterID,
			&incident.PlaceID,
			&incident.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}

	if len(incidents) == 0 {
		return incidents, nil
	}

	if err := r.attachRelations(ctx, incidents); err != nil {
		return nil, err
	}
	return incidents, nil
}

// attachRelations жадно подгружает людей, организации, места, адреса и фотографии
func (r *IncidentRepository) attachRelations(ctx context.Context, incidents []*models.Incident) error {
	incidentIDs := make([]int64, 0, len(incidents))
	byID := make(map[int64]*models.Incident, len(incidents))
	for _, incident := range incidents {
		incidentIDs = append(incidentIDs, incident.ID)
		byID[incident.ID] = incident
	}

	persons, err := r.loadIncidentPersons(ctx, incidentIDs, byID)
	if err != nil {
		return err
	}

	// Заявители - тоже люди; догружаем тех, кто не попал в выборку участников
	missingReporters := make([]int64, 0)
	for _, incident := range incidents {
		if incident.ReporterID != nil {
			if _, ok := persons[*incident.ReporterID]; !ok {
				missingReporters = append(missingReporters, *incident.ReporterID)
			}
		}
	}
	if len(missingReporters) > 0 {
		loaded, err := r.loadPersonsByID(ctx, missingReporters)
		if err != nil {
			return err
		}
		for id, person := range loaded {
			persons[id] = person
		}
	}
	for _, incident := range incidents {
		if incident.ReporterID != nil {
			incident.Reporter = persons[*incident.ReporterID]
		}
	}

	if err := r.attachOrganizations(ctx, persons); err != nil {
		return err
	}
	if err := r.attachPlaces(ctx, incidents); err != nil {
		return err
	}
	if err := r.attachIncidentPhotos(ctx, incidentIDs, byID); err != nil {
		return err
	}
	if err := r.attachPersonPhotos(ctx, persons); err != nil {
		return err
	}
	return nil
}

// loadIncidentPersons загружает участников происшествий в порядке веса
// и раскладывает их по инцидентам. Возвращает карту всех загруженных людей.
func (r *IncidentRepository) loadIncidentPersons(ctx context.Context, incidentIDs []int64, byID map[int64]*models.Incident) (map[int64]*models.Person, error) {
	query := `
		SELECT ip.incident_id,
			p.id, p.uuid, p.given_name, p.family_name, p.name_known,
			p.employed_by, p.outfit, p.hair_color, p.eye_color, p.skin_color
		FROM incident_persons ip
		JOIN persons p ON p.id = ip.person_id
		WHERE ip.incident_id = ANY($1)
		ORDER BY ip.incident_id, ip.weight, p.id;
	`
	rows, err := r.db.Query(ctx, query, incidentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load incident persons: %w", err)
	}
	defer rows.Close()

	persons := make(map[int64]*models.Person)
	for rows.Next() {
		var incidentID int64
		person := &models.Person{Photos: make([]*models.Photo, 0)}
		err := rows.Scan(
			&incidentID,
			&person.ID,
			&person.UUID,
			&person.GivenName,
			&person.FamilyName,
			&person.NameKnown,
			&person.EmployedByID,
			&person.Outfit,
			&person.HairColor,
			&person.EyeColor,
			&person.SkinColor,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person row: %w", err)
		}
		if existing, ok := persons[person.ID]; ok {
			person = existing
		} else {
			persons[person.ID] = person
		}
		if incident, ok := byID[incidentID]; ok {
			incident.Persons = append(incident.Persons, person)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error incident persons iteration: %w", err)
	}
	return persons, nil
}

// loadPersonsByID загружает людей по списку идентификаторов
func (r *IncidentRepository) loadPersonsByID(ctx context.Context, ids []int64) (map[int64]*models.Person, error) {
	query := `
		SELECT id, uuid, given_name, family_name, name_known,
			employed_by, outfit, hair_color, eye_color, skin_color
		FROM persons
		WHERE id = ANY($1);
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load persons: %w", err)
	}
	defer rows.Close()

	persons := make(map[int64]*models.Person)
	for rows.Next() {
		person := &models.Person{Photos: make([]*models.Photo, 0)}
		err := rows.Scan(
			&person.ID,
			&person.UUID,
			&person.GivenName,
			&person.FamilyName,
			&person.NameKnown,
			&person.EmployedByID,
			&person.Outfit,
			&person.HairColor,
			&person.EyeColor,
			&person.SkinColor,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person row: %w", err)
		}
		persons[person.ID] = person
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error persons iteration: %w", err)
	}
	return persons, nil
}

// attachOrganizations подгружает работодателей для всех загруженных людей
func (r *IncidentRepository) attachOrganizations(ctx context.Context, persons map[int64]*models.Person) error {
	orgIDs := make([]int64, 0)
	seen := make(map[int64]bool)
	for _, person := range persons {
		if person.EmployedByID != nil && !seen[*person.EmployedByID] {
			seen[*person.EmployedByID] = true
			orgIDs = append(orgIDs, *person.EmployedByID)
		}
	}
	if len(orgIDs) == 0 {
		return nil
	}

	query := `
		SELECT id, uuid, title, name, abbreviation
		FROM organizations
		WHERE id = ANY($1);
	`
	rows, err := r.db.Query(ctx, query, orgIDs)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}
	defer rows.Close()

	orgs := make(map[int64]*models.Organization)
	for rows.Next() {
		org := &models.Organization{}
		if err := rows.Scan(&org.ID, &org.UUID, &org.Title, &org.Name, &org.Abbreviation); err != nil {
			return fmt.Errorf("failed to scan organization row: %w", err)
		}
		orgs[org.ID] = org
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error organizations iteration: %w", err)
	}

	for _, person := range persons {
		if person.EmployedByID != nil {
			person.EmployedBy = orgs[*person.EmployedByID]
		}
	}
	return nil
}

// attachPlaces подгружает места вместе с адресами одним запросом
func (r *IncidentRepository) attachPlaces(ctx context.Context, incidents []*models.Incident) error {
	placeIDs := make([]int64, 0)
	seen := make(map[int64]bool)
	for _, incident := range incidents {
		if incident.PlaceID != nil && !seen[*incident.PlaceID] {
			seen[*incident.PlaceID] = true
			placeIDs = append(placeIDs, *incident.PlaceID)
		}
	}
	if len(placeIDs) == 0 {
		return nil
	}

	query := `
		SELECT pl.id, pl.uuid, pl.latitude, pl.longitude, pl.address_id,
			a.id, a.uuid, a.title, a.name, a.street_address,
			a.locality, a.region, a.postal_code, a.country
		FROM places pl
		LEFT JOIN addresses a ON a.id = pl.address_id
		WHERE pl.id = ANY($1);
	`
	rows, err := r.db.Query(ctx, query, placeIDs)
	if err != nil {
		return fmt.Errorf("failed to load places: %w", err)
	}
	defer rows.Close()

	places := make(map[int64]*models.Place)
	for rows.Next() {
		place := &models.Place{}
		var (
			addrID    *int64
			addrUUID  *uuid.UUID
			addrTitle *string
			address   models.Address
		)
		err := rows.Scan(
			&place.ID,
			&place.UUID,
			&place.Latitude,
			&place.Longitude,
			&place.AddressID,
			&addrID,
			&addrUUID,
			&addrTitle,
			&address.Name,
			&address.StreetAddress,
			&address.Locality,
			&address.Region,
			&address.PostalCode,
			&address.Country,
		)
		if err != nil {
			return fmt.Errorf("failed to scan place row: %w", err)
		}
		if addrID != nil {
			address.ID = *addrID
			if addrUUID != nil {
				address.UUID = *addrUUID
			}
			if addrTitle != nil {
				address.Title = *addrTitle
			}
			place.Address = &address
		}
		places[place.ID] = place
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error places iteration: %w", err)
	}

	for _, incident := range incidents {
		if incident.PlaceID != nil {
			incident.Place = places[*incident.PlaceID]
		}
	}
	return nil
}

// attachIncidentPhotos подгружает фотографии происшествий в порядке веса
func (r *IncidentRepository) attachIncidentPhotos(ctx context.Context, incidentIDs []int64, byID map[int64]*models.Incident) error {
	query := `
		SELECT iph.incident_id, ph.id, ph.uuid, ph.alt, ph.url
		FROM incident_photos iph
		JOIN photos ph ON ph.id = iph.photo_id
		WHERE iph.incident_id = ANY($1)
		ORDER BY iph.incident_id, iph.weight, ph.id;
	`
	rows, err := r.db.Query(ctx, query, incidentIDs)
	if err != nil {
		return fmt.Errorf("failed to load incident photos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var incidentID int64
		photo := &models.Photo{}
		if err := rows.Scan(&incidentID, &photo.ID, &photo.UUID, &photo.Alt, &photo.URL); err != nil {
			return fmt.Errorf("failed to scan photo row: %w", err)
		}
		if incident, ok := byID[incidentID]; ok {
			incident.Photos = append(incident.Photos, photo)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error incident photos iteration: %w", err)
	}
	return nil
}

// attachPersonPhotos подгружает фотографии людей в порядке веса
func (r *IncidentRepository) attachPersonPhotos(ctx context.Context, persons map[int64]*models.Person) error {
	if len(persons) == 0 {
		return nil
	}
	personIDs := make([]int64, 0, len(persons))
	for id := range persons {
		personIDs = append(personIDs, id)
	}

	query := `
		SELECT pph.person_id, ph.id, ph.uuid, ph.alt, ph.url
		FROM person_photos pph
		JOIN photos ph ON ph.id = pph.photo_id
		WHERE pph.person_id = ANY($1)
		ORDER BY pph.person_id, pph.weight, ph.id;
	`
	rows, err := r.db.Query(ctx, query, personIDs)
	if err != nil {
		return fmt.Errorf("failed to load person photos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var personID int64
		photo := &models.Photo{}
		if err := rows.Scan(&personID, &photo.ID, &photo.UUID, &photo.Alt, &photo.URL); err != nil {
			return fmt.Errorf("failed to scan photo row: %w", err)
		}
		if person, ok := persons[personID]; ok {
			person.Photos = append(person.Photos, photo)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error person photos iteration: %w", err)
	}
	return nil
}

// CreateIncident создает происшествие вместе со связями на участников и фотографии
func (r *IncidentRepository) CreateIncident(ctx context.Context, incident *models.Incident, personIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO incidents (title, description, incident_time, reporter_id, place_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, uuid, created_at;
	`
	err = tx.QueryRow(ctx, query,
		incident.Title,
		incident.Description,
		incident.IncidentTime,
		incident.ReporterID,
		incident.PlaceID,
	).Scan(&incident.ID, &incident.UUID, &incident.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}

	for weight, personID := range personIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO incident_persons (incident_id, person_id, weight) VALUES ($1, $2, $3);`,
			incident.ID, personID, weight,
		)
		if err != nil {
			return fmt.Errorf("failed to link incident person: %w", err)
		}
	}

	for weight, photo := range incident.Photos {
		if err := insertPhoto(ctx, tx, photo); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO incident_photos (incident_id, photo_id, weight) VALUES ($1, $2, $3);`,
			incident.ID, photo.ID, weight,
		)
		if err != nil {
			return fmt.Errorf("failed to link incident photo: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit incident: %w", err)
	}
	return nil
}

// CreatePerson создает человека вместе с фотографиями
func (r *IncidentRepository) CreatePerson(ctx context.Context, person *models.Person) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO persons (given_name, family_name, name_known, employed_by, outfit, hair_color, eye_color, skin_color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, uuid;
	`
	err = tx.QueryRow(ctx, query,
		person.GivenName,
		person.FamilyName,
		person.NameKnown,
		person.EmployedByID,
		person.Outfit,
		person.HairColor,
		person.EyeColor,
		person.SkinColor,
	).Scan(&person.ID, &person.UUID)
	if err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}

	for weight, photo := range person.Photos {
		if err := insertPhoto(ctx, tx, photo); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO person_photos (person_id, photo_id, weight) VALUES ($1, $2, $3);`,
			person.ID, photo.ID, weight,
		)
		if err != nil {
			return fmt.Errorf("failed to link person photo: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit person: %w", err)
	}
	return nil
}

// CreateOrganization создает организацию
func (r *IncidentRepository) CreateOrganization(ctx context.Context, org *models.Organization) error {
	query := `
		INSERT INTO organizations (title, name, abbreviation)
		VALUES ($1, $2, $3) RETURNING id, uuid;
	`
	err := r.db.QueryRow(ctx, query, org.Title, org.Name, org.Abbreviation).Scan(&org.ID, &org.UUID)
	if err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}
	return nil
}

// CreatePlace создает место происшествия
func (r *IncidentRepository) CreatePlace(ctx context.Context, place *models.Place) error {
	query := `
		INSERT INTO places (latitude, longitude, address_id)
		VALUES ($1, $2, $3) RETURNING id, uuid;
	`
	err := r.db.QueryRow(ctx, query, place.Latitude, place.Longitude, place.AddressID).Scan(&place.ID, &place.UUID)
	if err != nil {
		return fmt.Errorf("failed to create place: %w", err)
	}
	return nil
}

// CreateAddress создает адрес
func (r *IncidentRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	query := `
		INSERT INTO addresses (title, name, street_address, locality, region, postal_code, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, uuid;
	`
	err := r.db.QueryRow(ctx, query,
		address.Title,
		address.Name,
		address.StreetAddress,
		address.Locality,
		address.Region,
		address.PostalCode,
		address.Country,
	).Scan(&address.ID, &address.UUID)
	if err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

func insertPhoto(ctx context.Context, tx pgx.Tx, photo *models.Photo) error {
	err := tx.QueryRow(ctx,
		`INSERT INTO photos (alt, url) VALUES ($1, $2) RETURNING id, uuid;`,
		photo.Alt, photo.URL,
	).Scan(&photo.ID, &photo.UUID)
	if err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}
	return nil
}

// GetIncidentsFromCache пытается получить список происшествий из Redis
func (r *IncidentRepository) GetIncidentsFromCache(ctx context.Context) ([]*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, incidentsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incidents from cache: %w", err)
	}

	incidents := make([]*models.Incident, 0)
	if err := json.Unmarshal(val, &incidents); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incidents from cache: %w", err)
	}
	return incidents, nil
}

// SetIncidentsCache сохраняет список происшествий в Redis
func (r *IncidentRepository) SetIncidentsCache(ctx context.Context, incidents []*models.Incident) error {
	val, err := json.Marshal(incidents)
	if err != nil {
		return fmt.Errorf("failed to marshal incidents for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, incidentsCacheKey, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incidents in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentsCache удаляет список происшествий из Redis кэша
func (r *IncidentRepository) InvalidateIncidentsCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, incidentsCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incidents cache: %w", err)
	}
	return nil
}
