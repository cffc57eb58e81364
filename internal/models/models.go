package models

import (
	"time"

	"github.com/google/uuid"
)

// Incident - запись о происшествии со ссылками на людей, место и фотографии.
// Необязательные скалярные поля представлены указателями: nil означает
// отсутствие значения (пустые строки нормализуются в nil при записи).
type Incident struct {
	ID           int64
	UUID         uuid.UUID
	Title        string
	Description  *string
	IncidentTime *string
	ReporterID   *int64
	PlaceID      *int64
	CreatedAt    time.Time

	// Связанные сущности загружаются жадно: либо полный объект, либо nil
	Reporter *Person
	Place    *Place
	Persons  []*Person
	Photos   []*Photo
}

// Person - человек, фигурирующий в происшествии (участник или заявитель)
type Person struct {
	ID           int64
	UUID         uuid.UUID
	GivenName    *string
	FamilyName   *string
	NameKnown    *string
	EmployedByID *int64
	Outfit       *string
	HairColor    *string
	EyeColor     *string
	SkinColor    *string

	EmployedBy *Organization
	Photos     []*Photo
}

// Organization - организация-работодатель
type Organization struct {
	ID           int64
	UUID         uuid.UUID
	Title        string
	Name         *string
	Abbreviation *string
}

// Place - место происшествия с координатами и адресом
type Place struct {
	ID        int64
	UUID      uuid.UUID
	Latitude  *string
	Longitude *string
	AddressID *int64

	Address *Address
}

// Address - почтовый адрес места
type Address struct {
	ID            int64
	UUID          uuid.UUID
	Title         string
	Name          *string
	StreetAddress *string
	Locality      *string
	Region        *string
	PostalCode    *string
	Country       *string
}

// Photo - фотография, прикрепленная к происшествию или человеку
type Photo struct {
	ID   int64
	UUID uuid.UUID
	Alt  string
	URL  string
}

// DisplayName возвращает имя организации: поле name, либо title, если name пусто
func (o *Organization) DisplayName() string {
	if o.Name != nil && *o.Name != "" {
		return *o.Name
	}
	return o.Title
}

// DisplayName возвращает название адреса: поле name, либо title, если name пусто
func (a *Address) DisplayName() string {
	if a.Name != nil && *a.Name != "" {
		return *a.Name
	}
	return a.Title
}
