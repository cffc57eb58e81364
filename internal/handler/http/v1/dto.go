package v1

// Форма ответа - плоская проекция сущностей каталога: необязательные
// скаляры сериализуются как null, списки связей - всегда массивы.

// IncidentsEnvelope - конверт ответа списка происшествий
// @Description Конверт ответа списка происшествий
type IncidentsEnvelope struct {
	Incidents []*IncidentResponse `json:"incidents"`
}

// IncidentResponse DTO происшествия
// @Description DTO происшествия со вложенными сущностями
type IncidentResponse struct {
	ID           int64             `json:"id"`
	UUID         string            `json:"uuid"`
	Title        string            `json:"title"`
	Created      int64             `json:"created"`
	IncidentTime *string           `json:"incidentTime"`
	Description  *string           `json:"description"`
	Reporter     *PersonResponse   `json:"reporter"`
	Place        *PlaceResponse    `json:"place"`
	Persons      []*PersonResponse `json:"persons"`
	Photos       []*PhotoResponse  `json:"photos"`
}

// PersonResponse DTO человека
// @Description DTO человека
type PersonResponse struct {
	ID         int64                 `json:"id"`
	UUID       string                `json:"uuid"`
	GivenName  *string               `json:"givenName"`
	FamilyName *string               `json:"familyName"`
	NameKnown  *string               `json:"nameKnown"`
	EmployedBy *OrganizationResponse `json:"employedBy"`
	Outfit     *string               `json:"outfit"`
	HairColor  *string               `json:"hairColor"`
	EyeColor   *string               `json:"eyeColor"`
	SkinColor  *string               `json:"skinColor"`
	Photos     []*PhotoResponse      `json:"photos"`
}

// OrganizationResponse DTO организации
// @Description DTO организации
type OrganizationResponse struct {
	ID           int64   `json:"id"`
	UUID         string  `json:"uuid"`
	Name         string  `json:"name"`
	Abbreviation *string `json:"abbreviation"`
}

// PlaceResponse DTO места происшествия
// @Description DTO места происшествия
type PlaceResponse struct {
	ID        int64            `json:"id"`
	UUID      string           `json:"uuid"`
	Latitude  *string          `json:"latitude"`
	Longitude *string          `json:"longitude"`
	Address   *AddressResponse `json:"address"`
}

// AddressResponse DTO адреса
// @Description DTO адреса
type AddressResponse struct {
	ID            int64   `json:"id"`
	UUID          string  `json:"uuid"`
	Name          string  `json:"name"`
	StreetAddress *string `json:"streetAddress"`
	Locality      *string `json:"locality"`
	Region        *string `json:"region"`
	PostalCode    *string `json:"postalCode"`
	Country       *string `json:"country"`
}

// PhotoResponse DTO фотографии
// @Description DTO фотографии
type PhotoResponse struct {
	ID   int64  `json:"id"`
	UUID string `json:"uuid"`
	Alt  string `json:"alt"`
	URL  string `json:"url"`
}

// PhotoRequest DTO прикрепляемой фотографии
// @Description DTO прикрепляемой фотографии
type PhotoRequest struct {
	Alt string `json:"alt,omitempty"`
	URL string `json:"url" validate:"required,url"`
}

// CreateIncidentRequest DTO для создания происшествия
// @Description DTO для создания происшествия
type CreateIncidentRequest struct {
	Title        string         `json:"title" validate:"required,min=2,max=255"`
	Description  string         `json:"description,omitempty"`
	IncidentTime string         `json:"incident_time,omitempty"`
	ReporterID   *int64         `json:"reporter_id,omitempty"`
	PlaceID      *int64         `json:"place_id,omitempty"`
	PersonIDs    []int64        `json:"person_ids,omitempty"`
	Photos       []PhotoRequest `json:"photos,omitempty" validate:"dive"`
}

// CreatePersonRequest DTO для создания человека
// @Description DTO для создания человека
type CreatePersonRequest struct {
	GivenName    string         `json:"given_name,omitempty" validate:"max=255"`
	FamilyName   string         `json:"family_name,omitempty" validate:"max=255"`
	NameKnown    bool           `json:"name_known,omitempty"`
	EmployedByID *int64         `json:"employed_by,omitempty"`
	Outfit       string         `json:"outfit,omitempty"`
	HairColor    string         `json:"hair_color,omitempty"`
	EyeColor     string         `json:"eye_color,omitempty"`
	SkinColor    string         `json:"skin_color,omitempty"`
	Photos       []PhotoRequest `json:"photos,omitempty" validate:"dive"`
}

// CreateOrganizationRequest DTO для создания организации
// @Description DTO для создания организации
type CreateOrganizationRequest struct {
	Title        string `json:"title" validate:"required,min=2,max=255"`
	Name         string `json:"name,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// CreatePlaceRequest DTO для создания места
// @Description DTO для создания места
type CreatePlaceRequest struct {
	Latitude  string `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude string `json:"longitude,omitempty" validate:"omitempty,longitude"`
	AddressID *int64 `json:"address_id,omitempty"`
}

// CreateAddressRequest DTO для создания адреса
// @Description DTO для создания адреса
type CreateAddressRequest struct {
	Title         string `json:"title" validate:"required,min=2,max=255"`
	Name          string `json:"name,omitempty"`
	StreetAddress string `json:"street_address,omitempty"`
	Locality      string `json:"locality,omitempty"`
	Region        string `json:"region,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	Country       string `json:"country,omitempty"`
}

// TranslateRequest DTO запроса перевода поля.
// Пустой target означает перевод на все настроенные языки
// @Description DTO запроса перевода поля
type TranslateRequest struct {
	Field  string `json:"field" validate:"required"`
	Text   string `json:"text" validate:"required"`
	Source string `json:"source,omitempty"`
	Target string `json:"target,omitempty"`
}

// TranslationsResponse DTO сохраненных переводов поля
// @Description DTO сохраненных переводов поля
type TranslationsResponse struct {
	Field        string            `json:"field"`
	Translations map[string]string `json:"translations"`
}

// StoredValueResponse DTO подстановки сохраненного перевода
// @Description DTO подстановки сохраненного перевода
type StoredValueResponse struct {
	Field string `json:"field"`
	Lang  string `json:"lang"`
	Value string `json:"value"`
}
