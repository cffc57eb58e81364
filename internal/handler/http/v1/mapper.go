package v1

import "github.com/shenikar/incident_directory/internal/models"

// nullable нормализует необязательное значение: пустая строка становится null
func nullable(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// optional превращает строку запроса в указатель: пустые строки
// нормализуются в nil на входе в хранилище
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	resp := &IncidentResponse{
		ID:           model.ID,
		UUID:         model.UUID.String(),
		Title:        model.Title,
		Created:      model.CreatedAt.Unix(),
		IncidentTime: nullable(model.IncidentTime),
		Description:  nullable(model.Description),
		Reporter:     ModelToPersonResponse(model.Reporter),
		Place:        ModelToPlaceResponse(model.Place),
		Persons:      make([]*PersonResponse, 0, len(model.Persons)),
		Photos:       make([]*PhotoResponse, 0, len(model.Photos)),
	}
	for _, person := range model.Persons {
		resp.Persons = append(resp.Persons, ModelToPersonResponse(person))
	}
	for _, photo := range model.Photos {
		resp.Photos = append(resp.Photos, ModelToPhotoResponse(photo))
	}
	return resp
}

// ModelToPersonResponse преобразует человека в DTO; nil остается nil
func ModelToPersonResponse(model *models.Person) *PersonResponse {
	if model == nil {
		return nil
	}
	resp := &PersonResponse{
		ID:         model.ID,
		UUID:       model.UUID.String(),
		GivenName:  nullable(model.GivenName),
		FamilyName: nullable(model.FamilyName),
		NameKnown:  nullable(model.NameKnown),
		EmployedBy: ModelToOrganizationResponse(model.EmployedBy),
		Outfit:     nullable(model.Outfit),
		HairColor:  nullable(model.HairColor),
		EyeColor:   nullable(model.EyeColor),
		SkinColor:  nullable(model.SkinColor),
		Photos:     make([]*PhotoResponse, 0, len(model.Photos)),
	}
	for _, photo := range model.Photos {
		resp.Photos = append(resp.Photos, ModelToPhotoResponse(photo))
	}
	return resp
}

// ModelToOrganizationResponse преобразует организацию в DTO.
// Имя подставляется из title, если поле name пусто
func ModelToOrganizationResponse(model *models.Organization) *OrganizationResponse {
	if model == nil {
		return nil
	}
	return &OrganizationResponse{
		ID:           model.ID,
		UUID:         model.UUID.String(),
		Name:         model.DisplayName(),
		Abbreviation: nullable(model.Abbreviation),
	}
}

// ModelToPlaceResponse преобразует место в DTO; nil остается nil
func ModelToPlaceResponse(model *models.Place) *PlaceResponse {
	if model == nil {
		return nil
	}
	return &PlaceResponse{
		ID:        model.ID,
		UUID:      model.UUID.String(),
		Latitude:  nullable(model.Latitude),
		Longitude: nullable(model.Longitude),
		Address:   ModelToAddressResponse(model.Address),
	}
}

// ModelToAddressResponse преобразует адрес в DTO.
// Название подставляется из title, если поле name пусто
func ModelToAddressResponse(model *models.Address) *AddressResponse {
	if model == nil {
		return nil
	}
	return &AddressResponse{
		ID:            model.ID,
		UUID:          model.UUID.String(),
		Name:          model.DisplayName(),
		StreetAddress: nullable(model.StreetAddress),
		Locality:      nullable(model.Locality),
		Region:        nullable(model.Region),
		PostalCode:    nullable(model.PostalCode),
		Country:       nullable(model.Country),
	}
}

// ModelToPhotoResponse преобразует фотографию в DTO
func ModelToPhotoResponse(model *models.Photo) *PhotoResponse {
	return &PhotoResponse{
		ID:   model.ID,
		UUID: model.UUID.String(),
		Alt:  model.Alt,
		URL:  model.URL,
	}
}

// ModelsToIncidentsEnvelope преобразует слайс моделей в конверт ответа
func ModelsToIncidentsEnvelope(incidents []*models.Incident) IncidentsEnvelope {
	envelope := IncidentsEnvelope{Incidents: make([]*IncidentResponse, 0, len(incidents))}
	for _, incident := range incidents {
		envelope.Incidents = append(envelope.Incidents, ModelToIncidentResponse(incident))
	}
	return envelope
}

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	incident := &models.Incident{
		Title:        dto.Title,
		Description:  optional(dto.Description),
		IncidentTime: optional(dto.IncidentTime),
		ReporterID:   dto.ReporterID,
		PlaceID:      dto.PlaceID,
		Persons:      make([]*models.Person, 0),
		Photos:       dtoToPhotoModels(dto.Photos),
	}
	return incident
}

// DTOToPersonModel преобразует DTO создания в доменную модель.
// Флаг name_known сериализуется как строковый флаг "1", как в исходной схеме
func DTOToPersonModel(dto CreatePersonRequest) *models.Person {
	var nameKnown *string
	if dto.NameKnown {
		flag := "1"
		nameKnown = &flag
	}
	return &models.Person{
		GivenName:    optional(dto.GivenName),
		FamilyName:   optional(dto.FamilyName),
		NameKnown:    nameKnown,
		EmployedByID: dto.EmployedByID,
		Outfit:       optional(dto.Outfit),
		HairColor:    optional(dto.HairColor),
		EyeColor:     optional(dto.EyeColor),
		SkinColor:    optional(dto.SkinColor),
		Photos:       dtoToPhotoModels(dto.Photos),
	}
}

// DTOToOrganizationModel преобразует DTO создания в доменную модель
func DTOToOrganizationModel(dto CreateOrganizationRequest) *models.Organization {
	return &models.Organization{
		Title:        dto.Title,
		Name:         optional(dto.Name),
		Abbreviation: optional(dto.Abbreviation),
	}
}

// DTOToPlaceModel преобразует DTO создания в доменную модель
func DTOToPlaceModel(dto CreatePlaceRequest) *models.Place {
	return &models.Place{
		Latitude:  optional(dto.Latitude),
		Longitude: optional(dto.Longitude),
		AddressID: dto.AddressID,
	}
}

// DTOToAddressModel преобразует DTO создания в доменную модель
func DTOToAddressModel(dto CreateAddressRequest) *models.Address {
	return &models.Address{
		Title:         dto.Title,
		Name:          optional(dto.Name),
		StreetAddress: optional(dto.StreetAddress),
		Locality:      optional(dto.Locality),
		Region:        optional(dto.Region),
		PostalCode:    optional(dto.PostalCode),
		Country:       optional(dto.Country),
	}
}

func dtoToPhotoModels(photos []PhotoRequest) []*models.Photo {
	result := make([]*models.Photo, 0, len(photos))
	for _, photo := range photos {
		result = append(result, &models.Photo{Alt: photo.Alt, URL: photo.URL})
	}
	return result
}
