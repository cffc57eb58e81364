package v1

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_directory/internal/models"
	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{
	"ID", "UUID", "Title", "Created", "Incident time",
	"Description", "Reporter", "Persons", "Place", "Photos",
}

// @Summary Export incidents to Excel
// @Description Download the full incident list as an xlsx report. Requires API key.
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Success 200 {file} file "Excel report"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/incidents/export [get]
func (h *Handler) exportIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "exportIncidents")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	f, err := buildIncidentsWorkbook(incidents)
	if err != nil {
		log.WithError(err).Error("Failed to build incidents workbook")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("incidents-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		log.WithError(err).Error("Failed to write incidents workbook")
	}
}

// buildIncidentsWorkbook строит xlsx-отчет по списку происшествий
func buildIncidentsWorkbook(incidents []*models.Incident) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheetName = "Incidents"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to style header cell: %w", err)
		}
	}

	for i, incident := range incidents {
		row := []any{
			incident.ID,
			incident.UUID.String(),
			incident.Title,
			incident.CreatedAt.Format("2006-01-02 15:04"),
			derefOrEmpty(incident.IncidentTime),
			derefOrEmpty(incident.Description),
			exportPersonName(incident.Reporter),
			exportPersons(incident.Persons),
			exportPlace(incident.Place),
			len(incident.Photos),
		}
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell value: %w", err)
			}
		}
	}

	return f, nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func exportPersonName(person *models.Person) string {
	if person == nil {
		return ""
	}
	return strings.TrimSpace(derefOrEmpty(person.GivenName) + " " + derefOrEmpty(person.FamilyName))
}

func exportPersons(persons []*models.Person) string {
	names := make([]string, 0, len(persons))
	for _, person := range persons {
		if name := exportPersonName(person); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

func exportPlace(place *models.Place) string {
	if place == nil {
		return ""
	}
	return strings.TrimSpace(derefOrEmpty(place.Latitude) + " " + derefOrEmpty(place.Longitude))
}
