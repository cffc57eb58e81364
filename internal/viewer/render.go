package viewer

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
)

// emptyCell - заполнитель пустых ячеек таблицы
const emptyCell = "—"

// SortByTimestamp возвращает копию списка, отсортированную по времени
// происшествия по убыванию. Сортировка устойчива: равные метки сохраняют
// исходный порядок. Порядок, заданный API (по времени создания),
// намеренно игнорируется
func SortByTimestamp(incidents []any) []any {
	sorted := make([]any, len(incidents))
	copy(sorted, incidents)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ToTimestamp(ResolveTimestamp(sorted[i])) > ToTimestamp(ResolveTimestamp(sorted[j]))
	})
	return sorted
}

// Row - строка таблицы списка происшествий
type Row struct {
	ID      string
	Date    string
	Title   string
	Persons string
	Place   string
}

// ListRows строит строки таблицы из нормализованного списка.
// Все значения идут через резолверы - прямого доступа к полям нет
func ListRows(incidents []any) []Row {
	sorted := SortByTimestamp(incidents)
	rows := make([]Row, 0, len(sorted))
	for _, incident := range sorted {
		persons := strings.Join(PersonNames(incident), ", ")
		if persons == "" {
			persons = emptyCell
		}
		place := PlaceCoords(incident)
		if place == "" {
			place = emptyCell
		}
		rows = append(rows, Row{
			ID:      ResolveID(incident),
			Date:    FormatDateTime(ResolveTimestamp(incident)),
			Title:   ResolveTitle(incident),
			Persons: persons,
			Place:   place,
		})
	}
	return rows
}

// RenderList печатает таблицу происшествий
func RenderList(w io.Writer, incidents []any) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTITLE\tPERSONS\tPLACE")
	for _, row := range ListRows(incidents) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Date, row.Title, row.Persons, row.Place)
	}
	return tw.Flush()
}

// FindByID находит происшествие по ключу маршрута
func FindByID(incidents []any, id string) (any, bool) {
	if id == "" {
		return nil, false
	}
	for _, incident := range incidents {
		if ResolveID(incident) == id {
			return incident, true
		}
	}
	return nil, false
}

// RenderDetail печатает карточку одного происшествия
// или "Incident not found.", если совпадения нет
func RenderDetail(w io.Writer, incidents []any, id string) {
	incident, ok := FindByID(incidents, id)
	if !ok {
		fmt.Fprintln(w, "Incident not found.")
		return
	}

	fmt.Fprintln(w, ResolveTitle(incident))
	if ts := FormatDateTime(ResolveTimestamp(incident)); ts != "" {
		fmt.Fprintln(w, ts)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, Description(incident))

	if place := PlaceCoords(incident); place != "" {
		fmt.Fprintf(w, "Place: %s\n", place)
	}
	if names := PersonNames(incident); len(names) > 0 {
		fmt.Fprintf(w, "Persons: %s\n", strings.Join(names, ", "))
	}
	if photos, ok := fieldOf(incident, "photos").([]any); ok && len(photos) > 0 {
		fmt.Fprintln(w, "Photos:")
		for _, photo := range photos {
			alt := FormatValue(fieldOf(photo, "alt"))
			if alt == "" {
				alt = "Photo"
			}
			fmt.Fprintf(w, "  %s: %s\n", alt, FormatValue(fieldOf(photo, "url")))
		}
	}
}
