// Package feed adapts stored events into the JSON payload the calendar
// grid consumes.
package feed

import (
	"fmt"
	"strings"
	"time"

	"companycal/internal/export"
	"companycal/internal/models"
	"companycal/internal/store"
)

const (
	uncategorizedName  = "Uncategorized"
	uncategorizedColor = "#6c757d"
)

// Descriptor is the display-ready projection of an event.
type Descriptor struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Start             string        `json:"start"`
	End               string        `json:"end"`
	Description       string        `json:"description"`
	Category          string        `json:"category"`
	Color             string        `json:"color"`
	Location          string        `json:"location"`
	URL               string        `json:"url"`
	GoogleCalendarURL string        `json:"google_calendar_url"`
	Display           string        `json:"display"`
	AllDay            bool          `json:"allDay"`
	ExtendedProps     ExtendedProps `json:"extendedProps"`
}

type ExtendedProps struct {
	IsSingleDay bool `json:"isSingleDay"`
}

type Adapter struct {
	store *store.Store
}

func NewAdapter(s *store.Store) *Adapter {
	return &Adapter{store: s}
}

// ListEvents returns descriptors for the events in [rangeStart, rangeEnd].
// The filter requires full containment (start_date >= rangeStart AND
// end_date <= rangeEnd), so an event that only partially overlaps the
// range is dropped. TODO(product): decide whether the grid should use a
// true overlap test instead.
// If either bound is nil, every stored event is returned, ascending by
// start date.
func (a *Adapter) ListEvents(rangeStart, rangeEnd *time.Time) ([]Descriptor, error) {
	var (
		events []models.Event
		err    error
	)
	if rangeStart != nil && rangeEnd != nil {
		events, err = a.store.ListEventsInRange(*rangeStart, *rangeEnd)
	} else {
		events, err = a.store.ListEvents()
	}
	if err != nil {
		return nil, err
	}

	descriptors := make([]Descriptor, 0, len(events))
	for i := range events {
		descriptors = append(descriptors, Describe(&events[i]))
	}
	return descriptors, nil
}

// Describe projects a single event into its descriptor.
func Describe(event *models.Event) Descriptor {
	categoryName := uncategorizedName
	color := uncategorizedColor
	if event.Category != nil {
		categoryName = event.Category.Name
		color = event.Category.Color
	}

	return Descriptor{
		ID:                event.ID.String(),
		Title:             DisplayTitle(event),
		Start:             event.StartDate.Format(time.RFC3339),
		End:               event.EndDate.Format(time.RFC3339),
		Description:       event.Description,
		Category:          categoryName,
		Color:             color,
		Location:          event.Location,
		URL:               fmt.Sprintf("/edit/%s/", event.ID),
		GoogleCalendarURL: export.GoogleCalendarURL(event),
		Display:           "block",
		AllDay:            false,
		ExtendedProps:     ExtendedProps{IsSingleDay: event.IsSingleDay()},
	}
}

// DisplayTitle appends a "(HH:MM-HH:MM)" suffix for events that start and
// end on the same calendar day. Multi-day events keep their stored title;
// the grid disambiguates those by position.
func DisplayTitle(event *models.Event) string {
	if !event.IsSingleDay() {
		return event.Title
	}
	return fmt.Sprintf("%s (%s-%s)",
		event.Title,
		event.StartDate.Format("15:04"),
		event.EndDate.Format("15:04"),
	)
}

// ParseRangeBound parses a feed range bound. A trailing literal "Z" is
// rewritten to an explicit zero offset before parsing.
func ParseRangeBound(value string) (time.Time, error) {
	if strings.HasSuffix(value, "Z") {
		value = strings.TrimSuffix(value, "Z") + "+00:00"
	}
	return time.Parse(time.RFC3339, value)
}
