// Package export builds the external calendar artifacts for a single event:
// a Google Calendar deep link and a standalone iCal document.
package export

import (
	"fmt"
	"strings"
	"time"

	"companycal/internal/models"
)

const googleCalendarBase = "https://calendar.google.com/calendar/render"

// compact ISO form used by both the Google link and the iCal fields.
func compactUTC(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// GoogleCalendarURL builds the render?action=TEMPLATE deep link for the
// event. Parameters with empty values are omitted entirely. Values are
// joined as-is, without percent-encoding; titles or locations containing
// '&' or '=' will produce a broken link. Known gap, kept for parity with
// the published contract.
func GoogleCalendarURL(event *models.Event) string {
	details := event.Description
	if event.Location != "" {
		details = fmt.Sprintf("%s - Location: %s", event.Description, event.Location)
	}

	params := []struct {
		key   string
		value string
	}{
		{"action", "TEMPLATE"},
		{"text", event.Title},
		{"dates", compactUTC(event.StartDate) + "/" + compactUTC(event.EndDate)},
		{"details", details},
		{"location", event.Location},
	}

	var parts []string
	for _, p := range params {
		if p.value == "" {
			continue
		}
		parts = append(parts, p.key+"="+p.value)
	}

	return googleCalendarBase + "?" + strings.Join(parts, "&")
}

// ICalDocument renders the event as a single-VEVENT calendar. The stamp is
// passed in so the output is reproducible. Text fields are emitted verbatim:
// commas, semicolons and newlines are not escaped per RFC 5545. Known
// limitation, kept as-is.
func ICalDocument(event *models.Event, stamp time.Time) string {
	return fmt.Sprintf(`BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Company Calendar//EN
BEGIN:VEVENT
UID:%s@companycalendar
DTSTAMP:%s
DTSTART:%s
DTEND:%s
SUMMARY:%s
DESCRIPTION:%s
LOCATION:%s
END:VEVENT
END:VCALENDAR`,
		event.ID,
		compactUTC(stamp),
		compactUTC(event.StartDate),
		compactUTC(event.EndDate),
		event.Title,
		event.Description,
		event.Location,
	)
}

// ICalFilename is the suggested download name for the event's .ics file.
func ICalFilename(event *models.Event) string {
	return fmt.Sprintf("event_%s.ics", event.ID)
}
