package export

import (
	"strings"
	"testing"
	"time"

	"companycal/internal/models"

	"github.com/google/uuid"
)

func testEvent() *models.Event {
	return &models.Event{
		ID:          uuid.MustParse("00000000-0000-0000-0000-000000000007"),
		Title:       "Sync",
		Description: "weekly",
		StartDate:   time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestGoogleCalendarURLWithoutLocation(t *testing.T) {
	url := GoogleCalendarURL(testEvent())

	want := "https://calendar.google.com/calendar/render?action=TEMPLATE&text=Sync&dates=20240301T090000Z/20240301T093000Z&details=weekly"
	if url != want {
		t.Errorf("GoogleCalendarURL = %q, want %q", url, want)
	}
	if strings.Contains(url, "location=") {
		t.Errorf("URL should omit empty location param: %q", url)
	}
}

func TestGoogleCalendarURLWithLocation(t *testing.T) {
	event := testEvent()
	event.Location = "HQ Room 4"

	url := GoogleCalendarURL(event)

	if !strings.Contains(url, "details=weekly - Location: HQ Room 4") {
		t.Errorf("details should embed location: %q", url)
	}
	if !strings.Contains(url, "&location=HQ Room 4") {
		t.Errorf("location param missing: %q", url)
	}
}

func TestGoogleCalendarURLOmitsAllEmptyParams(t *testing.T) {
	event := testEvent()
	event.Description = ""

	url := GoogleCalendarURL(event)

	if strings.Contains(url, "details=") {
		t.Errorf("empty details should be omitted, not emitted as details=: %q", url)
	}
	if strings.Contains(url, "location=") {
		t.Errorf("empty location should be omitted: %q", url)
	}
}

func TestICalDocumentReproducible(t *testing.T) {
	event := testEvent()
	event.Location = "HQ"
	stamp := time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC)

	want := "BEGIN:VCALENDAR\n" +
		"VERSION:2.0\n" +
		"PRODID:-//Company Calendar//EN\n" +
		"BEGIN:VEVENT\n" +
		"UID:00000000-0000-0000-0000-000000000007@companycalendar\n" +
		"DTSTAMP:20240402T120000Z\n" +
		"DTSTART:20240301T090000Z\n" +
		"DTEND:20240301T093000Z\n" +
		"SUMMARY:Sync\n" +
		"DESCRIPTION:weekly\n" +
		"LOCATION:HQ\n" +
		"END:VEVENT\n" +
		"END:VCALENDAR"

	got := ICalDocument(event, stamp)
	if got != want {
		t.Errorf("ICalDocument mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}

	// Same inputs, same bytes.
	if again := ICalDocument(event, stamp); again != got {
		t.Error("ICalDocument is not reproducible for fixed inputs")
	}
}

func TestICalDocumentConvertsToUTC(t *testing.T) {
	event := testEvent()
	event.StartDate = time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))

	got := ICalDocument(event, time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC))
	if !strings.Contains(got, "DTSTART:20240301T090000Z") {
		t.Errorf("DTSTART should be rendered in UTC:\n%s", got)
	}
}

func TestICalFilename(t *testing.T) {
	got := ICalFilename(testEvent())
	want := "event_00000000-0000-0000-0000-000000000007.ics"
	if got != want {
		t.Errorf("ICalFilename = %q, want %q", got, want)
	}
}
