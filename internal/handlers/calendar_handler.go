package handlers

import (
	"net/http"
	"time"

	"companycal/internal/feed"
	"companycal/internal/helpers"

	"github.com/gin-gonic/gin"
)

// CalendarView serves the main calendar context: upcoming and past events,
// the category palette and the requested view type.
func CalendarView(c *gin.Context) {
	st, ok := requestStore(c)
	if !ok {
		return
	}

	now := time.Now()

	futureEvents, err := st.ListFutureEvents(now)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	pastEvents, err := st.ListPastEvents(now)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	categories, err := st.ListCategories()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving categories.")
		return
	}

	viewType := c.DefaultQuery("view", "grid")

	c.JSON(http.StatusOK, gin.H{
		"future_events": futureEvents,
		"past_events":   pastEvents,
		"categories":    categories,
		"view_type":     viewType,
		"current_month": int(now.Month()),
		"current_year":  now.Year(),
	})
}

// CalendarEventsJSON is the grid's feed endpoint. With both start and end
// present it returns only events fully contained in the range; otherwise
// it returns everything.
func CalendarEventsJSON(c *gin.Context) {
	st, ok := requestStore(c)
	if !ok {
		return
	}

	startStr := c.Query("start")
	endStr := c.Query("end")

	var rangeStart, rangeEnd *time.Time
	if startStr != "" && endStr != "" {
		start, err := feed.ParseRangeBound(startStr)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid start time format.")
			return
		}
		end, err := feed.ParseRangeBound(endStr)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid end time format.")
			return
		}
		rangeStart, rangeEnd = &start, &end
	}

	descriptors, err := feed.NewAdapter(st).ListEvents(rangeStart, rangeEnd)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, descriptors)
}
