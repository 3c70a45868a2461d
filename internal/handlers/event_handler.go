package handlers

import (
	"net/http"
	"time"

	"companycal/internal/helpers"
	"companycal/internal/models"
	"companycal/internal/policy"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// eventForm reads the shared create/edit form fields. end_date is not
// validated against start_date: zero- and negative-length events are
// allowed.
func eventForm(c *gin.Context) (*models.Event, bool) {
	title := c.PostForm("title")
	description := c.PostForm("description")

	startStr := c.PostForm("start_date")
	endStr := c.PostForm("end_date")
	startDate, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid start date format.")
		return nil, false
	}
	endDate, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid end date format.")
		return nil, false
	}

	if title == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return nil, false
	}

	event := models.Event{
		Title:       title,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
		Location:    c.PostForm("location"),
	}

	if categoryStr := c.PostForm("category"); categoryStr != "" {
		categoryID, err := uuid.Parse(categoryStr)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid category.")
			return nil, false
		}
		event.CategoryID = &categoryID
	}

	return &event, true
}

// NewEventForm returns the context for the add-event form.
func NewEventForm(c *gin.Context) {
	st, ok := requestStore(c)
	if !ok {
		return
	}

	categories, err := st.ListCategories()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving categories.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateEvent creates an event owned by the acting user.
func CreateEvent(c *gin.Context) {
	st, ok := requestStore(c)
	if !ok {
		return
	}

	user, ok := currentUser(c, st)
	if !ok {
		return
	}

	if !policy.CanCreateEvent(user) {
		redirectToCalendar(c)
		return
	}

	event, ok := eventForm(c)
	if !ok {
		return
	}

	if event.CategoryID != nil {
		if _, err := st.FindCategory(event.CategoryID.String()); err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid category.")
			return
		}
	}

	event.UserID = user.ID

	if err := st.SaveEvent(event); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Event created successfully.",
		"event_id": event.ID,
	})
}

// EditEventForm returns the event plus the category palette for the edit
// form. Creator or admin only; anyone else is bounced back to the
// calendar.
func EditEventForm(c *gin.Context) {
	st, ok := requestStore(c)
	if !ok {
		return
	}

	user, ok := currentUser(c, st)
	if !ok {
		return
	}

	event, err := st.FindEvent(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	if !policy.CanEditEvent(user, event) {
		redirectToCalendar(c)
		return
	}

	categories, err := st.ListCategories()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving categories.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event":      event,
		"categories": categories,
	})
}

// UpdateEvent applies the submitted form to an existing event. Last write
// wins; there is no conflict detection.
func UpdateEvent(c *gin.Context) {
	st, ok := requestStore(c)
	if !ok {
		return
	}

	user, ok := currentUser(c, st)
	if !ok {
		return
	}

	event, err := st.FindEvent(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	if !policy.CanEditEvent(user, event) {
		redirectToCalendar(c)
		return
	}

	form, ok := eventForm(c)
	if !ok {
		return
	}

	if form.CategoryID != nil {
		if _, err := st.FindCategory(form.CategoryID.String()); err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid category.")
			return
		}
	}

	event.Title = form.Title
	event.Description = form.Description
	event.StartDate = form.StartDate
	event.EndDate = form.EndDate
	event.CategoryID = form.CategoryID
	event.Category = nil
	event.Location = form.Location

	if err := st.SaveEvent(event); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully.",
		"event":   event,
	})
}

// DeleteEvent removes an event. Admin only; owners cannot delete their
// own events.
func DeleteEvent(c *gin.Context) {
	st, ok := requestStore(c)
	if !ok {
		return
	}

	user, ok := currentUser(c, st)
	if !ok {
		return
	}

	if !policy.CanDeleteEvent(user) {
		redirectToCalendar(c)
		return
	}

	if err := st.DeleteEvent(c.Param("id")); err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully.",
	})
}
