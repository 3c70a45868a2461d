package handlers

import (
	"fmt"
	"net/http"
	"time"

	"companycal/internal/export"
	"companycal/internal/helpers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExportEventICal serves one event as a downloadable .ics file.
func ExportEventICal(c *gin.Context) {
	st, ok := requestStore(c)
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

	document := export.ICalDocument(event, time.Now().UTC())

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.ICalFilename(event)))
	c.Data(http.StatusOK, "text/calendar", []byte(document))
}
