package handlers

import (
	"net/http"

	"companycal/internal/helpers"
	"companycal/internal/models"
	"companycal/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// requestStore pulls the database handle injected by DatabaseMiddleware.
func requestStore(c *gin.Context) (*store.Store, bool) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return nil, false
	}
	return store.New(db.(*gorm.DB)), true
}

// currentUser loads the acting user from the JWT claims set by
// JWTAuthMiddleware. Only valid on routes behind that middleware.
func currentUser(c *gin.Context, st *store.Store) (*models.User, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return nil, false
	}

	user, err := st.FindUser(userID.(string))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "User not found.")
		return nil, false
	}
	return user, true
}

// redirectToCalendar is the silent no-op navigation used for denied
// actions: back to the listing, no error surfaced.
func redirectToCalendar(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}
