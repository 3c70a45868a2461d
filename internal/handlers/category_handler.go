package handlers

import (
	"net/http"

	"companycal/internal/helpers"
	"companycal/internal/models"
	"companycal/internal/policy"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2"`
	Color       string `json:"color" binding:"omitempty,hexcolor"`
	Description string `json:"description"`
}

// ListCategories returns every category. Admin only.
func ListCategories(c *gin.Context) {
	st, ok := requestStore(c)
	if !ok {
		return
	}

	user, ok := currentUser(c, st)
	if !ok {
		return
	}

	if !policy.CanManageCategories(user) {
		redirectToCalendar(c)
		return
	}

	categories, err := st.ListCategories()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving categories.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory adds a category. Admin only. Color falls back to the
// default palette color when omitted.
func CreateCategory(c *gin.Context) {
	st, ok := requestStore(c)
	if !ok {
		return
	}

	user, ok := currentUser(c, st)
	if !ok {
		return
	}

	if !policy.CanManageCategories(user) {
		redirectToCalendar(c)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	category := models.EventCategory{
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
	}

	if err := st.SaveCategory(&category); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create category.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Category created successfully.",
		"category_id": category.ID,
	})
}

// DeleteCategory removes a category. Admin only. Events that referenced
// it are kept and become uncategorized.
func DeleteCategory(c *gin.Context) {
	st, ok := requestStore(c)
	if !ok {
		return
	}

	user, ok := currentUser(c, st)
	if !ok {
		return
	}

	if !policy.CanDeleteCategory(user) {
		redirectToCalendar(c)
		return
	}

	if err := st.DeleteCategory(c.Param("id")); err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Category not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete category.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category deleted successfully.",
	})
}
