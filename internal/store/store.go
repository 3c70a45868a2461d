package store

import (
	"time"

	"companycal/internal/models"

	"gorm.io/gorm"
)

// Store exposes the repository functions the handlers are allowed to use.
// Foreign-key "on delete" behavior lives here, not in database constraints:
// deleting a category nulls out its events, deleting a user removes theirs.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindEvent(eventID string) (*models.Event, error) {
	var event models.Event
	if err := s.db.Preload("Category").Preload("User.Role").Where("id = ?", eventID).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *Store) ListEvents() ([]models.Event, error) {
	var events []models.Event
	err := s.db.Preload("Category").Order("start_date ASC").Find(&events).Error
	return events, err
}

// ListEventsInRange returns events fully contained in [start, end]:
// start_date >= start AND end_date <= end. Events that only partially
// overlap the range are excluded.
func (s *Store) ListEventsInRange(start, end time.Time) ([]models.Event, error) {
	var events []models.Event
	err := s.db.Preload("Category").
		Where("start_date >= ? AND end_date <= ?", start, end).
		Order("start_date ASC").
		Find(&events).Error
	return events, err
}

func (s *Store) ListFutureEvents(now time.Time) ([]models.Event, error) {
	var events []models.Event
	err := s.db.Preload("Category").
		Where("start_date >= ?", now).
		Order("start_date ASC").
		Find(&events).Error
	return events, err
}

func (s *Store) ListPastEvents(now time.Time) ([]models.Event, error) {
	var events []models.Event
	err := s.db.Preload("Category").
		Where("start_date < ?", now).
		Order("start_date ASC").
		Find(&events).Error
	return events, err
}

func (s *Store) SaveEvent(event *models.Event) error {
	return s.db.Save(event).Error
}

func (s *Store) DeleteEvent(eventID string) error {
	result := s.db.Where("id = ?", eventID).Delete(&models.Event{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store) FindCategory(categoryID string) (*models.EventCategory, error) {
	var category models.EventCategory
	if err := s.db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *Store) ListCategories() ([]models.EventCategory, error) {
	var categories []models.EventCategory
	err := s.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (s *Store) SaveCategory(category *models.EventCategory) error {
	return s.db.Save(category).Error
}

// DeleteCategory removes the category and nulls out the reference on any
// event that used it. Events themselves are never deleted here.
func (s *Store) DeleteCategory(categoryID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var category models.EventCategory
		if err := tx.Where("id = ?", categoryID).First(&category).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Event{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}

func (s *Store) FindUser(userID string) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Role").Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) SaveUser(user *models.User) error {
	return s.db.Save(user).Error
}

// DeleteUser removes the user and cascades to every event they created.
func (s *Store) DeleteUser(userID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Event{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

func (s *Store) FindRole(name string) (*models.Role, error) {
	var role models.Role
	if err := s.db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
