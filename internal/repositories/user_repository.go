package repositories

import (
	"errors"

	"admindash_backend/internal/models"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// UserFilter holds pre-validated filter values. Empty fields mean
// "no filter"; the service layer drops invalid enum values before
// building this struct.
type UserFilter struct {
	Status models.UserStatus
	Role   models.UserRole
	Cursor string
	Limit  int
}

type UserStats struct {
	Active    int64 `json:"active"`
	Suspended int64 `json:"suspended"`
	Admins    int64 `json:"admins"`
	Users     int64 `json:"users"`
}

type UserRepository interface {
	List(f UserFilter) ([]models.User, error)
	FindByID(id string) (*models.User, error)
	UpdateStatus(id string, status models.UserStatus) (*models.User, error)
	BulkUpdateStatus(ids []string, status models.UserStatus) (int64, error)
	Stats() (*UserStats, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

// List pages users newest-first. The cursor is the id of the last row the
// caller saw; results resume strictly after it.
func (r *UserRepositoryImpl) List(f UserFilter) ([]models.User, error) {
	query := r.db.Model(&models.User{})

	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Role != "" {
		query = query.Where("role = ?", f.Role)
	}

	if f.Cursor != "" {
		var cursorRow models.User
		err := r.db.Select("id", "created_at").First(&cursorRow, "id = ?", f.Cursor).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Unknown cursor: the caller walked off the end.
				return []models.User{}, nil
			}
			return nil, err
		}
		query = query.Where(
			"created_at < ? OR (created_at = ? AND id < ?)",
			cursorRow.CreatedAt, cursorRow.CreatedAt, cursorRow.ID,
		)
	}

	var users []models.User
	err := query.Order("created_at DESC, id DESC").Limit(f.Limit).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) UpdateStatus(id string, status models.UserStatus) (*models.User, error) {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return r.FindByID(id)
}

// BulkUpdateStatus runs one set-based UPDATE; ids that don't exist are
// skipped and only the affected count is reported.
func (r *UserRepositoryImpl) BulkUpdateStatus(ids []string, status models.UserStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.User{}).Where("id IN ?", ids).Update("status", status)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *UserRepositoryImpl) Stats() (*UserStats, error) {
	stats := &UserStats{}

	counts := []struct {
		dest  *int64
		field string
		value interface{}
	}{
		{&stats.Active, "status", models.UserStatusActive},
		{&stats.Suspended, "status", models.UserStatusSuspended},
		{&stats.Admins, "role", models.UserRoleAdmin},
		{&stats.Users, "role", models.UserRoleUser},
	}
	for _, c := range counts {
		err := r.db.Model(&models.User{}).Where(c.field+" = ?", c.value).Count(c.dest).Error
		if err != nil {
			return nil, err
		}
	}

	return stats, nil
}
