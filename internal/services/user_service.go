package services

import (
	"fmt"

	"admindash_backend/internal/logger"
	"admindash_backend/internal/models"
	"admindash_backend/internal/repositories"
	"admindash_backend/internal/services/dto"
	"admindash_backend/pkg/apperrors"
)

type UserService interface {
	List(p dto.ListUsersParams) ([]models.User, error)
	Get(id string) (*models.User, error)
	UpdateStatus(id string, req *dto.UpdateUserStatusRequest) (*models.User, error)
	BulkUpdateStatus(req *dto.BulkUpdateUsersRequest) (int64, error)
	Stats() (*repositories.UserStats, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	activity ActivityLogService
}

func NewUserService(userRepo repositories.UserRepository, activity ActivityLogService) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		activity: activity,
	}
}

func (s *UserServiceImpl) List(p dto.ListUsersParams) ([]models.User, error) {
	f := repositories.UserFilter{
		Cursor: p.Cursor,
		Limit:  pageLimit(p.Limit),
	}
	// Invalid enum filters are dropped, not rejected.
	if st := models.UserStatus(p.Status); p.Status != "" && st.IsValid() {
		f.Status = st
	}
	if role := models.UserRole(p.Role); p.Role != "" && role.IsValid() {
		f.Role = role
	}

	users, err := s.userRepo.List(f)
	if err != nil {
		return nil, apperrors.DatabaseError("users", err)
	}
	return users, nil
}

func (s *UserServiceImpl) Get(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("users", "User not found")
		}
		return nil, apperrors.DatabaseError("users", err)
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateStatus(id string, req *dto.UpdateUserStatusRequest) (*models.User, error) {
	status := models.UserStatus(req.Status)

	user, err := s.userRepo.UpdateStatus(id, status)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("users", "User not found")
		}
		return nil, apperrors.DatabaseError("users", err)
	}

	// Audit is best-effort: the status update already committed.
	if err := s.activity.Record(
		models.ActorTypeAdmin,
		fmt.Sprintf("Updated user status to %s", status),
		models.EntityTypeUser,
		&user.ID,
		nil,
		map[string]interface{}{"status": status},
	); err != nil {
		logger.Error("failed to write audit log for user update", "user_id", id, "error", err)
	}

	return user, nil
}

func (s *UserServiceImpl) BulkUpdateStatus(req *dto.BulkUpdateUsersRequest) (int64, error) {
	status := models.UserStatus(req.Status)

	count, err := s.userRepo.BulkUpdateStatus(req.UserIDs, status)
	if err != nil {
		return 0, apperrors.DatabaseError("users", err)
	}

	if err := s.activity.Record(
		models.ActorTypeAdmin,
		fmt.Sprintf("Bulk updated %d users to status %s", count, status),
		models.EntityTypeUser,
		nil,
		nil,
		map[string]interface{}{"userIds": req.UserIDs, "status": status, "count": count},
	); err != nil {
		logger.Error("failed to write audit log for bulk user update", "count", count, "error", err)
	}

	return count, nil
}

func (s *UserServiceImpl) Stats() (*repositories.UserStats, error) {
	stats, err := s.userRepo.Stats()
	if err != nil {
		return nil, apperrors.DatabaseError("users", err)
	}
	return stats, nil
}
