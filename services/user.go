// user.go - User CRUD with ownership checks

package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vehicle-rental-backend/apperrors"
	"vehicle-rental-backend/models"
	"vehicle-rental-backend/token"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns every user. The password hash never serializes, so no
// stripping is needed here.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, apperrors.FromDB(err, "User not found.")
	}
	return &user, nil
}

// UpdateUserInput carries the optional fields of a partial update.
// Nil means "leave as is".
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Phone    *string
	Role     *string
}

// Update merges the provided fields over the existing row and persists
// the full record. Customers may only update themselves; admins may
// update anyone.
func (s *UserService) Update(ctx context.Context, id uint, in UpdateUserInput, requester *token.Claims) (*models.User, error) {
	if requester.Role == models.RoleCustomer && requester.UserID != id {
		return nil, apperrors.Forbidden("You are not authorized to update this user.")
	}

	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		if *in.Email != strings.ToLower(*in.Email) {
			return nil, apperrors.Validation("Email must be lowercase only.")
		}
		user.Email = *in.Email
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLength {
			return nil, apperrors.Validation("Password must be at least 6 characters.")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		user.Password = string(hash)
	}

	if !models.ValidRole(user.Role) {
		return nil, apperrors.Validation("Role must be 'admin' or 'customer'.")
	}

	// Full-row overwrite; the unique email index rejects duplicates.
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Email already exists. Please use a different email.")
		}
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

// Delete removes the user; the foreign key cascades their bookings.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return apperrors.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("User not found.")
	}
	return nil
}
