// auth.go - Registration and login business rules

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vehicle-rental-backend/apperrors"
	"vehicle-rental-backend/models"
	"vehicle-rental-backend/token"
)

// bcryptCost is the hashing cost for stored passwords.
const bcryptCost = 12

const minPasswordLength = 6

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(db *gorm.DB, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string // Optional, defaults to customer
}

// Register validates the payload, hashes the password and persists the
// user. The unique index on email is the authority on duplicates; a
// constraint violation comes back as a Conflict error.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Name == "" {
		return nil, apperrors.Validation("Name is required.")
	}
	if in.Email == "" || in.Email != strings.ToLower(in.Email) {
		return nil, apperrors.Validation("Email must contain only lowercase characters.")
	}
	if len(in.Password) < minPasswordLength {
		return nil, apperrors.Validation("Password must be at least 6 characters.")
	}
	if in.Role == "" {
		in.Role = models.RoleCustomer
	}
	if !models.ValidRole(in.Role) {
		return nil, apperrors.Validation("Role must be 'admin' or 'customer'.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Phone:    in.Phone,
		Role:     in.Role,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("User already exists with this email.")
		}
		return nil, apperrors.Internal(err)
	}
	return &user, nil
}

// Login checks the credentials and signs a bearer token carrying the
// user's identity. Unknown email and wrong password fail differently
// so clients can tell the two apart.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.NotFound("User does not exist in the database. Please register first.")
		}
		return "", nil, apperrors.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.Unauthorized("Password does not match. Please try again.")
	}

	signed, err := token.Generate(s.jwtSecret, &user, s.tokenTTL)
	if err != nil {
		return "", nil, apperrors.Internal(err)
	}
	return signed, &user, nil
}
