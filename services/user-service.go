package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"effica-project/backend/collab-service/apperrors"
	"effica-project/backend/collab-service/logging"
	"effica-project/backend/collab-service/models"
	"effica-project/backend/collab-service/repositories"
	"effica-project/backend/collab-service/utils"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

type UserService struct {
	Users      repositories.UserStore
	BcryptCost int
}

func NewUserService(users repositories.UserStore, bcryptCost int) *UserService {
	return &UserService{Users: users, BcryptCost: bcryptCost}
}

// Register validates the input, stores a new user with a hashed password and
// a normalized email, and issues a token for the fresh identity. Validation
// failures are reported in order: missing fields, email format, password
// length.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", &apperrors.ValidationError{
			Message:  "Missing required fields",
			Required: []string{"name", "email", "password"},
		}
	}
	if !emailRegex.MatchString(email) {
		return nil, "", apperrors.NewValidation("Invalid email format")
	}
	if len(password) < minPasswordLength {
		return nil, "", apperrors.NewValidation(fmt.Sprintf("Password must be at least %d characters long", minPasswordLength))
	}

	normalizedEmail := NormalizeEmail(email)

	existing, err := s.Users.FindByEmail(ctx, normalizedEmail)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up existing user: %w", err)
	}
	if existing != nil {
		return nil, "", apperrors.ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(password, s.BcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(name),
		Email:    normalizedEmail,
		Password: hashedPassword,
	}
	if err := s.Users.Insert(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	logging.Logger.Infof("Event ID: USER_REGISTERED, Description: Registered new user %s", user.ID.Hex())
	return user, token, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password both yield ErrInvalidCredentials so the response cannot be used to
// enumerate registered emails.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.Users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !utils.CheckPassword(user.Password, password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// NormalizeEmail lower-cases and trims an email so lookups and storage agree
// on one canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
