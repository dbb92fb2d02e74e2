package service

import (
	"errors"

	"go-inventory-tracker/internal/apperr"
	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/internal/repository"
	"go-inventory-tracker/pkg/jwt"

	"gorm.io/gorm"
)

// UserPayload is the identity shape embedded in login responses and
// bearer tokens.
type UserPayload struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserPayload `json:"user"`
}

type AuthService interface {
	Register(username, password string) (*model.User, error)
	Login(username, password string) (*LoginResponse, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *jwt.Manager
}

func NewAuthService(users repository.UserRepository, tokens *jwt.Manager) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Register creates an account. The very first account is promoted to
// admin; the role is a function of the current user count, never a
// request parameter.
func (s *authService) Register(username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, apperr.New(apperr.Validation, "Username and password are required")
	}

	count, err := s.users.Count()
	if err != nil {
		return nil, err
	}

	role := model.RoleStaff
	if count == 0 {
		role = model.RoleAdmin
	}

	user := &model.User{Username: username, Role: role}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	if err := s.users.Create(user); err != nil {
		return nil, translateDuplicate(err, "Username already taken")
	}

	return user, nil
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	if username == "" || password == "" {
		return nil, apperr.New(apperr.Validation, "Username and password are required")
	}

	// An unknown username and a wrong password are indistinguishable to
	// the caller: both are a 400 with the same message.
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.Validation, "Invalid credentials")
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, apperr.New(apperr.Validation, "Invalid credentials")
	}

	token, err := s.tokens.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    UserPayload{ID: user.ID, Username: user.Username, Role: user.Role},
	}, nil
}
