package service

import (
	"errors"

	"go-warrior-store/internal/model"
	"go-warrior-store/internal/repository"
	"go-warrior-store/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
)

type AuthService interface {
	Register(email, password, displayName string) (*LoginResponse, error)
	Login(email, password string) (*LoginResponse, error)
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(email, password, displayName string) (*LoginResponse, error) {
	if existing, _ := s.userRepo.FindByEmail(email); existing != nil {
		return nil, ErrEmailTaken
	}

	user := &model.User{
		Email:       email,
		DisplayName: displayName,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *authService) issueToken(user *model.User) (*LoginResponse, error) {
	token, err := jwt.GenerateToken(user.ID, user.Email, user.DisplayName)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}
