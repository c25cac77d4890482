package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vai-sys/DigitalDinner/entity"
	"github.com/vai-sys/DigitalDinner/repository"
	"github.com/vai-sys/DigitalDinner/utils"
)

type AuthService struct {
	Users  *repository.UserRepository
	Secret string
	TTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, Secret: secret, TTL: ttl}
}

type RegisterIn struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=6"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,min=7"`
}

type LoginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthOut struct {
	Token string
	User  *entity.User
}

func (s *AuthService) Register(in *RegisterIn) (*AuthOut, error) {
	email := strings.ToLower(in.Email)

	taken, err := s.Users.ExistsByEmailOrPhone(email, in.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateUser
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:        in.Name,
		Email:       email,
		Password:    string(hashed),
		PhoneNumber: in.PhoneNumber,
		Role:        "customer",
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.Secret, s.TTL)
	if err != nil {
		return nil, err
	}
	return &AuthOut{Token: token, User: user}, nil
}

func (s *AuthService) Login(in *LoginIn) (*AuthOut, error) {
	user, err := s.Users.FindByEmail(strings.ToLower(in.Email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.Secret, s.TTL)
	if err != nil {
		return nil, err
	}
	return &AuthOut{Token: token, User: user}, nil
}

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	user, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
