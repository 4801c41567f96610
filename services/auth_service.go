package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"github.com/Eduardo-pena2000/parmesana-web-app/repository"
	"github.com/Eduardo-pena2000/parmesana-web-app/utils"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials  = errors.New("credenciales inválidas")
	ErrAccountDisabled     = errors.New("cuenta desactivada")
	ErrPhoneTaken          = errors.New("ya existe un usuario con este número de teléfono")
	ErrEmailTaken          = errors.New("ya existe un usuario con este email")
	ErrInvalidRefreshToken = errors.New("refresh token inválido")
)

var phoneJunk = regexp.MustCompile(`[\s\-\(\)]`)

type AuthService struct {
	userRepo *repository.UserRepository

	jwtSecret        string
	jwtTTL           time.Duration
	jwtRefreshSecret string
	jwtRefreshTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration, refreshSecret string, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:         repo,
		jwtSecret:        secret,
		jwtTTL:           ttl,
		jwtRefreshSecret: refreshSecret,
		jwtRefreshTTL:    refreshTTL,
	}
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Register creates a customer account keyed by phone; email is optional.
func (s *AuthService) Register(phone, email, password, firstName, lastName string) (*entity.User, *TokenPair, error) {
	phone = phoneJunk.ReplaceAllString(phone, "")
	email = strings.ToLower(strings.TrimSpace(email))

	if n, err := s.userRepo.CountByPhone(phone); err != nil {
		return nil, nil, err
	} else if n > 0 {
		return nil, nil, ErrPhoneTaken
	}

	var emailPtr *string
	if email != "" {
		if n, err := s.userRepo.CountByEmail(email); err != nil {
			return nil, nil, err
		} else if n > 0 {
			return nil, nil, ErrEmailTaken
		}
		emailPtr = &email
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Phone:     phone,
		Email:     emailPtr,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Role:      "customer",
		IsActive:  true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, nil, err
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Login accepts phone or email plus password.
func (s *AuthService) Login(phone, email, password string) (*entity.User, *TokenPair, error) {
	var user *entity.User
	var err error
	switch {
	case phone != "":
		user, err = s.userRepo.FindByPhone(phoneJunk.ReplaceAllString(phone, ""))
	case email != "":
		user, err = s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	default:
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !user.IsActive {
		return nil, nil, ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	_ = s.userRepo.Update(user.ID, map[string]any{"last_login": &now})

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*TokenPair, error) {
	access, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, errors.New("cannot generate token")
	}
	refresh, err := utils.GenerateRefreshToken(user.ID, s.jwtRefreshSecret, s.jwtRefreshTTL)
	if err != nil {
		return nil, errors.New("cannot generate token")
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh redeems a refresh token for a fresh pair. Only tokens signed with
// the refresh secret and carrying sub=refresh are accepted, so an access
// token can never be replayed here.
func (s *AuthService) Refresh(refreshToken string) (*entity.User, *TokenPair, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(s.jwtRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, nil, ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil, ErrInvalidRefreshToken
	}
	if sub, _ := claims.GetSubject(); sub != "refresh" {
		return nil, nil, ErrInvalidRefreshToken
	}
	uid, ok := claims["userId"].(float64)
	if !ok || uid <= 0 {
		return nil, nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(uint(uid))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidRefreshToken
		}
		return nil, nil, err
	}
	if !user.IsActive {
		return nil, nil, ErrAccountDisabled
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}
