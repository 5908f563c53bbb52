package services

import (
	"errors"
	"fmt"
	"time"

	"paletteandfit/internal/models"
	"paletteandfit/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Identity is the caller resolved from a bearer token.
type Identity struct {
	UserID   uint
	Username string
	Role     string
}

func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// AuthService handles registration, login and session tokens.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration
	isAdmin    func(username string) bool
	events     EventPublisher
}

// NewAuthService creates a new AuthService. Usernames for which isAdmin
// reports true receive the admin role when they register; isAdmin may be nil.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, isAdmin func(username string) bool, events EventPublisher) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
		isAdmin:    isAdmin,
		events:     events,
	}
}

// RegisterUser hashes the password and stores the user with any profile fields it carries.
func (s *AuthService) RegisterUser(user *models.User) error {
	if _, err := s.userRepo.GetByUsername(user.Username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)
	user.Role = models.RoleUser
	if s.isAdmin != nil && s.isAdmin(user.Username) {
		user.Role = models.RoleAdmin
	}

	if err := s.userRepo.Create(user); err != nil {
		// Two concurrent registrations can both pass the lookup above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to register user: %w", err)
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("User registered")
	publishEvent(s.events, EventUserRegistered, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
	})
	return nil
}

// LoginUser returns a signed token. Unknown users and wrong passwords fail the same way.
func (s *AuthService) LoginUser(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			logrus.WithError(err).Error("Login lookup failed")
		}
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     role,
		"exp":      now.Add(s.tokenDurat).Unix(),
		"iat":      now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a token and returns the identity it carries.
func (s *AuthService) ValidateToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return nil, errors.New("invalid token: missing username")
	}
	// JSON numbers decode as float64.
	userID, _ := claims["user_id"].(float64)
	role, _ := claims["role"].(string)
	if role == "" {
		role = models.RoleUser
	}
	return &Identity{UserID: uint(userID), Username: username, Role: role}, nil
}
