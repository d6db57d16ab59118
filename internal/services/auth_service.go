package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, email verification, login and token
// validation.
type AuthService struct {
	userRepo   repositories.UserRepository
	mqClient   EventPublisher
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
	baseURL    string        // Public base URL used in verification links
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, mqClient EventPublisher, jwtSecret, baseURL string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		mqClient:   mqClient,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
		baseURL:    baseURL,
	}
}

// RegisterUser registers a new user, hashes their password and stores
// them inactive with a verification token. A user.registered event
// carrying the verification link goes to the mail queue; the mailer
// consumer lives out of process.
func (s *AuthService) RegisterUser(user *models.User) error {
	if existing, err := s.userRepo.GetByUsername(user.Username); err == nil && existing != nil {
		return ErrUsernameTaken
	}
	if existing, err := s.userRepo.GetByEmail(user.Email); err == nil && existing != nil {
		return ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	// Everyone starts at Bronze; tier upgrades are not self-service.
	user.Tier = models.TierBronze
	user.IsActive = false
	user.IsStaff = false
	user.VerificationToken = uuid.New().String()

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			// Lost a race with a concurrent registration; report the
			// same conflict the pre-checks would have.
			if existing, lookupErr := s.userRepo.GetByUsername(user.Username); lookupErr == nil && existing != nil {
				return ErrUsernameTaken
			}
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to register user: %w", err)
	}

	s.publishVerificationMail(user)
	return nil
}

// VerifyEmail activates the account identified by uid when the token
// matches. The token is single-use: it is cleared on success.
func (s *AuthService) VerifyEmail(uid, token string) error {
	user, err := s.userRepo.GetByID(uid)
	if err != nil {
		return err
	}
	if token == "" || user.VerificationToken == "" || user.VerificationToken != token {
		return ErrInvalidToken
	}

	user.IsActive = true
	user.VerificationToken = ""
	return s.userRepo.Update(user)
}

// LoginUser authenticates a user and returns a JWT token if successful.
// Unverified or deactivated accounts cannot log in.
func (s *AuthService) LoginUser(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		// Do not reveal whether the username exists.
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", ErrNotVerified
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"tier":     string(user.Tier),
		"is_staff": user.IsStaff,
		"exp":      time.Now().Add(s.tokenDurat).Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// publishVerificationMail emits the user.registered event with the
// verification link. Failure to publish never fails registration.
func (s *AuthService) publishVerificationMail(user *models.User) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping verification mail event.")
		return
	}

	link := fmt.Sprintf("%s/api/v1/auth/verify?uid=%s&token=%s", s.baseURL, user.ID, user.VerificationToken)
	body, err := json.Marshal(map[string]interface{}{
		"event":   "user.registered",
		"user_id": user.ID,
		"email":   user.Email,
		"link":    link,
	})
	if err != nil {
		log.Printf("Failed to marshal verification mail event for user %s: %v", user.ID, err)
		return
	}
	if err := s.mqClient.Publish(rabbitmq.QueueMailEvents, body); err != nil {
		log.Printf("Warning: Failed to publish verification mail event for user %s: %v", user.ID, err)
	}
}
