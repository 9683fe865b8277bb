// Package user implements the account lifecycle: signup with email
// verification, login, password reset and profile management.
package user

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/example/foodcourt/pkg/imagestore"
	"github.com/example/foodcourt/pkg/mailer"
	"github.com/example/foodcourt/pkg/models"
	"github.com/example/foodcourt/pkg/repository"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("user already exists for this email")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidCode        = errors.New("invalid or expired verification code")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrUserNotFound       = errors.New("user not found")
)

const (
	verificationTTL = 24 * time.Hour
	resetTokenTTL   = time.Hour
)

// Store is the slice of the user repository this service needs.
type Store interface {
	InsertUser(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByVerificationCode(ctx context.Context, code string) (*models.User, error)
	FindUserByResetToken(ctx context.Context, token string) (*models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, set bson.M) error
	MarkUserVerified(ctx context.Context, id primitive.ObjectID) error
	ResetUserPassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error
	UpdateUserLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
}

type Service struct {
	store       Store
	mail        mailer.Sender
	images      imagestore.Uploader
	frontendURL string
	logger      *zap.Logger
}

func NewService(store Store, mail mailer.Sender, images imagestore.Uploader, frontendURL string, logger *zap.Logger) *Service {
	return &Service{
		store:       store,
		mail:        mail,
		images:      images,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Contact  string
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if _, err := s.store.FindUserByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:               in.Name,
		Email:              in.Email,
		HashedPassword:     string(hashed),
		Contact:            in.Contact,
		VerificationCode:   generateVerificationCode(),
		VerificationExpiry: time.Now().Add(verificationTTL),
	}
	if err := s.store.InsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.sendAsync(user.Email, func() (string, string) {
		return mailer.VerificationEmail(user.VerificationCode)
	})
	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.LastLogin = time.Now()
	if err := s.store.UpdateUserLastLogin(ctx, user.ID, user.LastLogin); err != nil {
		s.logger.Warn("failed to record last login", zap.String("user_id", user.ID.Hex()), zap.Error(err))
	}
	return user, nil
}

// VerifyEmail consumes an unexpired verification code; the code is single-use.
func (s *Service) VerifyEmail(ctx context.Context, code string) (*models.User, error) {
	user, err := s.store.FindUserByVerificationCode(ctx, code)
	if err != nil {
		return nil, ErrInvalidCode
	}
	if err := s.store.MarkUserVerified(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("mark user verified: %w", err)
	}
	user.IsVerified = true

	s.sendAsync(user.Email, func() (string, string) {
		return mailer.WelcomeEmail(user.Name)
	})
	return user, nil
}

func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return ErrUserNotFound
	}

	token := uuid.NewString()
	err = s.store.UpdateUser(ctx, user.ID, bson.M{
		"resetToken":       token,
		"resetTokenExpiry": time.Now().Add(resetTokenTTL),
	})
	if err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/resetpassword/%s", s.frontendURL, token)
	s.sendAsync(user.Email, func() (string, string) {
		return mailer.PasswordResetEmail(resetURL)
	})
	return nil
}

// ResetPassword consumes an unexpired reset token; the token is single-use.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.store.FindUserByResetToken(ctx, token)
	if err != nil {
		return ErrInvalidResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.store.ResetUserPassword(ctx, user.ID, string(hashed)); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	s.sendAsync(user.Email, func() (string, string) {
		return mailer.PasswordResetSuccessEmail()
	})
	return nil
}

func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.store.FindUserByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

type ProfileUpdate struct {
	Name           string
	Email          string
	Address        string
	City           string
	Country        string
	ProfilePicture []byte
}

func (s *Service) UpdateProfile(ctx context.Context, id primitive.ObjectID, in ProfileUpdate) (*models.User, error) {
	set := bson.M{
		"name":    in.Name,
		"email":   in.Email,
		"address": in.Address,
		"city":    in.City,
		"country": in.Country,
	}
	if len(in.ProfilePicture) > 0 {
		url, err := s.images.Upload(ctx, in.ProfilePicture)
		if err != nil {
			return nil, fmt.Errorf("upload profile picture: %w", err)
		}
		set["profilePicture"] = url
	}

	if err := s.store.UpdateUser(ctx, id, set); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.store.FindUserByID(ctx, id)
}

// sendAsync fires a mail without blocking the request; failures are logged.
func (s *Service) sendAsync(recipient string, build func() (subject, html string)) {
	subject, html := build()
	go func() {
		if err := s.mail.Send(recipient, subject, html); err != nil {
			s.logger.Error("failed to send email",
				zap.String("recipient", recipient),
				zap.String("subject", subject),
				zap.Error(err))
		}
	}()
}

// generateVerificationCode returns a 6-digit numeric code.
func generateVerificationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}
