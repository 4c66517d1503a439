// Package application orchestrates the account lifecycle use cases:
// Create, Login, Update, Delete. Each is a fixed pipeline of
// validate -> repository read -> hash/issue -> repository write, and every
// failure surfaces as a catalog error.
package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pommyhq/accounts-api/internal/domain/entity"
	repo "github.com/pommyhq/accounts-api/internal/domain/repository"
	"github.com/pommyhq/accounts-api/internal/domain/validation"
	"github.com/pommyhq/accounts-api/pkg/apperr"
	"github.com/pommyhq/accounts-api/pkg/helpers"
	"github.com/pommyhq/accounts-api/pkg/mailer"
)

// EmailEnqueuer is the outbound mail collaborator. Delivery is best-effort
// and never awaited for correctness.
type EmailEnqueuer interface {
	PublishJSON(ctx context.Context, body any) error
}

type Service struct {
	Repo   repo.UserRepository
	Tokens *helpers.TokenManager
	Mail   EmailEnqueuer
	Logger *logrus.Logger

	// LoginDelay equalizes the "no such user" and "wrong password" paths.
	LoginDelay time.Duration
}

func NewService(r repo.UserRepository, tokens *helpers.TokenManager, mail EmailEnqueuer, logger *logrus.Logger, loginDelay time.Duration) *Service {
	return &Service{
		Repo:       r,
		Tokens:     tokens,
		Mail:       mail,
		Logger:     logger,
		LoginDelay: loginDelay,
	}
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UserDTO is the response shape every user-returning operation hands back.
type UserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toDTO(u *entity.User) *UserDTO {
	return &UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create registers a new account. The pre-existence check is a fast path for
// a better error; the unique index on users.email is the authoritative
// guarantee, and a duplicate-key failure from Save lands on the same
// USER_ALREADY_EXISTS outcome.
func (s *Service) Create(ctx context.Context, in CreateUserInput) (*UserDTO, error) {
	if err := validation.ValidateName(in.Name); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	email := normalizeEmail(in.Email)
	existing, err := s.Repo.FindByEmail(email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, apperr.New(apperr.KindQueryFailed).WithDetails(err.Error())
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindUserAlreadyExists)
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.New(apperr.KindInternalError).WithDetails(err.Error())
	}

	u := entity.NewUser(normalizeName(in.Name), email, hash)
	if err := s.Repo.Save(u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, apperr.New(apperr.KindUserAlreadyExists)
		}
		return nil, apperr.New(apperr.KindUserSaveFailed).WithDetails(err.Error())
	}

	s.sendWelcomeEmail(ctx, u)

	return toDTO(u), nil
}

// sendWelcomeEmail enqueues the welcome notification. A publish failure is
// logged and swallowed: it must never roll back the creation.
func (s *Service) sendWelcomeEmail(ctx context.Context, u *entity.User) {
	if s.Mail == nil {
		return
	}
	job := mailer.EmailJob{
		To:      u.Email,
		Subject: "Welcome to Pommy",
		Text:    "Hi " + u.Name + ", your account is ready.",
		HTML:    "<p>Hi " + u.Name + ", your account is ready.</p>",
	}
	if err := s.Mail.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email enqueue failed")
	}
}

// Login verifies credentials and issues a session token. Every credential
// failure - missing field, unknown email, wrong password - yields the same
// INVALID_CREDENTIALS error, and a fixed delay after the lookup keeps the
// unknown-email and wrong-password paths indistinguishable by timing.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperr.New(apperr.KindInvalidCredentials)
	}

	u, err := s.Repo.FindByEmail(normalizeEmail(email))
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return "", apperr.New(apperr.KindQueryFailed).WithDetails(err.Error())
	}

	if s.LoginDelay > 0 {
		time.Sleep(s.LoginDelay)
	}

	if u == nil {
		return "", apperr.New(apperr.KindInvalidCredentials)
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", apperr.New(apperr.KindInvalidCredentials)
	}

	token, err := s.Tokens.Issue(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token issue failed")
		}
		return "", err
	}
	return token, nil
}

// Update overwrites only the supplied fields; everything else keeps its
// prior value. A provided password is hashed before it is stored.
func (s *Service) Update(ctx context.Context, id string, in UpdateUserInput) (*UserDTO, error) {
	if err := validation.ValidateID(id); err != nil {
		return nil, err
	}
	if in.Name != "" {
		if err := validation.ValidateName(in.Name); err != nil {
			return nil, err
		}
	}
	if in.Email != "" {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, err
		}
	}
	if in.Password != "" {
		if err := validation.ValidatePassword(in.Password); err != nil {
			return nil, err
		}
	}

	u, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.KindUserNotFound)
		}
		return nil, apperr.New(apperr.KindQueryFailed).WithDetails(err.Error())
	}

	if in.Name != "" {
		u.Name = normalizeName(in.Name)
	}
	if in.Email != "" {
		u.Email = normalizeEmail(in.Email)
	}
	if in.Password != "" {
		hash, err := helpers.HashPassword(in.Password)
		if err != nil {
			return nil, apperr.New(apperr.KindInternalError).WithDetails(err.Error())
		}
		u.Password = hash
	}

	if err := s.Repo.Update(u); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return nil, apperr.New(apperr.KindUserNotFound)
		case errors.Is(err, repo.ErrDuplicateEmail):
			return nil, apperr.New(apperr.KindUserAlreadyExists)
		default:
			return nil, apperr.New(apperr.KindUserUpdateFailed).WithDetails(err.Error())
		}
	}

	return toDTO(u), nil
}

// Delete removes the account outright; there is no soft delete. Deleting an
// already-deleted id fails with USER_NOT_FOUND, nothing worse.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := validation.ValidateID(id); err != nil {
		return err
	}

	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.New(apperr.KindUserNotFound)
		}
		return apperr.New(apperr.KindQueryFailed).WithDetails(err.Error())
	}

	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.New(apperr.KindUserNotFound)
		}
		return apperr.New(apperr.KindUserDeleteFailed).WithDetails(err.Error())
	}
	return nil
}
