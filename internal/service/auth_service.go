package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/cashmind/internal/operator/actions"
	"github.com/carson-networks/cashmind/internal/storage/user"
)

// AuthService registers users and exchanges credentials for tokens.
type AuthService struct {
	users    UserReader
	operator ActionProcessor
	tokens   TokenIssuer
	hashCost int
	logger   *logrus.Logger
}

func NewAuthService(users UserReader, operator ActionProcessor, tokens TokenIssuer, logger *logrus.Logger) *AuthService {
	return &AuthService{
		users:    users,
		operator: operator,
		tokens:   tokens,
		hashCost: bcrypt.DefaultCost,
		logger:   logger,
	}
}

// Session is what a successful register or login returns.
type Session struct {
	UserID uuid.UUID
	Token  string
}

// Register creates a user and signs them in.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (*Session, error) {
	fullName = strings.TrimSpace(fullName)
	email = normalizeEmail(email)
	if fullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidUser)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidUser)
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, user.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	action := &actions.CreateUser{FullName: fullName, Email: email, PasswordHash: string(hash)}
	if err := s.operator.Process(ctx, action); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.tokens.Issue(action.CreatedID)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("userID", action.CreatedID).Info("AuthService.Register")
	return &Session{UserID: action.CreatedID, Token: token}, nil
}

// Login checks the credentials and returns a fresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	found, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, user.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		s.logger.WithField("userID", found.ID).Info("AuthService.Login.WrongPassword")
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(found.ID)
	if err != nil {
		return nil, err
	}
	return &Session{UserID: found.ID, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
