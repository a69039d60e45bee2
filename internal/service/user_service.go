package service

import (
	"context"
	"errors"
	"strings"

	"bookshelf/internal/auth"
	"bookshelf/internal/domain"
	"bookshelf/internal/repository"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	// Unknown usernames and wrong passwords are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserAlreadyExists is returned when registering an already taken username.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUnauthorized indicates a token that could not be validated or a
	// subject that no longer resolves to a user.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAccountDisabled indicates a valid token for a disabled account.
	ErrAccountDisabled = errors.New("account disabled")
	// ErrUserNotFound is returned by profile operations on a missing user.
	ErrUserNotFound = errors.New("user not found")
)

// ProfileUpdate carries optional profile changes; nil fields stay untouched.
type ProfileUpdate struct {
	Email    *string
	FullName *string
	Password *string
	Disabled *bool
}

// UserService is the authentication gate: it owns registration, login and
// the token-to-user authorization check every protected endpoint relies on.
type UserService interface {
	Register(ctx context.Context, username, email, fullName, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Authorize(ctx context.Context, token string) (*domain.User, error)
	Get(ctx context.Context, username string) (*domain.User, error)
	UpdateProfile(ctx context.Context, username string, update ProfileUpdate) (*domain.User, error)
}

type userService struct {
	users  repository.UserRepository
	tokens *auth.TokenIssuer
}

func NewUserService(users repository.UserRepository, tokens *auth.TokenIssuer) UserService {
	return &userService{
		users:  users,
		tokens: tokens,
	}
}

func (s *userService) Register(ctx context.Context, username, email, fullName, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	fullName = strings.TrimSpace(fullName)

	if username == "" {
		return nil, errors.New("username is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Username)
}

func (s *userService) Authorize(ctx context.Context, token string) (*domain.User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.users.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	// a disabled account loses access even while its token is unexpired
	if user.Disabled {
		return nil, ErrAccountDisabled
	}

	return sanitizeUser(user), nil
}

func (s *userService) Get(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, username string, update ProfileUpdate) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if update.Email != nil {
		user.Email = strings.TrimSpace(*update.Email)
	}
	if update.FullName != nil {
		user.FullName = strings.TrimSpace(*update.FullName)
	}
	if update.Password != nil {
		if *update.Password == "" {
			return nil, errors.New("password must not be empty")
		}
		hash, err := auth.HashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if update.Disabled != nil {
		user.Disabled = *update.Disabled
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

// sanitizeUser strips the password hash before a user leaves the service.
func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	clone := *user
	clone.PasswordHash = ""
	return &clone
}
