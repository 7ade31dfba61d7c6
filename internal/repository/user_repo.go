package repository

import (
	"context"
	"time"

	"github.com/asymmetric-studio/site-api/internal/id"
	"github.com/asymmetric-studio/site-api/internal/models"
	"github.com/asymmetric-studio/site-api/internal/store"
	"github.com/rs/zerolog"
)

// userRepo is the flat-file implementation of UserRepository
type userRepo struct {
	users *store.Collection[models.User]
	log   zerolog.Logger
}

// NewUserRepo creates a new UserRepository
func NewUserRepo(users *store.Collection[models.User], log zerolog.Logger) UserRepository {
	return &userRepo{
		users: users,
		log:   log.With().Str("repository", "users").Logger(),
	}
}

// List returns all users in stored order
func (r *userRepo) List(ctx context.Context) ([]models.User, error) {
	return r.users.ReadAll()
}

// Authenticate scans for an exact email+password match and returns nil when
// there is none. Passwords are compared in plain text; see models.User.
func (r *userRepo) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	users, err := r.users.ReadAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Register creates an account with role "user". Returns models.ErrUserExists
// when the email is already present.
func (r *userRepo) Register(ctx context.Context, email, password string) (*models.User, error) {
	users, err := r.users.ReadAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return nil, models.ErrUserExists
		}
	}

	token, err := id.New()
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:        token,
		Email:     email,
		Password:  password,
		Role:      "user",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	users = append(users, user)

	if err := r.users.WriteAll(users); err != nil {
		return nil, err
	}

	r.log.Info().Str("id", user.ID).Msg("User registered")
	return &user, nil
}
