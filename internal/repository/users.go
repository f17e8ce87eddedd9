package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/trulyinvoice/trulyinvoice/gen/ent"
	entuser "github.com/trulyinvoice/trulyinvoice/gen/ent/user"
)

type User struct {
	Email           string
	Name            string
	DefaultCurrency string
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error)
	CreateUser(ctx context.Context, user *User) (*ent.User, error)
	GetOrCreateByEmail(ctx context.Context, user *User) (*ent.User, error)
	ListUsers(ctx context.Context) ([]*ent.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error) {
	return r.client.User.
		Query().
		Where(entuser.ID(id)).
		Only(ctx)
}

func (r *userRepository) CreateUser(ctx context.Context, user *User) (*ent.User, error) {
	u, err := r.client.User.Create().
		SetEmail(user.Email).
		SetName(user.Name).
		SetDefaultCurrency(user.DefaultCurrency).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create user", "email", user.Email, "error", err)
		return nil, err
	}
	return u, nil
}

// GetOrCreateByEmail is used by the batch CLI, which has no user management
// surface of its own.
func (r *userRepository) GetOrCreateByEmail(ctx context.Context, user *User) (*ent.User, error) {
	existing, err := r.client.User.Query().Where(entuser.Email(user.Email)).Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up user by email", "email", user.Email, "error", err)
		return nil, err
	}
	return r.CreateUser(ctx, user)
}

func (r *userRepository) ListUsers(ctx context.Context) ([]*ent.User, error) {
	ulist, err := r.client.User.Query().Order(entuser.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	return ulist, nil
}

func (r *userRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.User.Query().Where(entuser.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check user existence", "user_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
