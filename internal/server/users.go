package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	invoicespb "github.com/trulyinvoice/trulyinvoice/gen/proto/invoices/v1"
	"github.com/trulyinvoice/trulyinvoice/internal/repository"
	"github.com/trulyinvoice/trulyinvoice/internal/utils"
)

type UsersService struct {
	invoicespb.UnimplementedUsersServiceServer
	userRepo repository.UserRepository
	logger   *slog.Logger
}

func NewUsersService(userRepo repository.UserRepository, logger *slog.Logger) *UsersService {
	return &UsersService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *UsersService) CreateUser(ctx context.Context, req *invoicespb.CreateUserRequest) (*invoicespb.CreateUserResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		s.logger.Error("create user request missing email")
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}
	currency := strings.ToUpper(strings.TrimSpace(req.GetDefaultCurrency()))
	if currency == "" {
		currency = "USD"
	}
	if len(currency) != 3 {
		return nil, status.Error(codes.InvalidArgument, "default_currency must be a 3-letter code")
	}

	u, err := s.userRepo.CreateUser(ctx, &repository.User{
		Email:           email,
		Name:            strings.TrimSpace(req.GetName()),
		DefaultCurrency: currency,
	})
	if err != nil {
		s.logger.Error("failed to create user", "email", email, "error", err)
		return nil, status.Errorf(codes.Internal, "create user: %v", err)
	}

	return &invoicespb.CreateUserResponse{User: utils.ToPBUser(utils.ToUser(u))}, nil
}

func (s *UsersService) ListUsers(ctx context.Context, _ *invoicespb.ListUsersRequest) (*invoicespb.ListUsersResponse, error) {
	ulist, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, status.Errorf(codes.Internal, "list users: %v", err)
	}
	out := make([]*invoicespb.User, 0, len(ulist))
	for _, u := range ulist {
		out = append(out, utils.ToPBUser(utils.ToUser(u)))
	}
	return &invoicespb.ListUsersResponse{Users: out}, nil
}
