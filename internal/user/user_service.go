package user

import (
	"context"
	"strings"
	"time"

	usererrors "go-sapmock/internal/user/errors"

	"go.uber.org/zap"
)

type Service interface {
	GetUsers(ctx context.Context, skip, top int, filter string) ([]UserResponse, error)
	GetUser(ctx context.Context, userID string) (UserResponse, error)
}

type service struct {
	users  []User
	logger *zap.Logger
}

// NewService seeds the fixed demo user set the mock has always shipped.
func NewService(logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		users: []User{
			{UserID: "U001", Name: "Gildong Hong", Email: "hong@company.com", Department: "HR", ModifiedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
			{UserID: "U002", Name: "Younghee Lee", Email: "lee@company.com", Department: "IT", ModifiedAt: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)},
		},
		logger: l,
	}
}

// GetUsers understands exactly one filter shape, "modifiedAt gt '<RFC3339>'",
// keeping users modified strictly after the timestamp. Anything else in the
// filter is ignored.
func (s *service) GetUsers(ctx context.Context, skip, top int, filter string) ([]UserResponse, error) {
	filtered := s.users

	if cutoff, ok := parseModifiedAfter(filter); ok {
		kept := make([]User, 0, len(filtered))
		for _, u := range filtered {
			if u.ModifiedAt.After(cutoff) {
				kept = append(kept, u)
			}
		}
		filtered = kept
	}

	if skip < 0 {
		skip = 0
	}
	if skip >= len(filtered) {
		return []UserResponse{}, nil
	}
	end := skip + top
	if end > len(filtered) {
		end = len(filtered)
	}

	return mapToListResponse(filtered[skip:end]), nil
}

func (s *service) GetUser(ctx context.Context, userID string) (UserResponse, error) {
	for _, u := range s.users {
		if u.UserID == userID {
			return mapToResponse(u), nil
		}
	}
	s.logger.Warn("user not found", zap.String("user_id", userID))
	return UserResponse{}, usererrors.ErrUserNotFound
}

func parseModifiedAfter(filter string) (time.Time, bool) {
	if !strings.Contains(filter, "modifiedAt gt") {
		return time.Time{}, false
	}
	parts := strings.Split(filter, "'")
	if len(parts) < 2 {
		return time.Time{}, false
	}
	cutoff, err := time.Parse(time.RFC3339, parts[1])
	if err != nil {
		// Unparseable literal: the clause never filters, it is absorbed.
		return time.Time{}, false
	}
	return cutoff, true
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		UserID:     u.UserID,
		Name:       u.Name,
		Email:      u.Email,
		Department: u.Department,
		ModifiedAt: u.ModifiedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(users []User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = mapToResponse(u)
	}
	return out
}
