package domain

import "context"

type UserRepository interface {
	// CreateUser fails with ErrUserExists when the email is taken.
	CreateUser(ctx context.Context, u User) error
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, id string) (User, error)
}

type ChatHistoryRepository interface {
	// LoadUserChat returns the transcript oldest first; unknown users yield an empty slice.
	LoadUserChat(ctx context.Context, userID string) ([]ChatTurn, error)
	AppendUserChat(ctx context.Context, userID string, turns []ChatTurn) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
