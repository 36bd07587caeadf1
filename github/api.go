package github

import (
	"context"
)

// API defines the interface for GitHub query operations
type API interface {
	// ListUsers lists users in registration order, starting after the
	// user ID given as since
	ListUsers(ctx context.Context, since int64, perPage int) ([]UserSummary, error)

	// SearchUsers searches users with ordering
	SearchUsers(ctx context.Context, query, sort, order string, perPage int) (*SearchResult[UserSummary], error)

	// GetUserDetails fetches one user's full detail record
	GetUserDetails(ctx context.Context, username string) (*UserDetail, error)

	// SearchRepositories searches repositories with ordering
	SearchRepositories(ctx context.Context, query, sort, order string, perPage int) (*SearchResult[Repository], error)

	// EnrichUserDetails fetches detail records for a set of summaries
	EnrichUserDetails(ctx context.Context, users []UserSummary) ([]UserDetail, error)

	// RateLimit reports the core API quota for the current credentials
	RateLimit(ctx context.Context) (*RateLimit, error)
}
