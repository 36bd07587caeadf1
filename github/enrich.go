package github

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// EnrichConcurrency bounds the number of in-flight detail fetches
const EnrichConcurrency = 5

// EnrichUserDetails fetches the full detail record for every user in the
// given summaries. Results keep the input order. A summary without a
// login is carried over as-is instead of being fetched.
func (c *Client) EnrichUserDetails(ctx context.Context, users []UserSummary) ([]UserDetail, error) {
	details := make([]UserDetail, len(users))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(EnrichConcurrency)

	for i, user := range users {
		i, user := i, user
		if user.Login == nil {
			details[i] = UserDetail{UserSummary: user}
			continue
		}

		g.Go(func() error {
			detail, err := c.GetUserDetails(ctx, *user.Login)
			if err != nil {
				return fmt.Errorf("failed to fetch details for %s: %w", *user.Login, err)
			}
			details[i] = *detail
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}
