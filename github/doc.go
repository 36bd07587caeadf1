// Package github provides a thin client for the GitHub REST API.
//
// The client issues single synchronous GET requests, classifies HTTP
// failures into a small error taxonomy, and reshapes the returned JSON
// into flat records with display-formatted timestamps.
//
// # Usage
//
// Create a client with an optional API token:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := github.NewClient("", logger,
//		github.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := client.SearchUsers(ctx, "location:brazil", "followers", "desc", 5)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Shaping
//
// Shaped records model optional upstream fields as pointers: a field the
// API omitted is nil, numeric counts default to 0 and booleans to false.
// Timestamps are the one exception to defaulting: an absent timestamp is
// nil, but a present, unparsable one is an error.
//
// # Error Handling
//
// HTTP failures map onto sentinel errors usable with errors.Is:
//
//   - ErrNotFound: upstream returned 404
//   - ErrRateLimited: upstream returned 403
//   - ErrUnauthorized: upstream returned 401
//   - ErrInvalidSort: a sort field outside the permitted set, rejected
//     before any network call
//
// Any other non-2xx status surfaces as *APIError carrying the status
// code, endpoint and response body. Network-level failures are wrapped
// transport errors with no status attached.
//
// The client holds no mutable state beyond its configuration and is safe
// for concurrent use.
package github
