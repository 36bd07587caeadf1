package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public GitHub API origin
	DefaultBaseURL = "https://api.github.com"

	acceptHeader     = "application/vnd.github.v3+json"
	defaultUserAgent = "octoseek"

	// per_page bounds enforced before a request is sent
	minPerPage = 1
	maxPerPage = 100
)

// Permitted sort fields per search endpoint. Anything else is rejected
// before a request is made. The order parameter is deliberately not
// validated; the API defines its own acceptable values.
var (
	userSortFields       = []string{"followers", "repositories", "joined", "best-match"}
	repositorySortFields = []string{"stars", "forks", "help-wanted-issues", "updated", "best-match"}
)

// Client represents a GitHub API client. It holds no mutable state
// beyond its configuration and is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new GitHub client. The token is optional;
// unauthenticated clients are subject to a much lower rate limit.
// No network activity occurs at construction.
func NewClient(token string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if options.baseURL == "" {
		return nil, fmt.Errorf("github base URL is required")
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    options.baseURL,
		token:      token,
		userAgent:  options.userAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// doRequest performs a single GET against the API and classifies the
// outcome. Exactly one outbound call per invocation, no retries.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	c.logger.Debug().Str("url", requestURL).Msg("Making GitHub API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, endpoint)
	case resp.StatusCode == http.StatusForbidden:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Body:       strings.TrimSpace(string(body)),
		}
	}
}

// ListUsers lists GitHub users in registration order. since is the user
// ID to start listing from and is passed through unvalidated.
func (c *Client) ListUsers(ctx context.Context, since int64, perPage int) ([]UserSummary, error) {
	params := url.Values{}
	params.Set("since", strconv.FormatInt(since, 10))
	params.Set("per_page", strconv.Itoa(clampPerPage(perPage)))

	body, err := c.doRequest(ctx, "/users", params)
	if err != nil {
		return nil, err
	}

	var raw []rawUser
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	users := make([]UserSummary, 0, len(raw))
	for _, r := range raw {
		users = append(users, shapeUserSummary(r))
	}
	return users, nil
}

// SearchUsers searches users with ordering. sort must be one of
// followers, repositories, joined or best-match.
func (c *Client) SearchUsers(ctx context.Context, query, sort, order string, perPage int) (*SearchResult[UserSummary], error) {
	if err := validateSort(sort, userSortFields); err != nil {
		return nil, err
	}

	body, err := c.doRequest(ctx, "/search/users", searchParams(query, sort, order, perPage))
	if err != nil {
		return nil, err
	}

	var raw searchResponse[rawUser]
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	result := &SearchResult[UserSummary]{
		TotalCount:        raw.TotalCount,
		IncompleteResults: raw.IncompleteResults,
		Items:             make([]UserSummary, 0, len(raw.Items)),
	}
	for _, r := range raw.Items {
		result.Items = append(result.Items, shapeUserSummary(r))
	}
	return result, nil
}

// GetUserDetails fetches a single user by username and shapes the full
// detail record, including timestamp reformatting.
func (c *Client) GetUserDetails(ctx context.Context, username string) (*UserDetail, error) {
	body, err := c.doRequest(ctx, "/users/"+url.PathEscape(username), nil)
	if err != nil {
		return nil, err
	}

	var raw rawUser
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return shapeUserDetail(raw)
}

// SearchRepositories searches repositories with ordering. sort must be
// one of stars, forks, help-wanted-issues, updated or best-match.
func (c *Client) SearchRepositories(ctx context.Context, query, sort, order string, perPage int) (*SearchResult[Repository], error) {
	if err := validateSort(sort, repositorySortFields); err != nil {
		return nil, err
	}

	body, err := c.doRequest(ctx, "/search/repositories", searchParams(query, sort, order, perPage))
	if err != nil {
		return nil, err
	}

	var raw searchResponse[rawRepository]
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	result := &SearchResult[Repository]{
		TotalCount:        raw.TotalCount,
		IncompleteResults: raw.IncompleteResults,
		Items:             make([]Repository, 0, len(raw.Items)),
	}
	for _, r := range raw.Items {
		repo, err := shapeRepository(r)
		if err != nil {
			return nil, err
		}
		result.Items = append(result.Items, repo)
	}
	return result, nil
}

// RateLimit reports the core API quota for the current credentials.
// The /rate_limit endpoint does not count against the quota.
func (c *Client) RateLimit(ctx context.Context) (*RateLimit, error) {
	body, err := c.doRequest(ctx, "/rate_limit", nil)
	if err != nil {
		return nil, err
	}

	var raw rateLimitResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &RateLimit{
		Limit:     raw.Resources.Core.Limit,
		Remaining: raw.Resources.Core.Remaining,
		Reset:     raw.Resources.Core.Reset,
	}, nil
}

// searchParams builds the query parameters shared by the search endpoints
func searchParams(query, sort, order string, perPage int) url.Values {
	params := url.Values{}
	params.Set("q", query)
	params.Set("sort", sort)
	params.Set("order", order)
	params.Set("per_page", strconv.Itoa(clampPerPage(perPage)))
	return params
}

// clampPerPage constrains a requested page size to [1, 100]
func clampPerPage(perPage int) int {
	if perPage < minPerPage {
		return minPerPage
	}
	if perPage > maxPerPage {
		return maxPerPage
	}
	return perPage
}

// validateSort rejects sort fields outside the permitted set before any
// network call is made.
func validateSort(sort string, valid []string) error {
	for _, v := range valid {
		if sort == v {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (use one of: %s)", ErrInvalidSort, sort, strings.Join(valid, ", "))
}
