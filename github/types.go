package github

// rawUser is a user object as returned by the GitHub API. Pointer fields
// distinguish values the API omitted from genuinely empty strings.
type rawUser struct {
	ID          int64   `json:"id"`
	Login       *string `json:"login"`
	AvatarURL   *string `json:"avatar_url"`
	HTMLURL     *string `json:"html_url"`
	Type        *string `json:"type"`
	SiteAdmin   bool    `json:"site_admin"`
	Name        *string `json:"name"`
	Company     *string `json:"company"`
	Blog        *string `json:"blog"`
	Location    *string `json:"location"`
	Email       *string `json:"email"`
	Bio         *string `json:"bio"`
	PublicRepos int     `json:"public_repos"`
	PublicGists int     `json:"public_gists"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	CreatedAt   *string `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

// rawRepository is a repository object as returned by the GitHub API
type rawRepository struct {
	ID              int64    `json:"id"`
	Name            *string  `json:"name"`
	FullName        *string  `json:"full_name"`
	Owner           *rawUser `json:"owner"`
	Description     *string  `json:"description"`
	Language        *string  `json:"language"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	WatchersCount   int      `json:"watchers_count"`
	OpenIssuesCount int      `json:"open_issues_count"`
	CreatedAt       *string  `json:"created_at"`
	UpdatedAt       *string  `json:"updated_at"`
	HTMLURL         *string  `json:"html_url"`
	Fork            bool     `json:"fork"`
	Archived        bool     `json:"archived"`
}

// searchResponse is the envelope returned by the search endpoints
type searchResponse[T any] struct {
	TotalCount        int  `json:"total_count"`
	IncompleteResults bool `json:"incomplete_results"`
	Items             []T  `json:"items"`
}

// rateLimitResponse is the envelope returned by the /rate_limit endpoint
type rateLimitResponse struct {
	Resources struct {
		Core struct {
			Limit     int   `json:"limit"`
			Remaining int   `json:"remaining"`
			Reset     int64 `json:"reset"`
		} `json:"core"`
	} `json:"resources"`
}

// UserSummary is the shaped form of a user record from a listing or
// search result. Optional fields are nil when the API omitted them.
type UserSummary struct {
	ID         int64   `json:"id"`
	Login      *string `json:"login"`
	AvatarURL  *string `json:"avatar_url"`
	ProfileURL *string `json:"url"`
	Type       *string `json:"type"`
	SiteAdmin  bool    `json:"site_admin"`
}

// UserDetail is the shaped form of a single-user fetch. CreatedAt and
// UpdatedAt carry the display-formatted timestamps, nil when absent.
type UserDetail struct {
	UserSummary
	Name        *string `json:"name"`
	Company     *string `json:"company"`
	Blog        *string `json:"blog"`
	Location    *string `json:"location"`
	Email       *string `json:"email"`
	Bio         *string `json:"bio"`
	PublicRepos int     `json:"public_repos"`
	PublicGists int     `json:"public_gists"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	CreatedAt   *string `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

// Repository is the shaped form of a repository record. Owner holds the
// nested owner's login, nil when the owner object is absent.
type Repository struct {
	ID          int64   `json:"id"`
	Name        *string `json:"name"`
	FullName    *string `json:"full_name"`
	Owner       *string `json:"owner"`
	Description *string `json:"description"`
	Language    *string `json:"language"`
	Stars       int     `json:"stars"`
	Forks       int     `json:"forks"`
	Watchers    int     `json:"watchers"`
	OpenIssues  int     `json:"open_issues"`
	CreatedAt   *string `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
	URL         *string `json:"url"`
	IsFork      bool    `json:"is_fork"`
	IsArchived  bool    `json:"is_archived"`
}

// SearchResult holds the shaped items of one search call together with
// the upstream result metadata.
type SearchResult[T any] struct {
	TotalCount        int  `json:"total_count"`
	IncompleteResults bool `json:"incomplete_results"`
	Items             []T  `json:"items"`
}

// RateLimit describes the core API quota for the current credentials
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     int64
}
