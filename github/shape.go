package github

import (
	"fmt"
	"time"
)

const (
	// apiTimeLayout is the fixed timestamp format used by the GitHub API.
	// The trailing Z is a literal, so parsed times are taken as UTC.
	apiTimeLayout = "2006-01-02T15:04:05Z"
	// displayTimeLayout is the format shaped records expose timestamps in
	displayTimeLayout = "02/01/2006 15:04:05"
)

// shapeUserSummary projects the summary fields from a raw user record.
// Absent fields stay nil (false for SiteAdmin); it never fails.
func shapeUserSummary(raw rawUser) UserSummary {
	return UserSummary{
		ID:         raw.ID,
		Login:      raw.Login,
		AvatarURL:  raw.AvatarURL,
		ProfileURL: raw.HTMLURL,
		Type:       raw.Type,
		SiteAdmin:  raw.SiteAdmin,
	}
}

// shapeUserDetail projects the full detail field set from a raw user
// record. Timestamps are reformatted when present; a present but
// malformed timestamp is an error, not a default.
func shapeUserDetail(raw rawUser) (*UserDetail, error) {
	createdAt, err := reformatTimestamp(raw.CreatedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := reformatTimestamp(raw.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &UserDetail{
		UserSummary: shapeUserSummary(raw),
		Name:        raw.Name,
		Company:     raw.Company,
		Blog:        raw.Blog,
		Location:    raw.Location,
		Email:       raw.Email,
		Bio:         raw.Bio,
		PublicRepos: raw.PublicRepos,
		PublicGists: raw.PublicGists,
		Followers:   raw.Followers,
		Following:   raw.Following,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// shapeRepository projects a raw repository record. Owner is read from
// the nested owner object's login, nil when the owner itself is absent.
func shapeRepository(raw rawRepository) (Repository, error) {
	createdAt, err := reformatTimestamp(raw.CreatedAt)
	if err != nil {
		return Repository{}, err
	}
	updatedAt, err := reformatTimestamp(raw.UpdatedAt)
	if err != nil {
		return Repository{}, err
	}

	var owner *string
	if raw.Owner != nil {
		owner = raw.Owner.Login
	}

	return Repository{
		ID:          raw.ID,
		Name:        raw.Name,
		FullName:    raw.FullName,
		Owner:       owner,
		Description: raw.Description,
		Language:    raw.Language,
		Stars:       raw.StargazersCount,
		Forks:       raw.ForksCount,
		Watchers:    raw.WatchersCount,
		OpenIssues:  raw.OpenIssuesCount,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		URL:         raw.HTMLURL,
		IsFork:      raw.Fork,
		IsArchived:  raw.Archived,
	}, nil
}

// reformatTimestamp converts an API timestamp to the display format.
// A nil or empty input yields nil; a malformed value propagates as an
// error rather than being defaulted.
func reformatTimestamp(raw *string) (*string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	t, err := time.Parse(apiTimeLayout, *raw)
	if err != nil {
		return nil, fmt.Errorf("malformed timestamp %q: %w", *raw, err)
	}

	formatted := t.Format(displayTimeLayout)
	return &formatted, nil
}
