package github

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeUserSummary(t *testing.T) {
	t.Run("missing site_admin defaults to false", func(t *testing.T) {
		var raw rawUser
		require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "login": "octocat"}`), &raw))

		summary := shapeUserSummary(raw)
		assert.False(t, summary.SiteAdmin)
	})

	t.Run("empty record shapes without error", func(t *testing.T) {
		summary := shapeUserSummary(rawUser{})
		assert.Zero(t, summary.ID)
		assert.Nil(t, summary.Login)
		assert.Nil(t, summary.AvatarURL)
		assert.Nil(t, summary.ProfileURL)
		assert.Nil(t, summary.Type)
		assert.False(t, summary.SiteAdmin)
	})

	t.Run("html_url maps to profile URL", func(t *testing.T) {
		var raw rawUser
		require.NoError(t, json.Unmarshal([]byte(`{"html_url": "https://github.com/octocat"}`), &raw))

		summary := shapeUserSummary(raw)
		require.NotNil(t, summary.ProfileURL)
		assert.Equal(t, "https://github.com/octocat", *summary.ProfileURL)
	})
}

func TestShapeUserDetail(t *testing.T) {
	t.Run("counts default to zero", func(t *testing.T) {
		detail, err := shapeUserDetail(rawUser{})
		require.NoError(t, err)
		assert.Zero(t, detail.PublicRepos)
		assert.Zero(t, detail.PublicGists)
		assert.Zero(t, detail.Followers)
		assert.Zero(t, detail.Following)
		assert.Nil(t, detail.CreatedAt)
		assert.Nil(t, detail.UpdatedAt)
	})

	t.Run("timestamps reformatted", func(t *testing.T) {
		created := "2011-01-25T18:44:36Z"
		detail, err := shapeUserDetail(rawUser{CreatedAt: &created})
		require.NoError(t, err)
		require.NotNil(t, detail.CreatedAt)
		assert.Equal(t, "25/01/2011 18:44:36", *detail.CreatedAt)
	})

	t.Run("malformed created_at propagates", func(t *testing.T) {
		bad := "25-01-2011"
		_, err := shapeUserDetail(rawUser{CreatedAt: &bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed timestamp")
	})

	t.Run("malformed updated_at propagates", func(t *testing.T) {
		good := "2011-01-25T18:44:36Z"
		bad := "not a time"
		_, err := shapeUserDetail(rawUser{CreatedAt: &good, UpdatedAt: &bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a time")
	})
}

func TestShapeRepository(t *testing.T) {
	t.Run("absent owner yields nil login", func(t *testing.T) {
		repo, err := shapeRepository(rawRepository{})
		require.NoError(t, err)
		assert.Nil(t, repo.Owner)
	})

	t.Run("owner login projected from nested object", func(t *testing.T) {
		login := "torvalds"
		repo, err := shapeRepository(rawRepository{Owner: &rawUser{Login: &login}})
		require.NoError(t, err)
		require.NotNil(t, repo.Owner)
		assert.Equal(t, "torvalds", *repo.Owner)
	})

	t.Run("owner present without login", func(t *testing.T) {
		repo, err := shapeRepository(rawRepository{Owner: &rawUser{ID: 7}})
		require.NoError(t, err)
		assert.Nil(t, repo.Owner)
	})

	t.Run("malformed timestamp propagates", func(t *testing.T) {
		bad := "2011/01/25"
		_, err := shapeRepository(rawRepository{UpdatedAt: &bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed timestamp")
	})
}

func TestReformatTimestamp(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		got, err := reformatTimestamp(nil)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty stays nil", func(t *testing.T) {
		empty := ""
		got, err := reformatTimestamp(&empty)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("round trip", func(t *testing.T) {
		raw := "2011-01-25T18:44:36Z"
		got, err := reformatTimestamp(&raw)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "25/01/2011 18:44:36", *got)
	})

	t.Run("offset timestamps are rejected", func(t *testing.T) {
		raw := "2011-01-25T18:44:36+02:00"
		_, err := reformatTimestamp(&raw)
		require.Error(t, err)
	})
}
