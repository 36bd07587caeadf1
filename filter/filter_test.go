package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/octoseek/github"
)

func strPtr(s string) *string { return &s }

func TestCompile(t *testing.T) {
	t.Run("empty expression", func(t *testing.T) {
		_, err := Compile("   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty filter expression")
	})

	t.Run("invalid syntax", func(t *testing.T) {
		_, err := Compile("Stars >")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to compile")
	})

	t.Run("valid expression", func(t *testing.T) {
		f, err := Compile("Stars > 100")
		require.NoError(t, err)
		assert.Equal(t, "Stars > 100", f.Expression())
	})
}

func TestMatchRepository(t *testing.T) {
	repo := github.Repository{
		Name:        strPtr("linux"),
		FullName:    strPtr("torvalds/linux"),
		Owner:       strPtr("torvalds"),
		Description: strPtr("Linux kernel source tree"),
		Language:    strPtr("C"),
		Stars:       150000,
		Forks:       50000,
		IsFork:      false,
	}

	tests := []struct {
		expression string
		want       bool
	}{
		{`Stars > 1000`, true},
		{`Stars > 1000000`, false},
		{`Language == "C" && !IsFork`, true},
		{`contains(Description, "KERNEL")`, true},
		{`startsWith(FullName, "torvalds/")`, true},
		{`endsWith(Name, "nux")`, true},
		{`Owner == "someone-else"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			got, err := f.MatchRepository(repo)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchRepositoryNilFields(t *testing.T) {
	// Optional fields evaluate as empty strings, never panic
	f, err := Compile(`Description == "" && Owner == ""`)
	require.NoError(t, err)

	got, err := f.MatchRepository(github.Repository{})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestMatchUser(t *testing.T) {
	user := github.UserSummary{
		ID:        42,
		Login:     strPtr("octocat"),
		Type:      strPtr("User"),
		SiteAdmin: false,
	}

	f, err := Compile(`contains(Login, "cat") && !SiteAdmin`)
	require.NoError(t, err)

	got, err := f.MatchUser(user)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestNonBooleanResult(t *testing.T) {
	f, err := Compile(`Stars + 1`)
	require.NoError(t, err)

	_, err = f.MatchRepository(github.Repository{Stars: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must evaluate to a boolean")
}

func TestFilterSlices(t *testing.T) {
	repos := []github.Repository{
		{Name: strPtr("one"), Stars: 10},
		{Name: strPtr("two"), Stars: 2000},
		{Name: strPtr("three"), Stars: 500},
	}

	f, err := Compile(`Stars >= 500`)
	require.NoError(t, err)

	matched, err := f.Repositories(repos)
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "two", *matched[0].Name)
	assert.Equal(t, "three", *matched[1].Name)

	users := []github.UserSummary{
		{Login: strPtr("alpha"), SiteAdmin: true},
		{Login: strPtr("beta")},
	}

	uf, err := Compile(`SiteAdmin`)
	require.NoError(t, err)

	admins, err := uf.Users(users)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "alpha", *admins[0].Login)
}
