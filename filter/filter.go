// Package filter evaluates expr expressions against shaped GitHub
// records, so results can be narrowed client-side after a search.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/octoseek/github"
)

// Filter represents a compiled filter expression
type Filter struct {
	program    *vm.Program
	expression string
}

// Compile compiles a filter expression. Record fields are referenced by
// their Go names, e.g. "Stars > 1000 && !IsFork".
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{
		program:    program,
		expression: expression,
	}, nil
}

// Expression returns the source expression
func (f *Filter) Expression() string {
	return f.expression
}

// MatchUser evaluates the filter against a shaped user summary
func (f *Filter) MatchUser(user github.UserSummary) (bool, error) {
	env := helperFunctions()
	env["ID"] = user.ID
	env["Login"] = stringValue(user.Login)
	env["AvatarURL"] = stringValue(user.AvatarURL)
	env["URL"] = stringValue(user.ProfileURL)
	env["Type"] = stringValue(user.Type)
	env["SiteAdmin"] = user.SiteAdmin
	return f.run(env)
}

// MatchRepository evaluates the filter against a shaped repository
func (f *Filter) MatchRepository(repo github.Repository) (bool, error) {
	env := helperFunctions()
	env["ID"] = repo.ID
	env["Name"] = stringValue(repo.Name)
	env["FullName"] = stringValue(repo.FullName)
	env["Owner"] = stringValue(repo.Owner)
	env["Description"] = stringValue(repo.Description)
	env["Language"] = stringValue(repo.Language)
	env["Stars"] = repo.Stars
	env["Forks"] = repo.Forks
	env["Watchers"] = repo.Watchers
	env["OpenIssues"] = repo.OpenIssues
	env["URL"] = stringValue(repo.URL)
	env["IsFork"] = repo.IsFork
	env["IsArchived"] = repo.IsArchived
	return f.run(env)
}

// Users returns the users matching the filter, in input order
func (f *Filter) Users(users []github.UserSummary) ([]github.UserSummary, error) {
	matched := make([]github.UserSummary, 0, len(users))
	for _, user := range users {
		ok, err := f.MatchUser(user)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, user)
		}
	}
	return matched, nil
}

// Repositories returns the repositories matching the filter, in input order
func (f *Filter) Repositories(repos []github.Repository) ([]github.Repository, error) {
	matched := make([]github.Repository, 0, len(repos))
	for _, repo := range repos {
		ok, err := f.MatchRepository(repo)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, repo)
		}
	}
	return matched, nil
}

func (f *Filter) run(env map[string]any) (bool, error) {
	output, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	result, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression must evaluate to a boolean, got %T", output)
	}
	return result, nil
}

// helperFunctions builds the string helpers available in expressions
func helperFunctions() map[string]any {
	return map[string]any{
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
