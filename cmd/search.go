package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/octoseek/filter"
	"github.com/s0up4200/octoseek/github"
)

var withDetails bool

// searchCmd groups the search subcommands
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search GitHub users or repositories",
}

var searchUsersCmd = &cobra.Command{
	Use:   "users <query>",
	Short: "Search users with ordering",
	Long: `Search GitHub users. Sort by one of: followers, repositories,
joined, best-match.

Example:
  octoseek search users "location:brazil" --sort followers --order desc -n 5`,
	Args: cobra.ExactArgs(1),
	RunE: runSearchUsers,
}

var searchReposCmd = &cobra.Command{
	Use:   "repos <query>",
	Short: "Search repositories with ordering",
	Long: `Search GitHub repositories. Sort by one of: stars, forks,
help-wanted-issues, updated, best-match.

Example:
  octoseek search repos "language:python" --sort stars --order desc -n 5`,
	Args: cobra.ExactArgs(1),
	RunE: runSearchRepos,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.AddCommand(searchUsersCmd)
	searchCmd.AddCommand(searchReposCmd)

	searchCmd.PersistentFlags().StringVarP(&sortField, "sort", "s", "best-match", "sort field")
	searchCmd.PersistentFlags().StringVar(&order, "order", "", "result order, passed through to the API (default from config)")
	searchCmd.PersistentFlags().IntVarP(&perPage, "per-page", "n", 0, "number of results, max 100 (default from config)")
	searchCmd.PersistentFlags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression")
	searchCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write results to a JSON file")

	searchUsersCmd.Flags().BoolVar(&withDetails, "details", false, "fetch the full detail record for every hit")
}

func runSearchUsers(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	query := args[0]

	logger.Info().Str("query", query).Str("sort", sortField).Msg("Searching users")

	result, err := client.SearchUsers(ctx, query, sortField, effectiveOrder(), effectivePerPage())
	if err != nil {
		return err
	}

	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		result.Items, err = f.Users(result.Items)
		if err != nil {
			return err
		}
	}

	if withDetails {
		details, err := client.EnrichUserDetails(ctx, result.Items)
		if err != nil {
			return err
		}
		if outputFile != "" {
			return writeJSON(outputFile, details)
		}
		printUserDetails(details)
		return nil
	}

	if outputFile != "" {
		return writeJSON(outputFile, result)
	}

	fmt.Printf("\nTotal results: %d\n", result.TotalCount)
	if result.IncompleteResults {
		fmt.Println("(results are incomplete, the search timed out upstream)")
	}
	fmt.Println()

	for i, user := range result.Items {
		fmt.Printf("%d. %s\n", i+1, stringValue(user.Login))
		if user.ProfileURL != nil {
			fmt.Printf("   URL: %s\n", *user.ProfileURL)
		}
		fmt.Println()
	}

	return nil
}

func runSearchRepos(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	query := args[0]

	logger.Info().Str("query", query).Str("sort", sortField).Msg("Searching repositories")

	result, err := client.SearchRepositories(ctx, query, sortField, effectiveOrder(), effectivePerPage())
	if err != nil {
		return err
	}

	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		result.Items, err = f.Repositories(result.Items)
		if err != nil {
			return err
		}
	}

	if outputFile != "" {
		return writeJSON(outputFile, result)
	}

	fmt.Printf("\nTotal results: %d\n\n", result.TotalCount)

	for i, repo := range result.Items {
		fmt.Printf("%d. %s\n", i+1, stringValue(repo.FullName))
		if repo.Description != nil {
			fmt.Printf("   Description: %s\n", *repo.Description)
		}
		fmt.Printf("   Stars: %d | Forks: %d", repo.Stars, repo.Forks)
		if repo.Language != nil {
			fmt.Printf(" | Language: %s", *repo.Language)
		}
		fmt.Println()
		if repo.URL != nil {
			fmt.Printf("   URL: %s\n", *repo.URL)
		}
		fmt.Println()
	}

	return nil
}

func printUserDetails(details []github.UserDetail) {
	for i, detail := range details {
		fmt.Printf("%d. %s\n", i+1, stringValue(detail.Login))
		if detail.Name != nil {
			fmt.Printf("   Name: %s\n", *detail.Name)
		}
		if detail.Location != nil {
			fmt.Printf("   Location: %s\n", *detail.Location)
		}
		fmt.Printf("   Repos: %d | Followers: %d | Following: %d\n",
			detail.PublicRepos, detail.Followers, detail.Following)
		if detail.CreatedAt != nil {
			fmt.Printf("   Joined: %s\n", *detail.CreatedAt)
		}
		fmt.Println(strings.Repeat("-", 60))
	}
}
