package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connectivity to the GitHub API",
	Long: `Check that the API is reachable with the configured credentials and
display the current rate limit. The check itself does not count against
the quota.`,
	RunE: runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to %s...\n", cfg.GitHub.BaseURL)

	ctx := context.Background()
	limit, err := client.RateLimit(ctx)
	if err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}

	fmt.Println("✓ Connection successful!")
	fmt.Printf("\nRate limit (core):\n")
	fmt.Printf("- Limit: %d requests/hour\n", limit.Limit)
	fmt.Printf("- Remaining: %d\n", limit.Remaining)
	fmt.Printf("- Resets: %s\n", time.Unix(limit.Reset, 0).Format(time.RFC3339))

	if cfg.GitHub.Token == "" {
		fmt.Println("\nNo API token configured; the unauthenticated limit applies.")
	}

	return nil
}
