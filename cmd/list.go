package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var since int64

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List GitHub users in registration order",
	Long: `List GitHub users in the order they signed up. Use --since with a
user ID to continue a listing from that point.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Int64Var(&since, "since", 0, "user ID to start listing after")
	listCmd.Flags().IntVarP(&perPage, "per-page", "n", 0, "number of results, max 100 (default from config)")
	listCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write results to a JSON file")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	logger.Info().Int64("since", since).Msg("Listing users")

	users, err := client.ListUsers(ctx, since, effectivePerPage())
	if err != nil {
		return err
	}

	if outputFile != "" {
		return writeJSON(outputFile, users)
	}

	if len(users) == 0 {
		fmt.Println("No users returned.")
		return nil
	}

	for _, user := range users {
		fmt.Printf("%-12d %s", user.ID, stringValue(user.Login))
		if user.SiteAdmin {
			fmt.Printf(" [site admin]")
		}
		fmt.Println()
	}

	return nil
}
