package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// userCmd represents the user command
var userCmd = &cobra.Command{
	Use:   "user <username>",
	Short: "Show details for a single user",
	Long: `Fetch and display the full profile of one GitHub user.

Example:
  octoseek user torvalds`,
	Args: cobra.ExactArgs(1),
	RunE: runUser,
}

func init() {
	rootCmd.AddCommand(userCmd)

	userCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the record to a JSON file")
}

func runUser(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	username := args[0]

	logger.Info().Str("username", username).Msg("Fetching user details")

	detail, err := client.GetUserDetails(ctx, username)
	if err != nil {
		return err
	}

	if outputFile != "" {
		return writeJSON(outputFile, detail)
	}

	fmt.Printf("\nDetails for %s:\n\n", stringValue(detail.Login))
	printOptional("Name", detail.Name)
	printOptional("Company", detail.Company)
	printOptional("Location", detail.Location)
	printOptional("Email", detail.Email)
	printOptional("Blog", detail.Blog)
	printOptional("Bio", detail.Bio)
	fmt.Printf("Public repos: %d\n", detail.PublicRepos)
	fmt.Printf("Public gists: %d\n", detail.PublicGists)
	fmt.Printf("Followers: %d\n", detail.Followers)
	fmt.Printf("Following: %d\n", detail.Following)
	printOptional("Created", detail.CreatedAt)
	printOptional("Updated", detail.UpdatedAt)
	printOptional("URL", detail.ProfileURL)

	return nil
}

func printOptional(label string, value *string) {
	if value == nil {
		return
	}
	fmt.Printf("%s: %s\n", label, *value)
}
