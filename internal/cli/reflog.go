package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/kilupskalvis/mini/internal/models"
	"github.com/spf13/cobra"
)

var reflogCmd = &cobra.Command{
	Use:   "reflog",
	Short: "Show the history of ref updates",
	Long: `Display every movement of a branch or HEAD, newest first: repository
initialization, commits, branch creation and resets, and switches.`,
	Args: cobra.NoArgs,
	RunE: runReflog,
}

var reflogLimit int

func init() {
	reflogCmd.Flags().IntVarP(&reflogLimit, "n", "n", 0, "Limit the number of entries to show")
}

func runReflog(cmd *cobra.Command, args []string) error {
	c, err := initContext()
	if err != nil {
		return err
	}
	defer c.Close()

	updates, err := c.Repo.Reflog(reflogLimit)
	if err != nil {
		return fmt.Errorf("failed to read reflog: %w", err)
	}

	if len(updates) == 0 {
		fmt.Println("No ref updates yet")
		return nil
	}

	yellow := color.New(color.FgYellow)
	for _, u := range updates {
		yellow.Printf("%-8s ", formatRefValue(u.Action, u.NewValue))
		fmt.Printf("%s %s: %s\n", u.Ref, u.Action, u.Message)
	}
	return nil
}

// formatRefValue renders a reflog value: short commit IDs for branch
// moves, branch names for switches, "(empty)" for unborn branches.
func formatRefValue(action models.RefAction, value string) string {
	if value == "" {
		return "(empty)"
	}
	if action == models.RefActionSwitch {
		return value
	}
	return shortID(value)
}
