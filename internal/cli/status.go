package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the repository status",
	Long:  `Show the current branch and the files staged for the next commit.`,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	c, err := initContext()
	if err != nil {
		return err
	}
	defer c.Close()

	status, err := c.Repo.Status()
	if err != nil {
		return err
	}

	fmt.Printf("On branch %s\n", status.BranchName)
	if status.CommitID != "" {
		fmt.Printf("Commit: %s\n", shortID(status.CommitID))
	} else {
		fmt.Println("No commits yet")
	}

	if len(status.Staged) == 0 {
		fmt.Println("\nNothing staged")
		return nil
	}

	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	fmt.Println("\nChanges to be committed:")
	cyan.Println("  (use \"mini reset <name>\" to unstage)")
	fmt.Println()
	for _, name := range status.Staged {
		green.Printf("        %s\n", name)
	}

	fmt.Printf("\n%d staged\n", len(status.Staged))
	fmt.Println("\nUse 'mini commit \"message\" -a <author>' to commit changes.")
	return nil
}
