package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var branchCmd = &cobra.Command{
	Use:   "branch",
	Short: "List, create, or switch branches",
	Long: `Manage branches in the mini repository.

Without flags, lists all branches.

Examples:
  mini branch              # List all branches
  mini branch -c feature   # Create 'feature' with no commits
  mini branch -s feature   # Point HEAD at 'feature'
  mini branch -c x -s x    # Create and switch in one step`,
	Args: cobra.NoArgs,
	RunE: runBranch,
}

var (
	branchCreate string
	branchList   bool
	branchSwitch string
)

func init() {
	branchCmd.Flags().StringVarP(&branchCreate, "create", "c", "", "Create a new branch (resets an existing one)")
	branchCmd.Flags().BoolVarP(&branchList, "list", "l", false, "List all branches")
	branchCmd.Flags().StringVarP(&branchSwitch, "switch", "s", "", "Switch to a branch")
}

func runBranch(cmd *cobra.Command, args []string) error {
	c, err := initContext()
	if err != nil {
		return err
	}
	defer c.Close()

	repo := c.Repo

	if branchCreate != "" {
		if err := repo.CreateBranch(branchCreate); err != nil {
			return err
		}
		fmt.Printf("Created branch '%s'\n", branchCreate)
	}

	if branchSwitch != "" {
		if err := repo.SwitchBranch(branchSwitch); err != nil {
			return err
		}
		fmt.Printf("Switched to branch '%s'\n", branchSwitch)
	}

	if !branchList && (branchCreate != "" || branchSwitch != "") {
		return nil
	}

	branches, currentBranch, err := repo.ListBranches()
	if err != nil {
		return fmt.Errorf("failed to list branches: %w", err)
	}

	green := color.New(color.FgGreen)
	for _, branch := range branches {
		if branch.Name == currentBranch {
			green.Printf("* %s\n", branch.Name)
		} else {
			fmt.Printf("  %s\n", branch.Name)
		}
	}
	return nil
}
