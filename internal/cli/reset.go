package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <name>...",
	Short: "Remove files from the staging area",
	Long: `Remove staged entries by name. Working files are not touched.

Examples:
  mini reset a.txt          Unstage a.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	c, err := initContext()
	if err != nil {
		return err
	}
	defer c.Close()

	for _, name := range args {
		if err := c.Repo.Unstage(name); err != nil {
			return fmt.Errorf("failed to unstage %s: %w", name, err)
		}
		fmt.Printf("Unstaged %s\n", name)
	}
	return nil
}
