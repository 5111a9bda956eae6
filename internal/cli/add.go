package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <file>...",
	Short: "Add files to the staging area",
	Long: `Copy files into the staging area for the next commit.

Files are keyed by base name: adding dir/a.txt after other/a.txt keeps
only the latest copy. Files matching a pattern in .miniignore are skipped.

Examples:
  mini add a.txt            Stage a single file
  mini add a.txt b.txt      Stage several files`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	c, err := initContext()
	if err != nil {
		return err
	}
	defer c.Close()

	green := color.New(color.FgGreen)
	totalStaged := 0

	for _, path := range args {
		entry, err := c.Repo.Stage(path)
		if err != nil {
			return fmt.Errorf("failed to stage %s: %w", path, err)
		}
		if entry == nil {
			fmt.Printf("ignored %s\n", path)
			continue
		}
		totalStaged++
	}

	if totalStaged == 0 {
		fmt.Println("No files staged")
	} else {
		green.Printf("Staged %d file(s)\n", totalStaged)
	}
	return nil
}
