package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [<ref>]",
	Short: "Show a commit",
	Long: `Show the metadata and captured files of a commit.

The ref can be HEAD, HEAD~N, a branch name, or a full or short commit ID.
Defaults to HEAD.

Examples:
  mini show                 Show the current commit
  mini show HEAD~1          Show the parent of the current commit
  mini show abc1234 -f a.txt  Print a.txt as captured by abc1234`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

var showFile string

func init() {
	showCmd.Flags().StringVarP(&showFile, "file", "f", "", "Print the content of one captured file")
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := initContext()
	if err != nil {
		return err
	}
	defer c.Close()

	ref := "HEAD"
	if len(args) > 0 {
		ref = args[0]
	}

	if showFile != "" {
		data, err := c.Repo.ReadFile(ref, showFile)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	commit, err := c.Repo.Show(ref)
	if err != nil {
		return err
	}

	yellow := color.New(color.FgYellow)
	yellow.Printf("commit %s\n", commit.ID)
	if commit.ParentID != "" {
		fmt.Printf("Parent: %s\n", shortID(commit.ParentID))
	}
	fmt.Printf("Author: %s\n", commit.Author)
	fmt.Printf("Date:   %s\n", commit.Timestamp.Format("Mon Jan 2 15:04:05 2006 -0700"))
	fmt.Printf("\n    %s\n\n", commit.Message)

	if len(commit.Files) == 0 {
		fmt.Println("(no files)")
		return nil
	}
	for _, name := range commit.Files {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
