package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var commitCmd = &cobra.Command{
	Use:   "commit <message>",
	Short: "Record staged files as a new commit",
	Long: `Create a new commit from the staging area on the current branch.

The author comes from --author, or from the author in .mini/config.
Committing with nothing staged records an empty snapshot.`,
	Args: cobra.ExactArgs(1),
	RunE: runCommit,
}

var commitAuthor string

func init() {
	commitCmd.Flags().StringVarP(&commitAuthor, "author", "a", "", "Author of the commit")
}

func runCommit(cmd *cobra.Command, args []string) error {
	c, err := initContext()
	if err != nil {
		return err
	}
	defer c.Close()

	author := resolveAuthor(commitAuthor, c.Repo.Config().Author)
	if author == "" {
		return errors.New("author required: pass --author or set author in .mini/config")
	}

	commit, err := c.Repo.Commit(args[0], author)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	green.Printf("[%s] %s\n", commit.ShortID(), commit.Message)
	fmt.Printf(" %d file(s)\n", len(commit.Files))
	return nil
}

// resolveAuthor prefers the flag value over the configured default
func resolveAuthor(flagValue, configured string) string {
	if flagValue != "" {
		return flagValue
	}
	return configured
}
