package cli

import (
	"fmt"
	"os"

	"github.com/kilupskalvis/mini/internal/core"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new mini repository",
	Long: `Initialize a new mini repository in the current directory.
This creates a .mini directory with an empty staging area, no commits,
and a single branch that HEAD points at.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var (
	initDefaultBranch string
	initAuthor        string
)

func init() {
	initCmd.Flags().StringVar(&initDefaultBranch, "default-branch", "main", "Name of the initial branch")
	initCmd.Flags().StringVar(&initAuthor, "author", "", "Default commit author saved in the config")
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	repo, err := core.Init(cwd,
		core.WithLogger(logger),
		core.WithDefaultBranch(initDefaultBranch),
		core.WithAuthor(initAuthor),
	)
	if err != nil {
		return err
	}
	defer repo.Close()

	fmt.Printf("Initialized empty mini repository in %s\n", repo.Path())
	fmt.Printf("On branch %s\n", repo.Config().DefaultBranch)
	return nil
}
