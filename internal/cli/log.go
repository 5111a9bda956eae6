package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show commit history",
	Long:  `Display the history of the current branch, newest commit first.`,
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

var (
	logOneline bool
	logLimit   int
)

func init() {
	logCmd.Flags().BoolVar(&logOneline, "oneline", false, "Show each commit on a single line")
	logCmd.Flags().IntVarP(&logLimit, "n", "n", 0, "Limit the number of commits to show")
}

func runLog(cmd *cobra.Command, args []string) error {
	c, err := initContext()
	if err != nil {
		return err
	}
	defer c.Close()

	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	shown := 0
	for commit, err := range c.Repo.Log() {
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}

		isHead := shown == 0
		if logOneline {
			yellow.Printf("%s ", commit.ShortID())
			if isHead {
				cyan.Print("(HEAD) ")
			}
			fmt.Println(commit.Message)
		} else {
			yellow.Printf("commit %s", commit.ID)
			if isHead {
				cyan.Print(" (HEAD)")
			}
			fmt.Println()
			fmt.Printf("Author: %s\n", commit.Author)
			fmt.Printf("Date:   %s\n", commit.Timestamp.Format("Mon Jan 2 15:04:05 2006 -0700"))
			fmt.Printf("\n    %s\n", commit.Message)
			fmt.Printf("    (%d files)\n\n", len(commit.Files))
		}

		shown++
		if logLimit > 0 && shown >= logLimit {
			break
		}
	}

	if shown == 0 {
		fmt.Println("No commits yet")
	}
	return nil
}
