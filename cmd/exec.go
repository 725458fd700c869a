// Copyright (c) 2025 Tunestat
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"tunestat/cli/internal/terminal"
)

var execYes bool

// execCmd runs a mutating statement in autocommit mode. Each statement
// commits immediately; there is no transaction spanning calls, and the
// scoped connection is released whether the statement succeeds or fails.
var execCmd = &cobra.Command{
	Use:   "exec <sql>",
	Short: "Run a mutating statement (autocommit)",
	Long: `The exec command executes a single mutating SQL statement against the
database file. The connection is opened read-write in autocommit mode: the
statement commits as soon as it completes, with no transaction left open.

Because the practice database is normally treated as read-only source data,
exec asks for confirmation first. Pass --yes to skip the prompt.`,
	Example: `  tunestat exec "UPDATE customer SET country = 'USA' WHERE country = 'United States'"
  tunestat exec --yes "DELETE FROM scratch_results"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, resolved, err := openStore()
		if err != nil {
			return err
		}

		if !execYes {
			prompt := "This statement modifies " + resolved.Path + ". Continue? [y/N] "
			pterm.Print(pterm.NewStyle(pterm.FgYellow).Sprint(prompt))
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			terminal.ClearPreviousLines(len(prompt) + len(answer))
			if answer != "y" && answer != "yes" {
				pterm.Println("Aborted.")
				return nil
			}
		}

		affected, err := s.Exec(context.Background(), args[0])
		if err != nil {
			return err
		}

		pterm.Printf("OK, %d row(s) affected\n", affected)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().BoolVarP(&execYes, "yes", "y", false, "Skip the confirmation prompt")
}
