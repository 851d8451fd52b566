package main

import (
	"fmt"
	"os"

	"github.com/gribouille/netrc"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Rewrite the file in canonical form",
	Long: "Reformat the netrc file: one block per entry in file order, tab-indented fields ordered login, account, password, " +
		"quoting applied where needed. macdef blocks are not preserved, so files containing macros are refused unless --force is given.",
	Args: cobra.NoArgs,
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "Exit non-zero if the file is not canonical, without writing")
	fmtCmd.Flags().Bool("force", false, "Rewrite even when macdef blocks would be dropped")

	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, _ []string) error {
	check, _ := cmd.Flags().GetBool("check")
	force, _ := cmd.Flags().GetBool("force")

	path, err := resolvePath()
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	nrc, err := netrc.Parse(raw)
	if err != nil {
		return err
	}

	canonical := nrc.String()
	if string(raw) == canonical {
		return nil
	}

	if check {
		return fmt.Errorf("%s is not in canonical form", path)
	}
	if len(nrc.Macros) > 0 && !force {
		return fmt.Errorf("%s contains macdef blocks that reformatting would drop; use --force to rewrite anyway", path)
	}

	if err := os.WriteFile(path, []byte(canonical), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "rewrote %s\n", path)
	return nil
}
