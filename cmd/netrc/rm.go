package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <host>",
	Short: "Remove an entry",
	Long:  "Remove the entry for a host and write the file back. \"default\" as the host removes the default entry.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	host := args[0]

	path, err := resolvePath()
	if err != nil {
		return err
	}
	nrc, err := loadStore(path)
	if err != nil {
		return err
	}

	if host == "default" {
		if nrc.Default() == nil {
			return fmt.Errorf("no default entry in %s", path)
		}
		nrc.ClearDefault()
	} else if !nrc.Remove(host) {
		return fmt.Errorf("no entry for %q in %s", host, path)
	}

	if err := nrc.Save(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %s from %s\n", host, path)
	return nil
}
