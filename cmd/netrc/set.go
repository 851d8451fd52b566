package main

import (
	"fmt"

	"github.com/gribouille/netrc"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <host>",
	Short: "Add or update an entry",
	Long:  "Insert or update the entry for a host and write the file back. Only the fields given as flags change; \"default\" as the host edits the default entry.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSet,
}

func init() {
	setCmd.Flags().String("login", "", "Login to set")
	setCmd.Flags().String("password", "", "Password to set")
	setCmd.Flags().String("account", "", "Account to set")

	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	host := args[0]

	path, err := resolvePath()
	if err != nil {
		return err
	}
	nrc, err := loadStore(path)
	if err != nil {
		return err
	}

	var entry netrc.Entry
	if host == "default" {
		if def := nrc.Default(); def != nil {
			entry = *def
		}
	} else if existing := nrc.Machine(host); existing != nil {
		entry = *existing
	}

	if cmd.Flags().Changed("login") {
		entry.Login, _ = cmd.Flags().GetString("login")
	}
	if cmd.Flags().Changed("password") {
		entry.Password, _ = cmd.Flags().GetString("password")
	}
	if cmd.Flags().Changed("account") {
		entry.Account, _ = cmd.Flags().GetString("account")
	}

	if host == "default" {
		nrc.SetDefault(entry)
	} else {
		nrc.Set(host, entry)
	}

	if err := nrc.Save(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "updated %s in %s\n", host, path)
	return nil
}
