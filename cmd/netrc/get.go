package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <host>",
	Short: "Print the credentials for a host",
	Long:  "Look up the entry for a host, falling back to the default entry when no machine block matches.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().Bool("no-fallback", false, "Do not fall back to the default entry")
	getCmd.Flags().Bool("login-only", false, "Print only the login")
	getCmd.Flags().Bool("password-only", false, "Print only the password")

	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	host := args[0]
	noFallback, _ := cmd.Flags().GetBool("no-fallback")
	loginOnly, _ := cmd.Flags().GetBool("login-only")
	passwordOnly, _ := cmd.Flags().GetBool("password-only")

	path, err := resolvePath()
	if err != nil {
		return err
	}
	nrc, err := loadStore(path)
	if err != nil {
		return err
	}

	entry := nrc.Find(host)
	if noFallback {
		entry = nrc.Machine(host)
	}
	if entry == nil {
		return fmt.Errorf("no entry for %q in %s", host, path)
	}

	switch {
	case loginOnly:
		fmt.Fprintln(cmd.OutOrStdout(), entry.Login)
	case passwordOnly:
		fmt.Fprintln(cmd.OutOrStdout(), entry.Password)
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "login %s\n", entry.Login)
		if entry.Account != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "account %s\n", entry.Account)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "password %s\n", entry.Password)
	}
	return nil
}
