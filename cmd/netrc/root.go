package main

import (
	"errors"
	"io/fs"

	"github.com/gribouille/netrc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "netrc",
	Short:         "Inspect and edit netrc credential files",
	Long:          "netrc reads, queries, edits, and reformats .netrc credential files as used by ftp, curl, and other HTTP tools.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("file", "f", "", "netrc file (default: NETRC env var, then ~/.netrc)")

	_ = viper.BindPFlag("file", rootCmd.PersistentFlags().Lookup("file"))
}

func initConfig() {
	viper.SetEnvPrefix("NETRC")
	viper.AutomaticEnv()
}

// resolvePath returns the netrc file the command operates on: the --file
// flag (or NETRC_FILE env var) when given, otherwise the conventional
// location.
func resolvePath() (string, error) {
	if p := viper.GetString("file"); p != "" {
		return p, nil
	}
	return netrc.DefaultPath()
}

// loadStore parses the file at path. A missing file is an empty store so
// that set works on a fresh machine.
func loadStore(path string) (*netrc.Netrc, error) {
	nrc, err := netrc.ParseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return netrc.New(), nil
	}
	return nrc, err
}
