package main

import (
	"encoding/json"
	"fmt"

	"github.com/gribouille/netrc"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all entries",
	Long:  "List every machine entry plus the default entry, in file order. Passwords are masked unless --show-secrets is given.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringP("output", "o", "text", "Output format: text, json, or yaml")
	listCmd.Flags().Bool("show-secrets", false, "Print passwords instead of masking them")

	rootCmd.AddCommand(listCmd)
}

// hostRecord is the list output row for one entry.
type hostRecord struct {
	Machine  string `json:"machine" yaml:"machine"`
	Login    string `json:"login,omitempty" yaml:"login,omitempty"`
	Account  string `json:"account,omitempty" yaml:"account,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
}

func runList(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("output")
	showSecrets, _ := cmd.Flags().GetBool("show-secrets")

	path, err := resolvePath()
	if err != nil {
		return err
	}
	nrc, err := loadStore(path)
	if err != nil {
		return err
	}

	records := make([]hostRecord, 0, nrc.Len()+1)
	for _, host := range nrc.Hosts() {
		records = append(records, record(host, nrc.Machine(host), showSecrets))
	}
	if def := nrc.Default(); def != nil {
		records = append(records, record("default", def, showSecrets))
	}

	out := cmd.OutOrStdout()
	switch format {
	case "text":
		for _, r := range records {
			fmt.Fprintf(out, "%s\tlogin=%s", r.Machine, r.Login)
			if r.Account != "" {
				fmt.Fprintf(out, "\taccount=%s", r.Account)
			}
			fmt.Fprintf(out, "\tpassword=%s\n", r.Password)
		}
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		return yaml.NewEncoder(out).Encode(records)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

func record(name string, e *netrc.Entry, showSecrets bool) hostRecord {
	r := hostRecord{
		Machine: name,
		Login:   e.Login,
		Account: e.Account,
	}
	if e.Password != "" {
		r.Password = "********"
		if showSecrets {
			r.Password = e.Password
		}
	}
	return r
}
