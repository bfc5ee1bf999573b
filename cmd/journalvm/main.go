// Package main provides the journalvm CLI: it converts fixture files into
// view-models and prints them as JSON or HTML previews.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

const (
	envConfig  = "JOURNALVM_CONFIG"
	envBaseURL = "JOURNALVM_BASE_URL"
)

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "journalvm: %v\n", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	baseURL    string
	format     string
	fragment   bool
	indent     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "journalvm",
		Short: "Convert journal content into view-models",
		Long: `journalvm converts references, digests, article listings and people
from a YAML fixture into the view-models consumed by the journal templates.

Output is JSON by default; --format html renders a preview page.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", os.Getenv(envConfig), "configuration file (env "+envConfig+")")
	flags.StringVar(&opts.baseURL, "base-url", os.Getenv(envBaseURL), "base URL for absolute links (env "+envBaseURL+")")
	flags.StringVarP(&opts.format, "format", "f", "json", "output format: json or html")
	flags.BoolVar(&opts.fragment, "fragment", false, "omit the HTML page wrapper")
	flags.BoolVar(&opts.indent, "indent", true, "pretty-print JSON output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log conversions to stderr")

	root.AddCommand(
		newReferencesCmd(opts),
		newListingCmd(opts),
		newDigestCmd(opts),
		newPeopleCmd(opts),
	)
	return root
}
