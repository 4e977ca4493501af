// Command rroute resolves fragment trees and links from the command line.
//
//	rroute resolve --tree app.yaml --location "/home/messages?tab=inbox"
//	rroute render  --tree app.yaml --location /home
//	rroute href "/search?q=go" --location "/home?lang=en" --persist-query
package main

import (
	"fmt"
	"os"

	"github.com/rohanthewiz/rroute/core/ids"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	locationFlag string
	basenameFlag string
	verboseFlag  bool
	idsFlag      string
)

var rootCmd = &cobra.Command{
	Use:          "rroute",
	Short:        "Resolve route fragments and links against a location",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&locationFlag, "location", "l", "/", "current location (pathname and optional ?query)")
	rootCmd.PersistentFlags().StringVar(&basenameFlag, "basename", "", "prefix for every link href")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log resolution decisions")
	rootCmd.PersistentFlags().StringVar(&idsFlag, "ids", "seq", "fragment id format: seq or ulid")

	rootCmd.AddCommand(resolveCmd, renderCmd, hrefCmd)
}

// idGenerator maps the --ids flag to a generator.
func idGenerator() (ids.Generator, error) {
	switch idsFlag {
	case "seq", "":
		return ids.NewSequence("f"), nil
	case "ulid":
		return ids.NewULID(), nil
	default:
		return nil, fmt.Errorf("unknown id format %q (want seq or ulid)", idsFlag)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
