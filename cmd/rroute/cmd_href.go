package main

import (
	"fmt"
	"strings"

	"github.com/rohanthewiz/rroute"
	"github.com/spf13/cobra"
)

var (
	persistQueryFlag bool
	replaceFlag      bool
	activeStyleFlag  []string
	textFlag         string
)

var hrefCmd = &cobra.Command{
	Use:   "href <target>",
	Short: "Resolve a link target against the location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		link := rroute.Link{
			Href:         args[0],
			PersistQuery: persistQueryFlag,
			ReplaceState: replaceFlag,
			Text:         textFlag,
		}

		if len(activeStyleFlag) > 0 {
			style, err := parseStyle(activeStyleFlag)
			if err != nil {
				return err
			}
			link.ActiveProps = &rroute.Props{Style: style}
		}

		store := rroute.NewMemoryStore(rroute.ParseLocation(locationFlag))
		nav := rroute.NewNavigator(store, rroute.Options{Basename: basenameFlag})

		anchor, err := nav.Anchor(link)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "href:   %s\n", anchor.Href)
		fmt.Fprintf(out, "active: %t\n", anchor.Active)
		fmt.Fprintf(out, "html:   %s\n", anchor.HTML())

		// Simulate a plain click to show the dispatched action
		if _, err = nav.Click(link, &rroute.Event{}); err != nil {
			return err
		}
		for _, action := range store.Actions() {
			fmt.Fprintf(out, "action: %s %s persistQuery=%t\n",
				action.Type, action.Payload.Location().String(), action.Payload.Options.PersistQuery)
		}
		fmt.Fprintf(out, "store:  %s\n", store.Location().String())
		return nil
	},
}

func init() {
	hrefCmd.Flags().BoolVar(&persistQueryFlag, "persist-query", false, "carry the current query into the target")
	hrefCmd.Flags().BoolVar(&replaceFlag, "replace", false, "dispatch REPLACE instead of PUSH")
	hrefCmd.Flags().StringSliceVar(&activeStyleFlag, "active-style", nil, "style applied when active, as prop=value")
	hrefCmd.Flags().StringVar(&textFlag, "text", "", "anchor text")
}

func parseStyle(decls []string) (rroute.Style, error) {
	style := make(rroute.Style, len(decls))
	for _, d := range decls {
		prop, value, ok := strings.Cut(d, "=")
		if !ok || prop == "" {
			return nil, fmt.Errorf("invalid style declaration %q, want prop=value", d)
		}
		style[prop] = value
	}
	return style, nil
}
