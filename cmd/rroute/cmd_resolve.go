package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rohanthewiz/rroute"
	"github.com/rohanthewiz/rroute/internal/treefile"
	"github.com/spf13/cobra"
)

var (
	treeFlag    string
	metricsFlag bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "List the fragments shown for the location",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolve(cmd.OutOrStdout(), false)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the leaves shown for the location as HTML",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolve(cmd.OutOrStdout(), true)
	},
}

func init() {
	for _, c := range []*cobra.Command{resolveCmd, renderCmd} {
		c.Flags().StringVarP(&treeFlag, "tree", "t", "", "YAML fragment tree file")
		c.Flags().BoolVar(&metricsFlag, "metrics", false, "print resolution counters after the pass")
		_ = c.MarkFlagRequired("tree")
	}
}

func runResolve(out io.Writer, render bool) error {
	gen, err := idGenerator()
	if err != nil {
		return err
	}

	root, err := treefile.Load(treeFlag, gen)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	sink, err := rroute.NewPrometheusSink(reg)
	if err != nil {
		return err
	}

	resolver := rroute.NewResolver(rroute.Options{Sink: sink})

	pass, err := resolver.Resolve(rroute.ParseLocation(locationFlag), root)
	if err != nil {
		return err
	}

	if render {
		fmt.Fprintln(out, pass.HTML())
	} else {
		printActivations(out, pass)
	}

	if metricsFlag {
		return printMetrics(out, reg)
	}
	return nil
}

func printActivations(out io.Writer, pass *rroute.Pass) {
	if len(pass.Activations()) == 0 {
		fmt.Fprintln(out, "no fragments shown")
		return
	}

	for _, a := range pass.Activations() {
		name := a.Name
		if name == "" {
			name = string(a.ID)
		}

		line := fmt.Sprintf("%-20s %-10s %s", name, a.Variant, a.Pattern)
		if len(a.Params) > 0 {
			parts := make([]string, 0, len(a.Params))
			for _, p := range a.Params {
				parts = append(parts, p.Key+"="+p.Value)
			}
			line += "  [" + strings.Join(parts, " ") + "]"
		}
		fmt.Fprintln(out, strings.TrimRight(line, " "))
	}
}

func printMetrics(out io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}

	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
	return nil
}
