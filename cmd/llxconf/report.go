package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ava12/llxconf/configset"
	"github.com/ava12/llxconf/conflict"
	"github.com/ava12/llxconf/interval"
)

const defaultCapacity = 64

const (
	formatText = "text"
	formatYaml = "yaml"
)

type configRec struct {
	State   int    `yaml:"state"`
	Alt     int    `yaml:"alt"`
	Context string `yaml:"context,omitempty"`
}

type decisionRec struct {
	Name    string      `yaml:"name"`
	Prune   []int       `yaml:"prune,omitempty"`
	Configs []configRec `yaml:"configs"`
}

type document struct {
	Capacity  int           `yaml:"capacity,omitempty"`
	Decisions []decisionRec `yaml:"decisions"`
}

type decisionReport struct {
	Name     string `yaml:"name"`
	Configs  int    `yaml:"configs"`
	Alts     string `yaml:"alts"`
	Conflict string `yaml:"conflict"`
	SameAs   string `yaml:"sameAs,omitempty"`
}

const (
	noConflict      = "none"
	exactConflict   = "exact"
	inexactConflict = "inexact"
)

func newReportCommand() *cobra.Command {
	var (
		format   string
		capacity int
	)

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Print conflicts of prediction decisions described in YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usagef("specify exactly one input file")
			}
			if format != formatText && format != formatYaml {
				return usagef("unknown format %q", format)
			}

			src, e := os.ReadFile(args[0])
			if e != nil {
				return e
			}

			var doc document
			if e = yaml.Unmarshal(src, &doc); e != nil {
				return fmt.Errorf("%s: %w", args[0], e)
			}
			if cmd.Flags().Changed("capacity") || doc.Capacity == 0 {
				doc.Capacity = capacity
			}
			if doc.Capacity > maxCapacity {
				return usagef("capacity %d exceeds limit %d", doc.Capacity, maxCapacity)
			}

			reports, e := buildReports(&doc)
			if e != nil {
				return fmt.Errorf("%s: %w", args[0], e)
			}

			return writeReports(cmd.OutOrStdout(), format, reports)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text or yaml")
	cmd.Flags().IntVarP(&capacity, "capacity", "c", defaultCapacity, "alternative bitmap capacity")
	return cmd
}

func buildReports(doc *document) ([]decisionReport, error) {
	reports := make([]decisionReport, 0, len(doc.Decisions))
	seen := conflict.NewRegistry(len(doc.Decisions))
	owners := make(map[*conflict.Record]string)

	for _, d := range doc.Decisions {
		cs, e := configset.New(doc.Capacity)
		if e != nil {
			return nil, e
		}
		for _, c := range d.Configs {
			if e := cs.Add(configset.Config{State: c.State, Alt: c.Alt, Context: c.Context}); e != nil {
				return nil, fmt.Errorf("decision %s: %w", d.Name, e)
			}
		}
		for _, alt := range d.Prune {
			cs.RemoveAlt(alt)
		}

		entry := log.WithFields(logrus.Fields{
			"decision": d.Name,
			"configs":  cs.Len(),
			"alts":     cs.Alternatives().String(),
		})

		report := decisionReport{
			Name:     d.Name,
			Configs:  cs.Len(),
			Alts:     interval.FromBitmap(cs.Alternatives()).String(),
			Conflict: noConflict,
		}

		r := cs.Conflict()
		if r != nil {
			report.Conflict = inexactConflict
			if r.Exact() {
				report.Conflict = exactConflict
			}

			stored, added := seen.Add(r)
			if added {
				owners[stored] = d.Name
			} else {
				report.SameAs = owners[stored]
			}
			entry = entry.WithField("hash", fmt.Sprintf("%016x", r.Hash()))
		}

		entry.Debug(report.Conflict)
		reports = append(reports, report)
	}

	return reports, nil
}

func writeReports(w io.Writer, format string, reports []decisionReport) error {
	if format == formatYaml {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if e := enc.Encode(reports); e != nil {
			return e
		}
		return enc.Close()
	}

	for _, r := range reports {
		line := fmt.Sprintf("%s: alts=%s conflict=%s", r.Name, r.Alts, r.Conflict)
		if r.SameAs != "" {
			line += " same-as=" + r.SameAs
		}
		if _, e := fmt.Fprintln(w, line); e != nil {
			return e
		}
	}
	return nil
}
