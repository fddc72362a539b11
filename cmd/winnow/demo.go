package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winnowlabs/winnow/analysis"
	"github.com/winnowlabs/winnow/display"
	"github.com/winnowlabs/winnow/pipeline"
)

// demoRecords are the sample measurements the demo pipeline runs over.
// One oversized record exists to show the filter step at work.
var demoRecords = []analysis.Record{
	{"name": "foo", "label": "first", "size": 2},
	{"name": "foo", "label": "first", "size": 2},
	{"name": "foo", "label": "third", "size": 4},
	{"name": "bar", "label": "second", "size": 3},
	{"name": "bar", "label": "third", "size": 1},
	{"name": "baz", "label": "huge", "size": 9},
}

func newDemoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in sample pipeline",
		Long: `Demo runs a fixed pipeline over built-in sample records: drop
oversized records, group by name and then by label, and sum the sizes
within each group.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := pipeline.New("demo",
				analysis.FieldAtMost("size", 4),
				analysis.GroupByField("name"),
				analysis.GroupByField("label"),
				analysis.SumField("size"),
			)

			in, err := analysis.FromRaw(demoRecords)
			if err != nil {
				return err
			}
			out, err := p.Run(in)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), display.RenderContainer(out))
			return nil
		},
	}
}
