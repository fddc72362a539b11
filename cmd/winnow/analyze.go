package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/winnowlabs/winnow/analysis"
	"github.com/winnowlabs/winnow/display"
	"github.com/winnowlabs/winnow/pipeline"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var groupBy []string
	var maxField string
	var maxValue float64
	var sumField string
	var count bool
	var format string

	cmd := &cobra.Command{
		Use:   "analyze <records.json>",
		Short: "Run an analysis pipeline over a JSON array of records",
		Long: `Analyze reads a JSON array of objects and threads it through a
pipeline assembled from the flags: an optional numeric filter, one
grouping level per --group-by field (in order), and an optional
sum or count reduction. The result is printed as a tree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if sumField != "" && count {
				return fmt.Errorf("--sum and --count are mutually exclusive")
			}

			records, err := readRecords(args[0])
			if err != nil {
				return err
			}

			p := pipeline.New("analyze")
			if maxField != "" {
				p.Add(analysis.FieldAtMost(maxField, maxValue))
			}
			for _, field := range groupBy {
				p.Add(analysis.GroupByField(field))
			}
			if sumField != "" {
				p.Add(analysis.SumField(sumField))
			}
			if count {
				p.Add(analysis.CountItems())
			}

			in, err := analysis.FromRaw(records)
			if err != nil {
				return err
			}
			out, err := p.Run(in)
			if err != nil {
				return err
			}

			switch format {
			case "tree":
				fmt.Fprintln(cmd.OutOrStdout(), display.RenderContainer(out))
			case "table":
				rendered, ok := display.GroupTable(out.Raw())
				if !ok {
					return fmt.Errorf("table format requires a single --group-by with --sum or --count")
				}
				fmt.Fprintln(cmd.OutOrStdout(), rendered)
			default:
				return fmt.Errorf("unknown format %q (want tree or table)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&groupBy, "group-by", nil, "Group records by this field (repeatable, applied in order)")
	cmd.Flags().StringVar(&maxField, "max-field", "", "Keep only records whose numeric field is at most --max")
	cmd.Flags().Float64Var(&maxValue, "max", 0, "Upper bound used with --max-field")
	cmd.Flags().StringVar(&sumField, "sum", "", "Reduce each group to the sum of this numeric field")
	cmd.Flags().BoolVar(&count, "count", false, "Reduce each group to its record count")
	cmd.Flags().StringVar(&format, "format", "tree", "Output format: tree or table")

	return cmd
}

// readRecords decodes a JSON array of objects into engine records.
func readRecords(path string) ([]analysis.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var records []analysis.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding %s: expected a JSON array of objects: %w", path, err)
	}
	return records, nil
}
