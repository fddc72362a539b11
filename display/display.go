package display

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/winnowlabs/winnow/analysis"
)

// Render pretty-prints the nested output of Container.Raw: group keys
// become tree nodes, with leaf sequences or terminal values indented
// beneath them. Keys are ordered by their string form so output is
// deterministic.
func Render(raw any) string {
	w := list.NewWriter()
	w.SetStyle(list.StyleConnectedLight)
	appendValue(w, raw)
	return w.Render()
}

// RenderContainer renders a container's raw payload.
func RenderContainer(c analysis.Container) string {
	return Render(c.Raw())
}

func appendValue(w list.Writer, v any) {
	switch data := v.(type) {
	case map[any]any:
		for _, key := range sortedKeys(data) {
			w.AppendItem(fmt.Sprint(key))
			w.Indent()
			appendValue(w, data[key])
			w.UnIndent()
		}
	case []any:
		for _, item := range data {
			w.AppendItem(fmt.Sprint(item))
		}
	default:
		w.AppendItem(fmt.Sprint(v))
	}
}

// Table renders rows under a header as a flat summary table.
func Table(header []string, rows [][]any) string {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	hdr := make(table.Row, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	w.AppendHeader(hdr)
	for _, row := range rows {
		w.AppendRow(table.Row(row))
	}
	return w.Render()
}

// GroupTable renders a one-level grouped payload (group key to terminal
// value) as a two-column table, rows ordered by the key's string form.
// It reports false when the payload is not a flat grouping.
func GroupTable(raw any) (string, bool) {
	groups, ok := raw.(map[any]any)
	if !ok {
		return "", false
	}
	rows := make([][]any, 0, len(groups))
	for _, key := range sortedKeys(groups) {
		if _, nested := groups[key].(map[any]any); nested {
			return "", false
		}
		rows = append(rows, []any{key, groups[key]})
	}
	return Table([]string{"group", "value"}, rows), true
}

func sortedKeys(m map[any]any) []any {
	keys := make([]any, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	return keys
}
