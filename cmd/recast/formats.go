package main

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"recast/internal/format"
)

// renderFormatsTable lists the preset catalog: token, derived extension and
// a short description. The rounded style is reserved for real terminals so
// piped output stays plain ASCII.
func renderFormatsTable(out io.Writer) string {
	tw := table.NewWriter()
	if isTerminal(out) {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	tw.AppendHeader(table.Row{"Format", "Output", "Description"})
	for _, preset := range format.Presets() {
		tw.AppendRow(table.Row{preset.String(), outputRule(preset), preset.Description()})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func outputRule(preset format.Preset) string {
	switch preset {
	case format.Copy:
		return "<name>.copy.<ext>"
	default:
		out, err := preset.OutputPath("<name>.<ext>")
		if err != nil {
			return ""
		}
		return out
	}
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
