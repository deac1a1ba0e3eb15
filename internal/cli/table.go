package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/opencode-ai/choreo/internal/tui/styles"
)

const tablePadding = 2

// writeTable renders rows with aligned columns. The header line is styled
// after alignment, and only on a terminal.
func writeTable(out io.Writer, headers []string, rows [][]string) error {
	var buf bytes.Buffer
	writer := tabwriter.NewWriter(&buf, 0, 0, tablePadding, ' ', 0)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	text := buf.String()
	if len(headers) > 0 && stdoutIsTTY() {
		header, rest, _ := strings.Cut(text, "\n")
		style := styles.BuildStyles(styles.ThemeByName(GetConfig().Preview.Theme)).Header
		text = style.Render(strings.TrimRight(header, " ")) + "\n" + rest
	}

	_, err := io.WriteString(out, text)
	return err
}

func formatOptional(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
