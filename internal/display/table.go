package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/grovetools/codeclean/internal/transform"
)

// PrintTransformsTable prints the registered transformations in a formatted table.
func PrintTransformsTable(infos []transform.Info, defaultName string, writer io.Writer) {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tDEFAULT\tDESCRIPTION")
	for _, info := range infos {
		marker := ""
		if info.Name == defaultName {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", info.Name, marker, info.Description)
	}
	w.Flush()
}
