package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trellis-dev/trellis/pkg/graphfile"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarize a graph file's structure",
		Long:  `Inspect reads a JSON graph file and reports node and edge counts, sources and sinks, a topological order, and the connected components.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
}

func runInspect(cmd *cobra.Command, path string) error {
	logger := loggerFromContext(cmd.Context())

	g, err := graphfile.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded graph", "path", path)

	fmt.Println(StyleTitle.Render(path))
	printKeyValue("nodes", StyleNumber.Render(fmt.Sprint(g.Len())))
	printKeyValue("edges", StyleNumber.Render(fmt.Sprint(len(g.Edges()))))
	printKeyValue("sources", strings.Join(g.Sources(), ", "))
	printKeyValue("sinks", strings.Join(g.Sinks(), ", "))
	printKeyValue("order", strings.Join(g.Ordering(), " "+iconArrow+" "))

	// Partition consumes the graph, so it runs last.
	var sizes []string
	for part := range g.Partition().Seq() {
		sizes = append(sizes, fmt.Sprint(part.Len()))
	}
	printKeyValue("components", fmt.Sprintf("%d (sizes %s)", len(sizes), strings.Join(sizes, ", ")))
	return nil
}
