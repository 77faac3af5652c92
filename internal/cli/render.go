package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/trellis-dev/trellis/pkg/cache"
	"github.com/trellis-dev/trellis/pkg/diagram"
	"github.com/trellis-dev/trellis/pkg/dot"
	"github.com/trellis-dev/trellis/pkg/graph"
	"github.com/trellis-dev/trellis/pkg/graphfile"
)

// Output formats for the render command.
const (
	formatText = "text"
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatPNG  = "png"
)

// renderArtifactTTL bounds how long cached SVG and PNG output stays valid.
const renderArtifactTTL = 7 * 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format  string // output format: text, dot, svg, or png
	output  string // output file path; empty means stdout (text and dot only)
	noCache bool   // skip the rendered-artifact cache
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw a graph file as a diagram",
		Long:  `Render reads a JSON graph file and draws it: an ASCII diagram by default, or Graphviz DOT, SVG, or PNG with --format.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyRenderConfig(&opts, configFromContext(cmd.Context()))
			return runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: text, dot, svg, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout, or <file>.<format> for svg/png)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "render without the artifact cache")
	return cmd
}

// applyRenderConfig fills unset flags from the loaded config.
func applyRenderConfig(opts *renderOpts, cfg Config) {
	if opts.format == "" {
		opts.format = cfg.Render.Format
	}
	if opts.format == "" {
		opts.format = formatText
	}
	if opts.output == "" {
		opts.output = cfg.Render.Output
	}
}

func runRender(ctx context.Context, path string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	g, err := graphfile.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded graph", "path", path, "nodes", g.Len(), "edges", len(g.Edges()))

	p := newProgress(logger)
	out, binary, err := renderAs(ctx, g, opts.format, newRenderCache(opts.noCache))
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %d nodes as %s", g.Len(), opts.format))

	target := opts.output
	if target == "" && binary {
		target = outputPath(path, opts.format)
	}
	if target == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	printSuccess("Rendered %s", filepath.Base(path))
	printFile(target)
	return nil
}

// renderAs produces the rendered bytes for one format. The second return
// reports whether the output is binary and must go to a file. Graphviz
// output is served from c when the same DOT source was rendered before.
func renderAs(ctx context.Context, g *graph.Graph[string], format string, c cache.Cache) ([]byte, bool, error) {
	switch format {
	case formatText:
		return []byte(diagram.Render(g)), false, nil
	case formatDOT:
		return []byte(dot.ToDOT(g)), false, nil
	case formatSVG, formatPNG:
		out, err := renderGraphviz(ctx, dot.ToDOT(g), format, c)
		return out, true, err
	default:
		return nil, false, fmt.Errorf("unknown format %q (want text, dot, svg, or png)", format)
	}
}

func renderGraphviz(ctx context.Context, src, format string, c cache.Cache) ([]byte, error) {
	key := cache.RenderKey(src, format)
	if out, hit, err := c.Get(ctx, key); err == nil && hit {
		loggerFromContext(ctx).Debug("artifact cache hit", "format", format)
		return out, nil
	}

	var (
		out []byte
		err error
	)
	if format == formatSVG {
		out, err = dot.RenderSVG(ctx, src)
	} else {
		out, err = dot.RenderPNG(ctx, src)
	}
	if err != nil {
		return nil, err
	}

	if err := c.Set(ctx, key, out, renderArtifactTTL); err != nil {
		loggerFromContext(ctx).Debug("artifact cache write failed", "err", err)
	}
	return out, nil
}

// newRenderCache opens the artifact cache, falling back to a no-op cache
// when disabled or when the cache directory is unavailable.
func newRenderCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/trellis/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// outputPath derives the default output file for binary formats:
// the input path with its extension swapped for the format.
func outputPath(input, format string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + format
}
