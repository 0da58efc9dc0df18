package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// renderOptions holds the render command's flags
type renderOptions struct {
	scene   string
	out     string
	texture string
	mesh    string
	workers int
	seed    int64
	spp     int
	depth   int
	width   int
	watch   bool
	verbose bool
	quiet   bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pathtracer",
		Short:        "Offline Monte Carlo path tracer",
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd(), newScenesCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a built-in scene or a scene description file",
		Example: "  pathtracer render --scene cornell-box --out cornell.png\n" +
			"  pathtracer render --scene scenes/demo.yaml --out - > demo.ppm",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose, opts.quiet)
			if opts.watch {
				return watchAndRender(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
			}
			return runRender(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.scene, "scene", "s", "material-spheres", "built-in scene name or path to a .yaml/.toml/.json description")
	flags.StringVarP(&opts.out, "out", "o", "", "output file (.ppm or .png), '-' for PPM on stdout; default output/<scene>/render_<timestamp>.png")
	flags.StringVar(&opts.texture, "texture", "", "image for the earth scene")
	flags.StringVar(&opts.mesh, "mesh", "", "OBJ or PLY file for the mesh scene")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "parallel row workers (0 = number of CPUs)")
	flags.Int64Var(&opts.seed, "seed", 0, "base random seed")
	flags.IntVar(&opts.spp, "spp", 0, "samples per pixel (0 = scene default)")
	flags.IntVar(&opts.depth, "depth", 0, "maximum bounce depth (0 = scene default)")
	flags.IntVar(&opts.width, "width", 0, "image width in pixels (0 = scene default)")
	flags.BoolVar(&opts.watch, "watch", false, "re-render whenever the scene file changes")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "only log warnings and errors")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	return cmd
}

func newScenesCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "scenes",
		Short: "List built-in scenes and scene description files",
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := scene.ListAllScenes(dir, newLogger(cmd.ErrOrStderr(), false, true))
			if err != nil {
				return err
			}

			out := termenv.NewOutput(cmd.OutOrStdout())
			for _, group := range response.Groups {
				fmt.Fprintln(cmd.OutOrStdout(), out.String(group.Name).Bold())
				for _, s := range group.Scenes {
					id := s.ID
					if s.Type == "file" {
						id = s.FilePath
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  %-20s %s\n", id, s.Description)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "scenes", "directory searched for scene description files")
	return cmd
}

// newLogger creates a text logger on w with the level chosen by the verbosity flags
func newLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// runRender loads the scene, renders it once and writes the image
func runRender(ctx context.Context, opts renderOptions, stdout, stderr io.Writer, logger *slog.Logger) error {
	s, err := scene.Load(opts.scene, scene.Options{
		TexturePath: opts.texture,
		MeshPath:    opts.mesh,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	camera := s.Camera
	if opts.width > 0 {
		if camera, err = camera.WithWidth(opts.width); err != nil {
			return err
		}
	}
	if opts.spp > 0 || opts.depth > 0 {
		spp, depth := camera.SamplesPerPixel(), camera.MaxDepth()
		if opts.spp > 0 {
			spp = opts.spp
		}
		if opts.depth > 0 {
			depth = opts.depth
		}
		camera = camera.WithSampling(spp, depth)
	}

	config := renderer.DefaultRenderConfig()
	config.Seed = opts.seed
	config.Background = s.Background
	if opts.workers > 0 {
		config.Workers = opts.workers
	}

	rt := renderer.NewRaytracer(s.World, camera, config, logger)
	if !opts.quiet {
		rt.SetProgressCallback(newProgressPrinter(stderr))
	}

	frame, stats, err := rt.Render(ctx)
	if err != nil {
		return err
	}

	out := opts.out
	if out == "" {
		out = defaultOutputPath(opts.scene, time.Now())
	}
	if err := writeFrame(frame, out, stdout); err != nil {
		return err
	}

	logger.Info("render saved",
		"out", out,
		"elapsed", stats.Elapsed.Round(time.Millisecond),
		"avg_spp", stats.AverageSamples,
		"avg_variance", stats.AverageVariance)
	return nil
}

// watchAndRender renders, then renders again each time the scene file is written,
// until ctx is canceled. Render errors are logged and do not stop the watch.
func watchAndRender(ctx context.Context, opts renderOptions, stdout, stderr io.Writer, logger *slog.Logger) error {
	if _, err := scene.FormatFromPath(opts.scene); err != nil {
		return fmt.Errorf("--watch needs a scene description file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file rather than write it
	if err := watcher.Add(filepath.Dir(opts.scene)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", opts.scene, err)
	}
	target := filepath.Clean(opts.scene)

	render := func() {
		if err := runRender(ctx, opts, stdout, stderr, logger); err != nil && ctx.Err() == nil {
			logger.Error("render failed", "error", err)
		}
	}
	render()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			logger.Info("scene changed, re-rendering", "file", event.Name)
			render()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error", "error", err)
		}
	}
}

// writeFrame encodes the frame by output extension; "-" writes PPM to stdout
func writeFrame(frame *renderer.Frame, out string, stdout io.Writer) error {
	if out == "-" {
		return frame.WritePPM(stdout)
	}

	var encode func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(out)); ext {
	case ".ppm":
		encode = frame.WritePPM
	case ".png":
		encode = frame.WritePNG
	default:
		return fmt.Errorf("unsupported output format %q (use .ppm or .png)", ext)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	if err := encode(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png, naming the
// directory after the scene file's base name for description files
func defaultOutputPath(sceneRef string, now time.Time) string {
	name := sceneRef
	if _, err := scene.FormatFromPath(sceneRef); err == nil {
		name = strings.TrimSuffix(filepath.Base(sceneRef), filepath.Ext(sceneRef))
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", timestamp))
}

// newProgressPrinter reports row progress on w, redrawing one line at each new percent
func newProgressPrinter(w io.Writer) renderer.ProgressFunc {
	out := termenv.NewOutput(w)
	var mu sync.Mutex
	lastPercent := -1

	return func(rowsDone, totalRows int) {
		percent := 100 * rowsDone / totalRows
		mu.Lock()
		defer mu.Unlock()
		if percent <= lastPercent {
			return
		}
		lastPercent = percent

		bar := out.String(fmt.Sprintf("%3d%%", percent)).Foreground(out.Color("#5fafd7")).Bold()
		fmt.Fprintf(w, "\rrendering %s  rows %d/%d", bar, rowsDone, totalRows)
		if rowsDone == totalRows {
			fmt.Fprintln(w)
		}
	}
}
