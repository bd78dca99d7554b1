// Command fxaa smooths aliased edges in an image file.
//
// Usage:
//
//	fxaa [flags] <input> [output]
//
// The input may be PNG, JPEG, GIF, BMP, TIFF or WebP. The output format is
// chosen by extension (png, jpg, jpeg, bmp, tif, tiff). Without an output
// path the result is written next to the input as <name>_fxaa.png.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/fxaa"
	intImage "github.com/gogpu/fxaa/internal/image"
)

// errUsage marks command line errors; main exits with status 2 for them.
var errUsage = errors.New("usage")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "fxaa:", err)
		os.Exit(1)
	}
}

// options are the parsed command line flags.
type options struct {
	input   string
	output  string
	lang    string
	verbose bool
	cfg     fxaa.Config
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("fxaa", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: fxaa [flags] <input> [output]")
		fs.PrintDefaults()
	}

	var (
		passes    = fs.Int("passes", 3, "number of filter passes")
		threshold = fs.Float64("threshold", fxaa.DefaultEdgeThreshold, "edge strength above which pixels are blended")
		weights   = fs.String("weights", "perceptual", "luminance weights: perceptual or uniform")
		policy    = fs.String("policy", "wna", "blend policy: wna or sigmoid")
		recompute = fs.Bool("recompute", false, "recompute luminance before every pass")
		workers   = fs.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS, 1 = sequential)")
		lang      = fs.String("lang", "en", "language tag for the summary line")
		verbose   = fs.Bool("v", false, "log per-pass diagnostics to stderr")
	)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return options{}, errUsage
		}
		return options{}, fmt.Errorf("%w: %w", errUsage, err)
	}

	rest := fs.Args()
	if len(rest) < 1 || len(rest) > 2 {
		fs.Usage()
		return options{}, errUsage
	}

	opts := options{
		input:   rest[0],
		lang:    *lang,
		verbose: *verbose,
		cfg: fxaa.Config{
			EdgeThreshold:      float32(*threshold),
			Passes:             *passes,
			RecomputeLuminance: *recompute,
			Workers:            *workers,
		},
	}
	if len(rest) == 2 {
		opts.output = rest[1]
	} else {
		opts.output = defaultOutput(opts.input)
	}

	switch strings.ToLower(*weights) {
	case "perceptual":
		opts.cfg.Weights = fxaa.PerceptualWeights
	case "uniform":
		opts.cfg.Weights = fxaa.UniformWeights
	default:
		return options{}, fmt.Errorf("weights %q: %w", *weights, fxaa.ErrInvalidConfig)
	}

	p, err := fxaa.ParseBlendPolicy(*policy)
	if err != nil {
		return options{}, err
	}
	opts.cfg.Policy = p

	return opts, opts.cfg.Validate()
}

// defaultOutput derives "<dir>/<name>_fxaa.png" from the input path.
func defaultOutput(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_fxaa.png"
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	if opts.verbose {
		fxaa.SetLogger(newConsoleLogger(stderr, slog.LevelDebug))
		defer fxaa.SetLogger(nil)
	}

	// Fail on a bad output extension before doing any work.
	if _, err := intImage.EncodingForPath(opts.output); err != nil {
		return err
	}

	src, format, err := intImage.Load(opts.input)
	if err != nil {
		return err
	}

	f, err := fxaa.New(fxaa.WithConfig(opts.cfg))
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	out, stats, err := f.Process(ctx, src)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := out.Save(opts.output); err != nil {
		return err
	}

	tag, err := language.Parse(opts.lang)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	p.Fprintf(stdout, "%s (%s, %dx%d) -> %s: %d passes, %d of %d pixels blended in %v\n",
		opts.input, format, src.Width(), src.Height(), opts.output,
		stats.Passes, stats.TotalBlended(), stats.Pixels, elapsed.Round(time.Millisecond))

	return nil
}
