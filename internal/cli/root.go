// Package cli implements the inkstamp command-line interface.
//
// The tool is driven by sequential line prompts on stdin: base image path,
// watermark path, the transparency questions that apply, blend weight,
// placement, and output filename. Every prompt is one-shot. Input that does
// not parse ends the run with a single diagnostic and a non-zero exit; there
// is no retry loop. That also makes the tool scriptable by piping answers in.
//
// Logging goes to stderr via charmbracelet/log so it never interleaves with
// the prompt stream; --verbose enables debug-level detail. Prompt wording
// and the JPEG encoder quality can be overridden with a TOML file passed via
// --config.
package cli

import (
	"fmt"
	"image"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/inkstamp/inkstamp/internal/compose"
	"github.com/inkstamp/inkstamp/internal/imageio"
)

var (
	version string // semantic version (e.g. "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. Called by
// the main package with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the inkstamp CLI and returns an error if the run fails. The
// caller owns the exit status; nothing below this point terminates the
// process.
func Execute() error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "inkstamp",
		Short:         "inkstamp overlays a watermark image onto a base image",
		Long:          `inkstamp composites a watermark onto a base image with per-pixel blending, either at a fixed position or tiled across the whole image, with optional alpha or color-key transparency.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), logger, cfg)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("inkstamp %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	root.SetIn(os.Stdin)
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	return root.Execute()
}

// run drives one watermarking pass: prompt, validate, resolve, composite,
// encode. All prompting and file I/O happen strictly before and after the
// compositing pass.
func run(in io.Reader, stdout io.Writer, logger *charmlog.Logger, cfg Config) error {
	p := newPrompter(in, stdout, cfg.Prompts)

	base, err := loadDescribed(p, logger, cfg.Prompts.BasePath, "base image")
	if err != nil {
		return err
	}
	watermark, err := loadDescribed(p, logger, cfg.Prompts.WatermarkPath, "watermark")
	if err != nil {
		return err
	}
	if err := compose.ValidateFit(base, watermark); err != nil {
		return err
	}

	class := compose.ClassifyAlpha(watermark)
	logger.Debug("classified watermark alpha", "class", class.String())

	policy, err := compose.ResolvePolicy(class, p)
	if err != nil {
		return err
	}
	if policy.Kind == compose.ColorKey {
		key := colorful.Color{
			R: float64(policy.Key.R) / 255,
			G: float64(policy.Key.G) / 255,
			B: float64(policy.Key.B) / 255,
		}
		h, s, l := key.Hsl()
		logger.Info("treating color as transparent",
			"hex", key.Hex(),
			"hsl", fmt.Sprintf("%.0f/%.2f/%.2f", h, s, l))
	}

	weightValue, err := p.askInt(cfg.Prompts.BlendWeight, "blend weight")
	if err != nil {
		return err
	}
	weight, err := compose.NewBlendWeight(weightValue)
	if err != nil {
		return err
	}

	tiled, err := p.askYesNo(cfg.Prompts.TilePlacement, "placement answer")
	if err != nil {
		return err
	}
	placement := compose.Grid()
	if !tiled {
		coords, err := p.askInts(cfg.Prompts.Coordinates, "watermark position", 2)
		if err != nil {
			return err
		}
		placement, err = compose.NewSinglePlacement(coords[0], coords[1], base, watermark)
		if err != nil {
			return err
		}
	}

	outPath, err := p.readPath(cfg.Prompts.OutputPath, "output filename")
	if err != nil {
		return err
	}
	// Resolve the encoder before compositing so a bad extension never costs
	// a full pass.
	format, err := imageio.ResolveFormat(outPath)
	if err != nil {
		return err
	}

	logger.Debug("compositing",
		"policy", policy.Kind.String(),
		"weight", int(weight),
		"tiled", tiled)
	result := compose.Composite(base, watermark, compose.Options{
		Policy:    policy,
		Weight:    weight,
		Placement: placement,
	})

	if err := imageio.Save(result, outPath, format, cfg.JPEGQuality); err != nil {
		return err
	}

	fmt.Fprintln(stdout, outPath)
	return nil
}

// loadDescribed prompts for a path, loads the image, logs its metadata and
// validates its pixel format.
func loadDescribed(p *prompter, logger *charmlog.Logger, label, what string) (image.Image, error) {
	path, err := p.readPath(label, what+" path")
	if err != nil {
		return nil, err
	}
	img, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	if info, err := imageio.Describe(path, img); err == nil {
		logger.Info("loaded "+what,
			"path", path,
			"size", fmt.Sprintf("%dx%d", info.Width, info.Height),
			"format", info.Format,
			"bpp", info.BitsPerPixel,
			"alpha", info.HasAlpha)
	}
	if err := compose.ValidateFormat(img, what); err != nil {
		return nil, err
	}
	return img, nil
}
