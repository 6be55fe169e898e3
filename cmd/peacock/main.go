package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jsvensson/peacock"
	"github.com/jsvensson/peacock/device"
	"github.com/jsvensson/peacock/internal/config"
	"github.com/jsvensson/peacock/internal/expr"
	"github.com/jsvensson/peacock/internal/format"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var version = "dev" // Injected at build time via ldflags

var log = commonlog.GetLogger("peacock")

// options holds flag values and the configuration they resolve to.
type options struct {
	configPath string
	format     string
	precision  int
	hueUnit    string
	verbose    int
	alpha      float64

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "peacock",
		Short: "Convert colors between sRGB, Oklab and Oklch",
		Long: "Convert colors between sRGB, Oklab and Oklch.\n\n" +
			"Pass negative values after --, e.g. peacock oklab -- 0.5 -0.1 0.1",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to config HCL file (default "+config.DefaultPath+")")
	pf.StringVar(&opts.format, "format", config.FormatText, "output format: text, hcl or json")
	pf.IntVar(&opts.precision, "precision", 6, "decimal places in output")
	pf.StringVar(&opts.hueUnit, "hue-unit", config.HueDegrees, "hue unit: degrees or radians")
	pf.CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (can be repeated)")

	srgbCmd := &cobra.Command{
		Use:   "srgb R G B",
		Short: "Convert gamma-encoded sRGB channels (0-1) to Oklab and Oklch",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSRGB(cmd, opts, args)
		},
	}

	oklabCmd := &cobra.Command{
		Use:   "oklab L A B",
		Short: "Convert Oklab coordinates to sRGB and Oklch",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOklab(cmd, opts, args)
		},
	}

	oklchCmd := &cobra.Command{
		Use:   "oklch L C H",
		Short: "Convert Oklch coordinates to Oklab and sRGB",
		Long:  "Convert Oklch coordinates to Oklab and sRGB. H is read in the configured hue unit.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOklch(cmd, opts, args)
		},
	}

	for _, c := range []*cobra.Command{srgbCmd, oklabCmd, oklchCmd} {
		c.Flags().Float64Var(&opts.alpha, "alpha", 1, "alpha passed through to the device color")
	}

	evalCmd := &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate an HCL expression using the conversion functions",
		Long: "Evaluate an HCL expression using the conversion functions.\n\n" +
			"Functions: srgb_to_oklab, oklab_to_srgb, oklab_to_oklch, oklch_to_oklab,\n" +
			"srgb_to_oklch, oklch_to_srgb, degrees, radians. Hues are in radians.\n" +
			"Example: peacock eval 'oklab_to_oklch(srgb_to_oklab(1, 0, 0)...)'",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, opts, args)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	rootCmd.AddCommand(srgbCmd, oklabCmd, oklchCmd, evalCmd, versionCmd)
	return rootCmd
}

// load resolves the configuration file and applies flag overrides.
func (o *options) load(cmd *cobra.Command) error {
	commonlog.Configure(o.verbose, nil)

	var err error
	if o.configPath != "" {
		o.cfg, err = config.Load(o.configPath)
	} else {
		o.cfg, err = config.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		o.cfg.Format = o.format
	}
	if flags.Changed("precision") {
		o.cfg.Precision = o.precision
	}
	if flags.Changed("hue-unit") {
		o.cfg.HueUnit = o.hueUnit
	}
	if err := o.cfg.Validate(); err != nil {
		return err
	}

	if o.cfg.Verbosity > 0 {
		commonlog.Configure(o.cfg.Verbosity+o.verbose, nil)
	}
	return nil
}

func (o *options) render(cmd *cobra.Command, groups ...format.Group) error {
	return format.Render(cmd.OutOrStdout(), format.Options{
		Format:    o.cfg.Format,
		Precision: o.cfg.Precision,
	}, groups...)
}

func runSRGB(cmd *cobra.Command, opts *options, args []string) error {
	v, err := parseTriplet(args)
	if err != nil {
		return err
	}

	lab := peacock.FromSRGB(v[0], v[1], v[2])
	log.Debugf("srgb(%g, %g, %g) -> %s", v[0], v[1], v[2], lab)

	return opts.render(cmd,
		oklabGroup(lab),
		oklchGroup(lab.Oklch(), opts.cfg.HueUnit),
		deviceGroup(device.New(lab, opts.alpha)),
	)
}

func runOklab(cmd *cobra.Command, opts *options, args []string) error {
	v, err := parseTriplet(args)
	if err != nil {
		return err
	}

	lab := peacock.Oklab{L: v[0], A: v[1], B: v[2]}
	r, g, b := lab.SRGBUnclamped()
	log.Debugf("%s -> unclamped srgb(%g, %g, %g)", lab, r, g, b)

	return opts.render(cmd,
		deviceGroup(device.New(lab, opts.alpha)),
		format.Group{Name: "srgb_unclamped", Fields: []format.Field{
			{Name: "r", Value: r},
			{Name: "g", Value: g},
			{Name: "b", Value: b},
			{Name: "in_gamut", Value: lab.InGamut()},
		}},
		oklchGroup(lab.Oklch(), opts.cfg.HueUnit),
	)
}

func runOklch(cmd *cobra.Command, opts *options, args []string) error {
	v, err := parseTriplet(args)
	if err != nil {
		return err
	}

	lch := peacock.Oklch{L: v[0], C: v[1], H: v[2]}
	if opts.cfg.HueUnit == config.HueDegrees {
		lch = peacock.OklchFromDegrees(v[0], v[1], v[2])
	}
	lab := lch.Oklab()
	log.Debugf("%s -> %s", lch, lab)

	return opts.render(cmd,
		oklabGroup(lab),
		deviceGroup(device.FromOklch(lch, opts.alpha)),
	)
}

func runEval(cmd *cobra.Command, opts *options, args []string) error {
	val, err := expr.Eval(args[0])
	if err != nil {
		return err
	}

	return format.RenderValue(cmd.OutOrStdout(), format.Options{
		Format:    opts.cfg.Format,
		Precision: opts.cfg.Precision,
	}, val)
}

func parseTriplet(args []string) ([3]float64, error) {
	var v [3]float64
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return v, fmt.Errorf("invalid number %q: %w", arg, err)
		}
		v[i] = f
	}
	return v, nil
}

func oklabGroup(lab peacock.Oklab) format.Group {
	return format.Group{Name: "oklab", Fields: []format.Field{
		{Name: "L", Value: lab.L},
		{Name: "a", Value: lab.A},
		{Name: "b", Value: lab.B},
	}}
}

func oklchGroup(lch peacock.Oklch, hueUnit string) format.Group {
	h := lch.H
	if hueUnit == config.HueDegrees {
		h = lch.HueDegrees()
	}
	return format.Group{Name: "oklch", Fields: []format.Field{
		{Name: "L", Value: lch.L},
		{Name: "C", Value: lch.C},
		{Name: "h", Value: h},
	}}
}

func deviceGroup(c device.Color) format.Group {
	return format.Group{Name: "srgb", Fields: []format.Field{
		{Name: "r", Value: c.R},
		{Name: "g", Value: c.G},
		{Name: "b", Value: c.B},
		{Name: "alpha", Value: c.A},
		{Name: "hex", Value: c.RGB8().Hex()},
	}}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
