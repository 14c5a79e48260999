// Command fractal renders Mandelbrot and Julia sets to image files.
//
//	fractal -r=-0.743643887037151 -i 0.131825904205330 -zoom 100 -iter 2048
//	fractal -julia -cr -0.4 -ci 0.6 -palette ocean -o julia.png
//	fractal -o deep.png -bin          # keep the potential field
//	fractal -o deep.png -recolor -mul 2 -offset 0.3
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/fractal"
)

type options struct {
	cfg     fractal.RenderConfig
	out     fractal.OutputOptions
	julia   bool
	workers int
	recolor bool
	verbose bool
}

func parseFlags(args []string) (options, error) {
	d := fractal.DefaultConfig()
	o := options{cfg: d}

	fs := flag.NewFlagSet("fractal", flag.ContinueOnError)
	intVar := func(p *int, names []string, def int, usage string) {
		for _, n := range names {
			fs.IntVar(p, n, def, usage)
		}
	}
	floatVar := func(p *float64, names []string, def float64, usage string) {
		for _, n := range names {
			fs.Float64Var(p, n, def, usage)
		}
	}
	boolVar := func(p *bool, names []string, usage string) {
		for _, n := range names {
			fs.BoolVar(p, n, false, usage)
		}
	}
	stringVar := func(p *string, names []string, def, usage string) {
		for _, n := range names {
			fs.StringVar(p, n, def, usage)
		}
	}

	intVar(&o.cfg.Width, []string{"x", "width"}, d.Width, "width of image")
	intVar(&o.cfg.Height, []string{"y", "height"}, d.Height, "height of image")
	intVar(&o.cfg.MaxIterations, []string{"iter"}, d.MaxIterations, "iteration count")
	floatVar(&o.cfg.CenterReal, []string{"r"}, d.CenterReal, "real value of center point")
	floatVar(&o.cfg.CenterImag, []string{"i"}, d.CenterImag, "imaginary value of center point")
	floatVar(&o.cfg.Zoom, []string{"zoom"}, d.Zoom, "zoom")
	floatVar(&o.cfg.JuliaReal, []string{"cr"}, d.JuliaReal, "real part of the julia constant")
	floatVar(&o.cfg.JuliaImag, []string{"ci"}, d.JuliaImag, "imaginary part of the julia constant")
	floatVar(&o.cfg.ColorMultiplier, []string{"m", "mul"}, d.ColorMultiplier, "multiplier for colormap")
	floatVar(&o.cfg.ColorOffset, []string{"offset"}, d.ColorOffset, "offset of color gradient")
	boolVar(&o.julia, []string{"j", "julia"}, "render julia set instead of mandelbrot set")

	stringVar(&o.out.Path, []string{"o", "output", "out"}, "output.png", "output filename (.png, .jpg, .bmp, .tif)")
	boolVar(&o.out.WriteRaw, []string{"b", "bin"}, "also output bin of the image, for later recoloring")
	boolVar(&o.out.CompressRaw, []string{"zstd"}, "compress the bin output with zstd")
	boolVar(&o.out.Quiet, []string{"q", "quiet"}, "suppress info")
	boolVar(&o.out.Label, []string{"label"}, "draw the render parameters onto the image")
	stringVar(&o.out.Palette, []string{"palette"}, "",
		"color palette: "+strings.Join(fractal.PaletteNames(), ", ")+" (default "+fractal.DefaultPalette+"; -recolor keeps the saved one)")
	intVar(&o.out.Supersample, []string{"ss"}, 1, "supersampling factor")

	intVar(&o.workers, []string{"workers"}, 0, "worker goroutines (0 = one per CPU)")
	boolVar(&o.recolor, []string{"recolor"}, "recolor the output from its saved bin instead of rendering")
	boolVar(&o.verbose, []string{"v"}, "debug logging")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if o.julia {
		o.cfg.Mode = fractal.Julia
	}
	return o, nil
}

func setupLogging(o options) {
	if o.out.Quiet {
		fractal.SetLogger(nil)
		return
	}
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func run(args []string) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	setupLogging(o)

	r := fractal.NewRenderer(fractal.WithWorkers(o.workers))
	defer r.Close()

	var res fractal.Result
	if o.recolor {
		res, err = r.Recolor(o.out, o.cfg.ColorMultiplier, o.cfg.ColorOffset)
	} else {
		if err := o.cfg.Validate(); err != nil {
			return err
		}
		res, err = r.WriteFractal(o.cfg, o.out)
	}
	if err != nil {
		return err
	}

	if !o.out.Quiet {
		printSummary(o.out.Path, res)
	}
	return nil
}

func printSummary(path string, res fractal.Result) {
	p := message.NewPrinter(language.English)
	switch {
	case res.Skipped:
		p.Printf("found existing file %s\n", path)
	case res.Evaluated == 0:
		p.Printf("recolored %s (%dx%d) in %v\n", path, res.Width, res.Height, res.Elapsed)
	default:
		p.Printf("rendered %s (%dx%d): %d samples, %d interior, in %v\n",
			path, res.Width, res.Height, res.Evaluated, res.Field.Interior, res.Elapsed)
		p.Printf("potential min %.6g max %.6g\n", res.Field.Min, res.Field.Max)
	}
}

func main() {
	err := run(os.Args[1:])
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	default:
		fmt.Fprintln(os.Stderr, "fractal:", err)
		os.Exit(1)
	}
}
