package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"convchain/internal/core"
	"convchain/internal/render"
	"convchain/internal/samples"
	cc "convchain/pkg/convchain"
	pcore "convchain/pkg/core"
)

type options struct {
	sample      string
	sampleFile  string
	width       int
	height      int
	n           int
	temperature float64
	changes     int
	seed        int64
	frames      int
	tps         int
	stats       bool
	list        bool
	on, off     string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("convchain: ")
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	o := options{}
	fs := flag.NewFlagSet("convchain", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.sample, "sample", "bars", "built-in sample name (see -list)")
	fs.StringVar(&o.sampleFile, "sample-file", "", "read the sample from a text file of '#' and '.' rows")
	fs.IntVar(&o.width, "w", 48, "output width")
	fs.IntVar(&o.height, "h", 16, "output height")
	fs.IntVar(&o.n, "n", 3, "pattern size")
	fs.Float64Var(&o.temperature, "temperature", 0.5, "sampling temperature")
	fs.IntVar(&o.changes, "changes", 3000, "total update attempts")
	fs.Int64Var(&o.seed, "seed", 0, "random seed")
	fs.IntVar(&o.frames, "frames", 0, "print this many intermediate frames while sampling")
	fs.IntVar(&o.tps, "tps", 10, "frames per second when -frames is set")
	fs.BoolVar(&o.stats, "stats", false, "report acceptance statistics on stderr")
	fs.BoolVar(&o.list, "list", false, "list built-in samples and exit")
	fs.StringVar(&o.on, "on", render.DefaultOn, "glyph for set cells")
	fs.StringVar(&o.off, "off", render.DefaultOff, "glyph for clear cells")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if o.width <= 0 || o.height <= 0 {
		return o, fmt.Errorf("output size %dx%d must be positive", o.width, o.height)
	}
	if o.changes < 0 {
		return o, fmt.Errorf("changes must not be negative")
	}
	return o, nil
}

func loadSample(o options) (*cc.Bitmap, error) {
	if o.sampleFile != "" {
		return samples.Load(o.sampleFile)
	}
	return samples.Get(o.sample)
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if o.list {
		for _, name := range samples.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	sample, err := loadSample(o)
	if err != nil {
		return err
	}
	model, err := cc.New(sample)
	if err != nil {
		return err
	}
	model.SetRandomSource(pcore.NewRNG(o.seed).Float64)

	field := model.InitializeField(o.width, o.height)
	var total cc.Stats
	if o.frames > 0 {
		total, err = animate(stdout, model, field, o)
	} else {
		total, err = model.IterateStats(field, o.n, o.temperature, o.changes)
	}
	if err != nil {
		return err
	}
	if err := render.Console(stdout, field, o.on, o.off); err != nil {
		return err
	}
	if o.stats {
		fmt.Fprintf(stderr, "attempts=%d flips=%d forced=%d acceptance=%.3f\n",
			total.Attempts, total.Flips, total.Forced, total.AcceptanceRate())
	}
	return nil
}

// animate splits the attempt budget across frames, redrawing after each batch.
// The last frame absorbs the remainder so the total matches -changes exactly.
func animate(w io.Writer, model *cc.Model, field *cc.Bitmap, o options) (cc.Stats, error) {
	var total cc.Stats
	pace := core.NewFixedStep(o.tps)
	per := o.changes / o.frames
	for i := 0; i < o.frames; i++ {
		batch := per
		if i == o.frames-1 {
			batch = o.changes - per*(o.frames-1)
		}
		st, err := model.IterateStats(field, o.n, o.temperature, batch)
		if err != nil {
			return total, err
		}
		total.Add(st)
		if i == o.frames-1 {
			break
		}
		pace.Wait()
		fmt.Fprint(w, "\x1b[H\x1b[2J")
		if err := render.Console(w, field, o.on, o.off); err != nil {
			return total, err
		}
	}
	fmt.Fprint(w, "\x1b[H\x1b[2J")
	return total, nil
}
