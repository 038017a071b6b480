// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/heightfield/generate"
	"github.com/katalvlaran/heightfield/grid"
	"github.com/katalvlaran/heightfield/imageio"
)

// vertexSize is the storage cost of one height in bytes.
const vertexSize = 4

var errUsage = errors.New("usage")

const usage = `usage: hfield <command> [flags] args...

commands:
  info FILE...                   print size and height range of each file
  convert IN OUT                 convert between .txt dumps and images
                                 (IN: .png/.bmp/.tga, OUT: .png/.bmp; TGA is input-only)
  sample FILE J I [-step N]      print the interpolated height at (J, I)
  generate OUT [-size IxJ] [-seed N] [-freq F]
                                 write a Perlin noise field
  watch FILE                     report FILE again every time it changes

common flags: -zscale Z (height of sample 255), -topleft (image row 0 is i=0)
`

// command runs one subcommand with its arguments (without the name).
type command func(ctx context.Context, args []string, cfg config, out io.Writer) error

var commands = map[string]command{
	"info":     runInfo,
	"convert":  runConvert,
	"sample":   runSample,
	"generate": runGenerate,
	"watch":    runWatch,
}

// run dispatches args[0] to its subcommand.
func run(ctx context.Context, args []string, cfg config, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}

	return cmd(ctx, args[1:], cfg, out)
}

// fieldFlags are shared by every subcommand that reads or writes images.
type fieldFlags struct {
	zScale  float64
	topLeft bool
}

func newFlagSet(name string, cfg config, out io.Writer) (*flag.FlagSet, *fieldFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	ff := &fieldFlags{}
	fs.Float64Var(&ff.zScale, "zscale", float64(cfg.ZScale), "height of an 8-bit sample of 255")
	fs.BoolVar(&ff.topLeft, "topleft", false, "map the top image row to i=0")

	return fs, ff
}

func (ff *fieldFlags) imageOptions() []imageio.Option {
	if ff.topLeft {
		return []imageio.Option{imageio.WithTopLeftOrigin()}
	}

	return nil
}

// parseArgs parses fs and returns the positional arguments. Flags may
// appear before, between or after them.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var pos []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return pos, nil
		}
		pos = append(pos, args[0])
		args = args[1:]
	}
}

// parseSize reads an "IxJ" size such as "128x256".
func parseSize(s string) (sizeI, sizeJ int, err error) {
	is, js, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want IxJ", s)
	}
	if sizeI, err = strconv.Atoi(is); err != nil || sizeI < 1 {
		return 0, 0, fmt.Errorf("size %q: bad row count", s)
	}
	if sizeJ, err = strconv.Atoi(js); err != nil || sizeJ < 1 {
		return 0, 0, fmt.Errorf("size %q: bad column count", s)
	}

	return sizeI, sizeJ, nil
}

// describe formats the one-line summary printed by info and watch.
func describe(path string, hf *grid.HeightField) string {
	if hf.IsEmpty() {
		return fmt.Sprintf("%s: empty", path)
	}
	n := hf.Len()
	lo, hi := hf.MinMaxZ()

	return fmt.Sprintf("%s: %dx%d, %s vertices (%s), z in [%g, %g]",
		path, hf.SizeI(), hf.SizeJ(),
		humanize.Comma(int64(n)), humanize.Bytes(uint64(n*vertexSize)), lo, hi)
}

// runInfo loads every file and prints its summary. Files that fail do not
// stop the others; all failures are returned together.
func runInfo(_ context.Context, args []string, cfg config, out io.Writer) error {
	fs, ff := newFlagSet("info", cfg, out)
	paths, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("info: no files: %w", errUsage)
	}

	var errs *multierror.Error
	for _, path := range paths {
		hf, err := loadField(path, float32(ff.zScale), ff.imageOptions()...)
		if err != nil {
			log.Printf("Failed to load %s: %v", path, err)
			errs = multierror.Append(errs, err)
			continue
		}
		fmt.Fprintln(out, describe(path, hf))
	}

	return errs.ErrorOrNil()
}

// runConvert reads IN and writes OUT, each format picked by extension.
func runConvert(_ context.Context, args []string, cfg config, out io.Writer) error {
	fs, ff := newFlagSet("convert", cfg, out)
	paths, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(paths) != 2 {
		return fmt.Errorf("convert: want IN OUT: %w", errUsage)
	}

	hf, err := loadField(paths[0], float32(ff.zScale), ff.imageOptions()...)
	if err != nil {
		return err
	}
	if err = saveField(paths[1], hf, float32(ff.zScale), ff.imageOptions()...); err != nil {
		return err
	}
	log.Printf("Converted %s -> %s (%dx%d)", paths[0], paths[1], hf.SizeI(), hf.SizeJ())

	return nil
}

// runSample prints InterpolatedZ at the given coordinates.
func runSample(_ context.Context, args []string, cfg config, out io.Writer) error {
	fs, ff := newFlagSet("sample", cfg, out)
	step := fs.Int("step", grid.DefaultStep, "grid spacing in vertices")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(pos) != 3 {
		return fmt.Errorf("sample: want FILE J I: %w", errUsage)
	}
	j, err := strconv.ParseFloat(pos[1], 32)
	if err != nil {
		return fmt.Errorf("sample: J %q: %w", pos[1], err)
	}
	i, err := strconv.ParseFloat(pos[2], 32)
	if err != nil {
		return fmt.Errorf("sample: I %q: %w", pos[2], err)
	}

	hf, err := loadField(pos[0], float32(ff.zScale), ff.imageOptions()...)
	if err != nil {
		return err
	}
	z, err := hf.InterpolatedZ(float32(j), float32(i), *step)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, strconv.FormatFloat(float64(z), 'g', -1, 32))

	return nil
}

// runGenerate writes a Perlin field to OUT.
func runGenerate(_ context.Context, args []string, cfg config, out io.Writer) error {
	fs, ff := newFlagSet("generate", cfg, out)
	size := fs.String("size", "256x256", "rows x columns")
	seed := fs.Int64("seed", generate.DefaultSeed, "noise seed")
	freq := fs.Float64("freq", generate.DefaultFrequency, "noise-space spacing of vertices")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(pos) != 1 {
		return fmt.Errorf("generate: want OUT: %w", errUsage)
	}
	sizeI, sizeJ, err := parseSize(*size)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if !(*freq > 0) {
		return fmt.Errorf("generate: -freq %g: must be > 0", *freq)
	}

	hf, err := generate.Perlin(sizeI, sizeJ, float32(ff.zScale),
		generate.WithSeed(*seed), generate.WithFrequency(*freq))
	if err != nil {
		return err
	}
	if err = saveField(pos[0], hf, float32(ff.zScale), ff.imageOptions()...); err != nil {
		return err
	}
	fmt.Fprintln(out, describe(pos[0], hf))

	return nil
}

// runWatch reports FILE once and again after every write, until ctx ends.
// Load failures while watching are logged and do not stop the loop.
func runWatch(ctx context.Context, args []string, cfg config, out io.Writer) error {
	fs, ff := newFlagSet("watch", cfg, out)
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(pos) != 1 {
		return fmt.Errorf("watch: want FILE: %w", errUsage)
	}
	path := filepath.Clean(pos[0])

	report := func() {
		hf, err := loadField(path, float32(ff.zScale), ff.imageOptions()...)
		if err != nil {
			log.Println("Error while loading field:", err)
			return
		}
		fmt.Fprintln(out, describe(path, hf))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// Editors often replace the file, so the directory is watched.
	if err = watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	report()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !changes(event, path) {
				continue
			}
			log.Println("event:", event)
			report()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Println("error:", err)
		}
	}
}

// changes reports whether event rewrote the file at path.
func changes(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}

	return event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create
}
