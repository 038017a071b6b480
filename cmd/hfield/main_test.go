// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/heightfield/grid"
	"github.com/katalvlaran/heightfield/textio"
	"github.com/stretchr/testify/require"
)

// env builds a lookup func over a fixed map.
func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

// writeDump stores a text dump of hf in dir and returns its path.
func writeDump(t *testing.T, dir, name string, hf *grid.HeightField) string {
	t.Helper()
	b, err := textio.Marshal(hf)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, b, 0o644))

	return path
}

func square(t *testing.T) *grid.HeightField {
	t.Helper()
	hf, err := grid.NewFromHeights(2, 2, []float32{0, 1, 2, 3})
	require.NoError(t, err)

	return hf
}

func testConfig() config {
	return config{ZScale: 255}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(env(nil))
	require.NoError(t, err)
	require.Equal(t, config{ZScale: 255, LogPath: "./logs/hfield.log", LogMaxMB: 10}, cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig(env(map[string]string{
		envZScale:   "12.5",
		envLogPath:  "", // set but empty disables the file sink
		envLogMaxMB: "3",
	}))
	require.NoError(t, err)
	require.Equal(t, config{ZScale: 12.5, LogPath: "", LogMaxMB: 3}, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []map[string]string{
		{envZScale: "tall"},
		{envZScale: "NaN"},
		{envZScale: "+Inf"},
		{envLogMaxMB: "0"},
		{envLogMaxMB: "ten"},
	}
	for _, c := range cases {
		_, err := loadConfig(env(c))
		require.Error(t, err, c)
	}
}

func TestParseSize(t *testing.T) {
	i, j, err := parseSize("128x256")
	require.NoError(t, err)
	require.Equal(t, 128, i)
	require.Equal(t, 256, j)

	i, j, err = parseSize("3X4") // case-insensitive separator
	require.NoError(t, err)
	require.Equal(t, 3, i)
	require.Equal(t, 4, j)

	for _, bad := range []string{"", "128", "0x4", "4x0", "ax4", "4x-1"} {
		_, _, err = parseSize(bad)
		require.Error(t, err, bad)
	}
}

func TestParseArgsInterspersed(t *testing.T) {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	step := fs.Int("step", 1, "")
	pos, err := parseArgs(fs, []string{"f.txt", "0.5", "-step", "2", "1"})
	require.NoError(t, err)
	require.Equal(t, []string{"f.txt", "0.5", "1"}, pos)
	require.Equal(t, 2, *step)
}

func TestRunUsage(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), nil, testConfig(), &out)
	require.ErrorIs(t, err, errUsage)
	require.Contains(t, out.String(), "usage: hfield")
	require.Contains(t, out.String(), "TGA is input-only") // Save has no TGA encoder

	err = run(context.Background(), []string{"frobnicate"}, testConfig(), &out)
	require.ErrorIs(t, err, errUsage)
	require.Equal(t, 2, exitCode(err))
	require.Equal(t, 0, exitCode(nil))
	require.Equal(t, 1, exitCode(errors.New("boom")))
}

func TestInfoAggregatesFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeDump(t, dir, "good.txt", square(t))
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("2 2\n1 2 3"), 0o644)) // one height short
	missing := filepath.Join(dir, "missing.png")

	var out bytes.Buffer
	err := run(context.Background(), []string{"info", good, bad, missing}, testConfig(), &out)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 2)
	require.ErrorIs(t, err, textio.ErrTruncated)

	require.Equal(t, good+": 2x2, 4 vertices (16 B), z in [0, 3]\n", out.String())
}

func TestConvertRoundTrip(t *testing.T) {
	dir := t.TempDir()
	hf, err := grid.NewFromBytes(3, 2, 255, []byte{0, 10, 20, 30, 40, 255})
	require.NoError(t, err)
	src := writeDump(t, dir, "src.txt", hf)
	img := filepath.Join(dir, "out", "map.png")
	back := filepath.Join(dir, "back.txt")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"convert", src, img}, testConfig(), &out))
	require.NoError(t, run(context.Background(), []string{"convert", img, back}, testConfig(), &out))

	got, err := os.ReadFile(back)
	require.NoError(t, err)
	want, err := textio.Marshal(hf)
	require.NoError(t, err)
	require.Equal(t, string(want), string(got))

	err = run(context.Background(), []string{"convert", src}, testConfig(), &out)
	require.ErrorIs(t, err, errUsage)
}

func TestSample(t *testing.T) {
	path := writeDump(t, t.TempDir(), "sq.txt", square(t))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"sample", path, "0.5", "0.5"}, testConfig(), &out))
	require.Equal(t, "1.5\n", out.String())

	out.Reset()
	err := run(context.Background(), []string{"sample", path, "5", "0"}, testConfig(), &out)
	require.ErrorIs(t, err, grid.ErrOutOfRange)

	err = run(context.Background(), []string{"sample", path, "0", "0", "-step", "0"}, testConfig(), &out)
	require.ErrorIs(t, err, grid.ErrInvalidStep)

	err = run(context.Background(), []string{"sample", path, "x", "0"}, testConfig(), &out)
	require.Error(t, err)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")

	var out bytes.Buffer
	args := []string{"-size", "6x9", "-seed", "5", "-zscale", "10"}
	require.NoError(t, run(context.Background(), append([]string{"generate", a}, args...), testConfig(), &out))
	require.NoError(t, run(context.Background(), append([]string{"generate", b}, args...), testConfig(), &out))
	require.True(t, strings.HasPrefix(out.String(), a+": 6x9, 54 vertices"))

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	require.Equal(t, da, db) // same seed, same field

	err = run(context.Background(), []string{"generate", a, "-size", "6"}, testConfig(), &out)
	require.Error(t, err)
	err = run(context.Background(), []string{"generate", a, "-freq", "0"}, testConfig(), &out)
	require.Error(t, err)
}

func TestWatchStopsOnCancel(t *testing.T) {
	path := writeDump(t, t.TempDir(), "w.txt", square(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	require.NoError(t, run(ctx, []string{"watch", path}, testConfig(), &out))
	require.Contains(t, out.String(), "2x2") // initial report before the loop
}

// lockedBuffer is a bytes.Buffer safe to share with the watch goroutine.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchReportsRewrite(t *testing.T) {
	dir := t.TempDir()
	path := writeDump(t, dir, "w.txt", square(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &lockedBuffer{}
	done := make(chan error, 1)
	go func() { done <- run(ctx, []string{"watch", path}, testConfig(), out) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "2x2")
	}, 5*time.Second, 20*time.Millisecond) // initial report, watcher armed

	bigger, err := grid.NewFromHeights(3, 3, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	b, err := textio.Marshal(bigger)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o644))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "3x3, 9 vertices (36 B), z in [1, 9]")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestChanges(t *testing.T) {
	path := filepath.Join("data", "map.txt")
	require.True(t, changes(fsnotify.Event{Name: "data/./map.txt", Op: fsnotify.Write}, path))
	require.True(t, changes(fsnotify.Event{Name: path, Op: fsnotify.Create}, path))
	require.False(t, changes(fsnotify.Event{Name: path, Op: fsnotify.Chmod}, path))
	require.False(t, changes(fsnotify.Event{Name: "data/other.txt", Op: fsnotify.Write}, path))
}
