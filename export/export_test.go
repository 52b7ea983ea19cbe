package export

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcoan/airsoft-suitcase/schematic"
	"github.com/rcoan/airsoft-suitcase/svgraster"
)

func divider() (*schematic.Drawing, error) {
	d := schematic.New()
	d.Add(schematic.SourceV().Up().Label("5V"))
	d.Add(schematic.Resistor().Right().Label("10k"))
	d.Add(schematic.Resistor().Down().Label("10k"))
	d.Add(schematic.Ground())
	return d, d.Err()
}

func TestParseFormats(t *testing.T) {
	t.Parallel()

	f, err := ParseFormats("svg,png")
	require.NoError(t, err)
	assert.Equal(t, []Format{SVG, PNG}, f)

	f, err = ParseFormats(" PDF, dot,pdf ")
	require.NoError(t, err)
	assert.Equal(t, []Format{PDF, DOT}, f)

	for _, s := range []string{"", "svg,jpeg", ","} {
		_, err = ParseFormats(s)
		assert.ErrorIs(t, err, ErrUnknownFormat, s)
	}
}

func TestJoinFormats(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "svg,png", JoinFormats(DefaultConfig().Formats))
	f, err := ParseFormats(JoinFormats([]Format{PDF, DOT, SVG}))
	require.NoError(t, err)
	assert.Equal(t, []Format{PDF, DOT, SVG}, f)
}

func TestRun(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Dir = filepath.Join(t.TempDir(), "diagrams")
	cfg.DPI = 72
	cfg.Formats = []Format{SVG, PNG, PDF, DOT}
	cfg.Jobs = 2

	var out bytes.Buffer
	paths, err := Run(context.Background(), cfg, []Job{
		{"first", divider},
		{"second", divider},
	}, &out)
	require.NoError(t, err)
	require.Len(t, paths, 8)
	assert.Equal(t, filepath.Join(cfg.Dir, "first.svg"), paths[0])
	assert.Equal(t, filepath.Join(cfg.Dir, "second.dot"), paths[7])

	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), p)
	}

	assert.Contains(t, out.String(), "Generating first...\n")
	assert.Contains(t, out.String(), "Generating second...\n")
	assert.Contains(t, out.String(), "All diagrams generated successfully!\n")

	pdf, err := os.ReadFile(filepath.Join(cfg.Dir, "first.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	dot, err := os.ReadFile(filepath.Join(cfg.Dir, "first.dot"))
	require.NoError(t, err)
	assert.Contains(t, string(dot), "strict graph {")
}

func TestPNGSize(t *testing.T) {
	t.Parallel()

	d, err := divider()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, d, PNG, &svgraster.Options{DPI: 144}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	b := d.Bounds()
	ppu := d.Config().InchesPerUnit * 72
	m := d.Config().Margin
	// twice the SVG size at 144 dpi
	assert.InDelta(t, 2*(b.Width()+2*m)*ppu, float64(img.Bounds().Dx()), 1)
	assert.InDelta(t, 2*(b.Height()+2*m)*ppu, float64(img.Bounds().Dy()), 1)
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Dir = t.TempDir()
	cfg.Formats = []Format{SVG}

	_, err := Run(context.Background(), cfg, []Job{{"broken", func() (*schematic.Drawing, error) {
		d := schematic.New()
		d.Pop()
		return d, d.Err()
	}}}, nil)
	assert.ErrorIs(t, err, schematic.ErrEmptyStack)
	assert.Contains(t, err.Error(), "diagram broken")

	cfg.Background = "not a color"
	_, err = Run(context.Background(), cfg, []Job{{"first", divider}}, nil)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg.Background = "none"
	_, err = Run(ctx, cfg, []Job{{"first", divider}}, nil)
	assert.ErrorIs(t, err, context.Canceled)

	assert.ErrorIs(t, Write(&bytes.Buffer{}, nil, Format("gif"), nil), ErrUnknownFormat)
}

func TestWriteFileRemovesPartialOutput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.svg")
	errWrite := errors.New("disk full")
	err := writeFile(path, func(w io.Writer) error {
		if _, err := io.WriteString(w, "<svg"); err != nil {
			return err
		}
		return errWrite
	})
	assert.ErrorIs(t, err, errWrite)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "partial file left at %s", path)

	require.NoError(t, writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "<svg/>")
		return err
	}))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(content))
}
