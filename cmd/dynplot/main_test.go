package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/catalog"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/loader"
)

const sampleCSV = "time,1: ANGL 10 [GEN 1],2: VOLT 5 [BUS5 230],3: FREQ 5\n" +
	"0,10,1.00,60.00\n0.5,20,0.98,59.98\n1,30,0.97,59.95\n1.5,25,0.99,59.99\n2,22,1.00,60.00\n"

func writeSample(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "fault.csv")
	require.NoError(t, os.WriteFile(p, []byte(sampleCSV), 0o644))
	return p
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--no-color", "--env", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestChannelsCommand(t *testing.T) {
	out, err := run(t, "channels", writeSample(t))
	require.NoError(t, err)
	assert.Contains(t, out, "3 channels, 5 samples")
	assert.Contains(t, out, "2: VOLT 5 [BUS5 230]")
	assert.Contains(t, out, "59.95")
}

func TestChannelsMissingFile(t *testing.T) {
	_, err := run(t, "channels", filepath.Join(t.TempDir(), "nope.csv"))
	var ioErr *loader.IOError
	assert.True(t, errors.As(err, &ioErr), "got %v", err)
}

func TestRenderDefaultPath(t *testing.T) {
	p := writeSample(t)
	out, err := run(t, "render", p, "-y", "1", "-y", "2:r:--:Bus 5 voltage", "--dual", "--dpi", "40", "--title", "Bus 5: V/Hz?")
	require.NoError(t, err)
	want := filepath.Join(filepath.Dir(p), "Bus_5_V_Hz_.png")
	assert.FileExists(t, want)
	assert.Contains(t, out, "saved "+want)
	assert.Contains(t, out, "y2 limits")
}

func TestRenderKeepsUserLimit(t *testing.T) {
	p := writeSample(t)
	out, err := run(t, "render", p, "-y", "1", "--ylim", "0,", "--dpi", "30", "-o", filepath.Join(t.TempDir(), "a.png"))
	require.NoError(t, err)
	assert.Contains(t, out, "y limits  0, ")
}

func TestRenderUnknownChannel(t *testing.T) {
	_, err := run(t, "render", writeSample(t), "-y", "42", "--dpi", "30")
	assert.ErrorIs(t, err, catalog.ErrChannelNotFound)
}

func TestRenderBadFontSize(t *testing.T) {
	_, err := run(t, "render", writeSample(t), "--font-size", "0", "--dpi", "30")
	assert.Error(t, err)
}

func TestParseSeries(t *testing.T) {
	cat, err := catalog.New(catalog.Dataset{
		Descriptions: map[int]string{4: "POWR 5"},
		Data:         map[int][]float64{4: {1, 2}},
		Time:         []float64{0, 1},
	})
	require.NoError(t, err)

	sel, err := parseSeries(cat, "4:#00ff00:-.:P: bus 5")
	require.NoError(t, err)
	assert.Equal(t, "4: POWR 5", sel.Channel)
	assert.Equal(t, "#00ff00", sel.Color)
	assert.Equal(t, "-.", sel.LineStyle)
	assert.Equal(t, "P: bus 5", sel.Label)

	sel, err = parseSeries(cat, "time")
	require.NoError(t, err)
	assert.Equal(t, catalog.TimeToken, sel.Channel)

	_, err = parseSeries(cat, "x1")
	assert.ErrorIs(t, err, catalog.ErrChannelNotFound)
}

func TestParseLimits(t *testing.T) {
	l := parseLimits(" -1.5 , 3")
	assert.Equal(t, "-1.5", l.Min)
	assert.Equal(t, "3", l.Max)
	assert.True(t, parseLimits("").Empty())
}
