package burnlib

import (
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	gdal "github.com/airbusgeo/godal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegend(t *testing.T) {
	legend := Legend()
	require.Len(t, legend, SEVERITY_CLASS_NUM)
	assert.Equal(t, LegendEntry{ClassId: 1, Label: "Enhanced Regrowth, High", Color: "#1a9850"}, legend[0])
	assert.Equal(t, LegendEntry{ClassId: 7, Label: "Extreme-Severity Burn", Color: "#7f0000"}, legend[6])
}

func TestHexToColor(t *testing.T) {
	c := hexToColor("#d73027")
	assert.Equal(t, uint8(0xd7), c.R)
	assert.Equal(t, uint8(0x30), c.G)
	assert.Equal(t, uint8(0x27), c.B)
	assert.Equal(t, uint8(0xff), c.A)
}

func TestRenderClassified(t *testing.T) {
	dir := t.TempDir()
	g := NewBurnToolbox(dir)
	meta := testRasterMeta(t, g)

	classes := make([]byte, 16*16)
	for i := range classes {
		classes[i] = byte(i % (SEVERITY_CLASS_NUM + 1))
	}
	classified := filepath.Join(dir, "classified.tif")
	require.NoError(t, g.writeRaster(classified, gdal.Byte, classes, 16, 16, meta))

	out := filepath.Join(dir, "severity.png")
	require.NoError(t, g.RenderClassified(classified, "Test Fire", out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())

	// 左上角像元为0类，应透明
	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(t, a)
	// 第二个像元为1类，应不透明
	_, _, _, a = img.At(1, 0).RGBA()
	assert.NotZero(t, a)

	raw, err := os.ReadFile(out + LEGEND_EXT)
	require.NoError(t, err)
	var sidecar struct {
		Title   string        `json:"title"`
		Classes []LegendEntry `json:"classes"`
	}
	require.NoError(t, json.Unmarshal(raw, &sidecar))
	assert.Equal(t, "Test Fire", sidecar.Title)
	assert.Len(t, sidecar.Classes, SEVERITY_CLASS_NUM)
}

func TestRenderPreview(t *testing.T) {
	dir := t.TempDir()
	g := NewBurnToolbox(dir)
	meta := testRasterMeta(t, g)

	classified := filepath.Join(dir, "classified.tif")
	require.NoError(t, g.writeRaster(classified, gdal.Byte, constBytes(64*64, 7), 64, 64, meta))

	out := filepath.Join(dir, "preview.png")
	require.NoError(t, g.RenderPreview(classified, out, 16))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), 16)
	assert.LessOrEqual(t, img.Bounds().Dy(), 16)
}

func constBytes(n int, v byte) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = v
	}
	return buf
}
