package burnlib

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/wgdzlh/burnlib/log"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"go.uber.org/zap"
)

// 图例sidecar文件内容
type legendSidecar struct {
	Title   string        `json:"title"`
	Classes []LegendEntry `json:"classes"`
}

// Legend 返回烈度分类图例（类别、标签、颜色，低→高）
func Legend() []LegendEntry {
	entries := make([]LegendEntry, 0, SEVERITY_CLASS_NUM)
	for id := 1; id <= SEVERITY_CLASS_NUM; id++ {
		entries = append(entries, LegendEntry{ClassId: id, Label: classLabels[id], Color: severityPalette[id-1]})
	}
	return entries
}

// 渲染烈度分类图为调色板PNG（0类透明），并在旁路输出图例JSON
func (g *BurnToolbox) RenderClassified(classifiedPath, title, outPath string) (err error) {
	log.Info(g.logTag+"start render classified", zap.String("classified", classifiedPath), zap.String("out", outPath))
	img, err := g.paletteImage(classifiedPath)
	if err != nil {
		return
	}
	if err = g.writePng(outPath, img); err != nil {
		return
	}
	legend, _ := json.MarshalIndent(legendSidecar{Title: title, Classes: Legend()}, "", "  ")
	if err = os.WriteFile(outPath+LEGEND_EXT, legend, os.ModePerm); err != nil {
		log.Error(g.logTag+"write legend failed", zap.String("out", outPath), zap.Error(err))
		return
	}
	log.Info(g.logTag+"render done", zap.String("out", outPath),
		zap.Int("width", img.Rect.Dx()), zap.Int("height", img.Rect.Dy()))
	return
}

// 渲染缩略图，最长边不超过maxDim（最近邻缩放，保持类别色不混色）
func (g *BurnToolbox) RenderPreview(classifiedPath, outPath string, maxDim uint) (err error) {
	img, err := g.paletteImage(classifiedPath)
	if err != nil {
		return
	}
	thumb := resize.Thumbnail(maxDim, maxDim, img, resize.NearestNeighbor)
	if err = g.writePng(outPath, thumb); err != nil {
		return
	}
	log.Info(g.logTag+"preview done", zap.String("out", outPath), zap.Uint("maxDim", maxDim))
	return
}

func (g *BurnToolbox) paletteImage(classifiedPath string) (img *image.Paletted, err error) {
	classes, x, y, _, err := g.readByteRaster(classifiedPath)
	if err != nil {
		return
	}
	pal := make(color.Palette, 1, SEVERITY_CLASS_NUM+1)
	pal[0] = color.NRGBA{} // 0类透明
	for _, hex := range severityPalette {
		pal = append(pal, hexToColor(hex))
	}
	img = image.NewPaletted(image.Rect(0, 0, x, y), pal)
	for i, c := range classes {
		if c > SEVERITY_CLASS_NUM {
			c = 0
		}
		img.Pix[i] = c
	}
	return
}

// PNG同样先写临时文件再改名
func (g *BurnToolbox) writePng(out string, img image.Image) (err error) {
	tmp := out + "." + uuid.NewString() + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		log.Error(g.logTag+"create png failed", zap.String("out", out), zap.Error(err))
		return
	}
	err = png.Encode(f, img)
	if e := f.Close(); err == nil {
		err = e
	}
	if err != nil {
		log.Error(g.logTag+"encode png failed", zap.String("out", out), zap.Error(err))
		os.Remove(tmp)
		return
	}
	if err = os.Rename(tmp, out); err != nil {
		os.Remove(tmp)
	}
	return
}

func hexToColor(s string) color.NRGBA {
	v, _ := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
