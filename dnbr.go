package burnlib

import (
	"github.com/wgdzlh/burnlib/log"

	gdal "github.com/airbusgeo/godal"
	"go.uber.org/zap"
)

// 计算dNBR（火前NBR - 火后NBR），输出沿用火前栅格的空间元数据。
// 无效像元（NaN或波段nodata值）在相减前各自置0参与运算。
// 两景影像尺寸不一致时返回ErrShapeMismatch，且不产生任何输出文件。
func (g *BurnToolbox) ComputeDNBR(prePath, postPath, outPath string) (out string, err error) {
	log.Info(g.logTag+"start compute dnbr", zap.String("pre", prePath), zap.String("post", postPath))
	pre, px, py, preMeta, err := g.readFloat32Raster(prePath)
	if err != nil {
		return
	}
	post, qx, qy, postMeta, err := g.readFloat32Raster(postPath)
	if err != nil {
		return
	}
	if px != qx || py != qy {
		log.Error(g.logTag+"nbr shape mismatch",
			zap.Int("preWidth", px), zap.Int("preHeight", py),
			zap.Int("postWidth", qx), zap.Int("postHeight", qy))
		err = ErrShapeMismatch
		return
	}
	zeroFillInvalid(pre, preMeta.NoData)
	zeroFillInvalid(post, postMeta.NoData)
	dnbr := make([]float32, len(pre))
	for i := range dnbr {
		dnbr[i] = pre[i] - post[i]
	}
	if err = g.writeRaster(outPath, gdal.Float32, dnbr, px, py, preMeta); err != nil {
		return
	}
	out = outPath
	log.Info(g.logTag+"dnbr written", zap.String("out", out), zap.Int("width", px), zap.Int("height", py))
	return
}

// NaN及nodata像元置0
func zeroFillInvalid(buf []float32, noData *float64) {
	var nd float32
	hasNd := noData != nil
	if hasNd {
		nd = float32(*noData)
	}
	for i, v := range buf {
		if v != v || (hasNd && v == nd) {
			buf[i] = 0
		}
	}
}
