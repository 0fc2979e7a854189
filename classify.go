package burnlib

import (
	"github.com/wgdzlh/burnlib/log"

	gdal "github.com/airbusgeo/godal"
	"go.uber.org/zap"
)

// 按固定阈值将dNBR栅格分为1~7级烈度（低→高），NaN记为0（未分类）。
// 输出uint8栅格，空间元数据沿用输入。
func (g *BurnToolbox) ClassifySeverity(dnbrPath, outPath string) (out string, err error) {
	log.Info(g.logTag+"start classify severity", zap.String("dnbr", dnbrPath))
	dnbr, x, y, meta, err := g.readFloat32Raster(dnbrPath)
	if err != nil {
		return
	}
	classes := make([]byte, len(dnbr))
	for i, v := range dnbr {
		classes[i] = classifyValue(v)
	}
	meta.NoData = nil // 分类栅格以0表示未分类，不沿用连续值的nodata
	if err = g.writeRaster(outPath, gdal.Byte, classes, x, y, meta); err != nil {
		return
	}
	out = outPath
	log.Info(g.logTag+"classified written", zap.String("out", out), zap.Int("width", x), zap.Int("height", y))
	return
}

// dNBR值到烈度类的映射，各区间上界闭
func classifyValue(v float32) byte {
	if v != v { // NaN
		return 0
	}
	for i, cut := range severityCuts {
		if v <= cut {
			return byte(i + 1)
		}
	}
	return SEVERITY_CLASS_NUM
}
