package burnlib

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/wgdzlh/burnlib/log"

	gdal "github.com/airbusgeo/godal"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 统计分类栅格中各烈度类的面积（公顷），0类（未分类）不计入报告及合计。
// 先将栅格重投影至Web墨卡托（EPSG:3857，最近邻采样，避免插值破坏类别值），
// 取重投影后格网的像元面积；像元计数则取自原始格网。
// 注意：该混合算法沿用既有口径，3857并非等积投影，纬度越高面积估计偏差越大。
func (g *BurnToolbox) AggregateArea(classifiedPath string) (report AreaReport, err error) {
	log.Info(g.logTag+"start aggregate area", zap.String("classified", classifiedPath))
	classes, x, y, _, err := g.readByteRaster(classifiedPath)
	if err != nil {
		return
	}
	pixelArea, err := g.warpedPixelArea(classifiedPath)
	if err != nil {
		return
	}
	report = buildAreaReport(countClasses(classes), pixelArea)
	log.Info(g.logTag+"area aggregated", zap.Int("width", x), zap.Int("height", y),
		zap.Float64("pixelAreaM2", pixelArea), zap.Float64("totalHa", report.Total()))
	return
}

// 重投影到EPSG:3857后的单像元面积（平方米）
func (g *BurnToolbox) warpedPixelArea(tif string) (pixelArea float64, err error) {
	sds, err := gdal.Open(tif, gdal.RasterOnly())
	if err != nil {
		log.Error(g.logTag+"open tif failed", zap.String("tif", tif), zap.Error(err))
		err = ErrInvalidTif
		return
	}
	tmpTif := filepath.Join(g.tmpDir, fmt.Sprintf(TMP_WARP_TIF, uuid.NewString()))
	defer os.Remove(tmpTif)
	opts := []string{
		"-t_srs", fmt.Sprintf("epsg:%d", WEB_MERCATOR_SRID),
		"-r", "near",
		"-overwrite",
		"-co", COMPRESS_OPTION,
	}
	ods, err := gdal.Warp(tmpTif, []*gdal.Dataset{sds}, opts)
	sds.Close()
	if err != nil {
		log.Error(g.logTag+"failed to warp classified raster", zap.String("tif", tif), zap.Error(err))
		err = ErrWarpFailed
		return
	}
	gt, err := ods.GeoTransform()
	ods.Close()
	if err != nil {
		log.Error(g.logTag+"read warped geotransform failed", zap.Error(err))
		err = ErrWarpFailed
		return
	}
	pixelArea = math.Abs(gt[1] * gt[5])
	return
}

// 各类别像元计数，下标即类别值；超出0~7的值忽略
func countClasses(classes []byte) (counts [SEVERITY_CLASS_NUM + 1]int) {
	for _, c := range classes {
		if c <= SEVERITY_CLASS_NUM {
			counts[c]++
		}
	}
	return
}

// 由像元计数和像元面积生成面积报告，仅收录计数非零的类别
func buildAreaReport(counts [SEVERITY_CLASS_NUM + 1]int, pixelAreaM2 float64) AreaReport {
	report := make(AreaReport, SEVERITY_CLASS_NUM+1)
	var totalM2 float64
	for id := 1; id <= SEVERITY_CLASS_NUM; id++ {
		if counts[id] == 0 {
			continue
		}
		areaM2 := float64(counts[id]) * pixelAreaM2
		report[classLabels[id]] = ClassArea{ClassId: id, AreaHectares: roundHectares(areaM2)}
		totalM2 += areaM2
	}
	report[TOTAL_AREA_KEY] = ClassArea{AreaHectares: roundHectares(totalM2)}
	return report
}

// 平方米转公顷，保留两位小数
func roundHectares(areaM2 float64) float64 {
	return math.Round(areaM2/SQM_PER_HECTARE*100) / 100
}
