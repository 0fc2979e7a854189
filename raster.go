package burnlib

import (
	"os"
	"sync"

	"github.com/wgdzlh/burnlib/log"

	gdal "github.com/airbusgeo/godal"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var registerOnce sync.Once

func registerGdalDrivers() {
	registerOnce.Do(gdal.RegisterAll)
}

// 打开单波段栅格，读取波段尺寸及空间元数据
func (g *BurnToolbox) openSingleBand(tif string) (sds *gdal.Dataset, x, y int, meta RasterMeta, err error) {
	sds, err = gdal.Open(tif, gdal.RasterOnly())
	if err != nil {
		log.Error(g.logTag+"open tif failed", zap.String("tif", tif), zap.Error(err))
		err = ErrInvalidTif
		return
	}
	tifBands := sds.Bands()
	if bc := len(tifBands); bc != 1 {
		log.Error(g.logTag+"tif can have only one band", zap.String("tif", tif), zap.Int("bands", bc))
		sds.Close()
		sds = nil
		err = ErrWrongTif
		return
	}
	bandStruct := tifBands[0].Structure()
	x = bandStruct.SizeX
	y = bandStruct.SizeY
	if meta.GeoTransform, err = sds.GeoTransform(); err != nil {
		log.Error(g.logTag+"read tif geotransform failed", zap.String("tif", tif), zap.Error(err))
		sds.Close()
		sds = nil
		err = ErrTifReadFailed
		return
	}
	meta.Projection = sds.Projection()
	if nd, ok := tifBands[0].NoData(); ok {
		meta.NoData = &nd
	}
	return
}

// 读取float32单波段栅格（连续值，如NBR、dNBR）
func (g *BurnToolbox) readFloat32Raster(tif string) (buf []float32, x, y int, meta RasterMeta, err error) {
	sds, x, y, meta, err := g.openSingleBand(tif)
	if err != nil {
		return
	}
	defer sds.Close()
	buf = make([]float32, x*y)
	if err = sds.Bands()[0].IO(gdal.IORead, 0, 0, buf, x, y); err != nil {
		log.Error(g.logTag+"read tif band failed", zap.String("tif", tif), zap.Error(err))
		buf = nil
		err = ErrTifReadFailed
	}
	return
}

// 读取uint8单波段栅格（分类值）
func (g *BurnToolbox) readByteRaster(tif string) (buf []byte, x, y int, meta RasterMeta, err error) {
	sds, x, y, meta, err := g.openSingleBand(tif)
	if err != nil {
		return
	}
	defer sds.Close()
	buf = make([]byte, x*y)
	if err = sds.Bands()[0].IO(gdal.IORead, 0, 0, buf, x, y); err != nil {
		log.Error(g.logTag+"read tif band failed", zap.String("tif", tif), zap.Error(err))
		buf = nil
		err = ErrTifReadFailed
	}
	return
}

// 写出LZW压缩的单波段GTiff；先写临时文件再改名，失败时不留下半成品
func (g *BurnToolbox) writeRaster(out string, dt gdal.DataType, buf interface{}, x, y int, meta RasterMeta) (err error) {
	tmp := out + "." + uuid.NewString() + ".tmp"
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()
	ds, err := gdal.Create(gdal.GTiff, tmp, 1, dt, x, y, gdal.CreationOption(COMPRESS_OPTION))
	if err != nil {
		log.Error(g.logTag+"create tif failed", zap.String("tif", out), zap.Error(err))
		err = ErrTifWriteFailed
		return
	}
	if err = ds.SetGeoTransform(meta.GeoTransform); err == nil && meta.Projection != "" {
		err = ds.SetProjection(meta.Projection)
	}
	if err == nil && meta.NoData != nil {
		err = ds.Bands()[0].SetNoData(*meta.NoData)
	}
	if err == nil {
		err = ds.Bands()[0].IO(gdal.IOWrite, 0, 0, buf, x, y)
	}
	if e := ds.Close(); err == nil {
		err = e
	}
	if err != nil {
		log.Error(g.logTag+"write tif failed", zap.String("tif", out), zap.Error(err))
		err = ErrTifWriteFailed
		return
	}
	if err = os.Rename(tmp, out); err != nil {
		log.Error(g.logTag+"rename tif failed", zap.String("tif", out), zap.Error(err))
		err = ErrTifWriteFailed
	}
	return
}
