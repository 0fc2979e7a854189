package burnlib

import "errors"

var (
	ErrInvalidTif     = errors.New("gdal tif open err")
	ErrWrongTif       = errors.New("gdal tif wrong band layout")
	ErrTifReadFailed  = errors.New("gdal tif read err")
	ErrTifWriteFailed = errors.New("gdal tif write err")
	ErrWarpFailed     = errors.New("gdal warp err")
	ErrShapeMismatch  = errors.New("nbr raster shape mismatch")
	ErrInvalidWKT     = errors.New("invalid WKT")
	ErrNbrPairMissing = errors.New("nbr raster pair missing")
	ErrPlaceNotFound  = errors.New("place not found")
)
