package burnlib

// 栅格空间元数据：仿射地理变换、投影WKT、可选nodata值
type RasterMeta struct {
	GeoTransform [6]float64
	Projection   string
	NoData       *float64
}

// 单个烈度类的面积条目
type ClassArea struct {
	ClassId      int     `json:"class_id,omitempty"`
	AreaHectares float64 `json:"area_hectares"`
}

// 面积报告：标签 -> 面积条目，含TOTAL_AREA_KEY合计条目（仅面积）
type AreaReport map[string]ClassArea

// 报告中的合计面积（公顷）
func (r AreaReport) Total() float64 {
	return r[TOTAL_AREA_KEY].AreaHectares
}

// 图例条目
type LegendEntry struct {
	ClassId int    `json:"class_id"`
	Label   string `json:"label"`
	Color   string `json:"color"`
}

// NBR影像对获取请求
type NbrRequest struct {
	AoiName    string
	AoiWkt     string
	PreWindow  [2]string
	PostWindow [2]string
	Scale      int
}

// 已配准的火前/火后NBR栅格文件对
type NbrPair struct {
	PrePath  string
	PostPath string
}
