package burnlib

const (
	FILE_EXT_TIF = ".tif"
	FILE_EXT_PNG = ".png"

	UNIVERSAL_SRID    = 4326
	WEB_MERCATOR_SRID = 3857

	COMPRESS_OPTION = "COMPRESS=LZW"

	SEVERITY_CLASS_NUM = 7
	SQM_PER_HECTARE    = 10000

	TOTAL_AREA_KEY = "Total_Analyzed_Area"

	PRE_NBR_SUFFIX  = "_pre_nbr" + FILE_EXT_TIF
	POST_NBR_SUFFIX = "_post_nbr" + FILE_EXT_TIF

	LEGEND_EXT = ".legend.json"

	TMP_WARP_TIF = "warp_%s.tif"
)

// dNBR分级阈值，各区间上界闭、下界开
var severityCuts = [SEVERITY_CLASS_NUM - 1]float32{-0.251, -0.101, 0.100, 0.270, 0.440, 0.660}

// 烈度类标签，下标即类别值（0为未分类）
var classLabels = [SEVERITY_CLASS_NUM + 1]string{
	1: "Enhanced Regrowth, High",
	2: "Enhanced Regrowth, Moderate",
	3: "Unburned",
	4: "Low-Severity Burn",
	5: "Moderate-Severity Burn",
	6: "High-Severity Burn",
	7: "Extreme-Severity Burn",
}

// 烈度类色带（低→高）
var severityPalette = [SEVERITY_CLASS_NUM]string{
	"#1a9850", "#91cf60", "#d9ef8b", "#fee08b", "#fc8d59", "#d73027", "#7f0000",
}
