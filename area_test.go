package burnlib

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountClasses(t *testing.T) {
	classes := []byte{0, 3, 3, 7, 1, 3, 200, 7}
	counts := countClasses(classes)
	assert.Equal(t, 1, counts[0])
	assert.Equal(t, 1, counts[1])
	assert.Equal(t, 3, counts[3])
	assert.Equal(t, 2, counts[7])
	assert.Equal(t, 0, counts[5])
}

func TestBuildAreaReport(t *testing.T) {
	var counts [SEVERITY_CLASS_NUM + 1]int
	counts[0] = 50 // 未分类，不计入
	counts[3] = 10000
	counts[6] = 2500
	report := buildAreaReport(counts, 100) // 10m像元

	assert.Equal(t, ClassArea{ClassId: 3, AreaHectares: 100}, report["Unburned"])
	assert.Equal(t, ClassArea{ClassId: 6, AreaHectares: 25}, report["High-Severity Burn"])
	assert.Equal(t, float64(125), report.Total())
	assert.Zero(t, report["Low-Severity Burn"].AreaHectares)
	assert.Len(t, report, 3) // 两个类别 + 合计
}

func TestAreaReportSumMatchesTotal(t *testing.T) {
	var counts [SEVERITY_CLASS_NUM + 1]int
	for id := 1; id <= SEVERITY_CLASS_NUM; id++ {
		counts[id] = 333*id + 1
	}
	report := buildAreaReport(counts, 97.3)

	var sum float64
	for label, entry := range report {
		if label != TOTAL_AREA_KEY {
			sum += entry.AreaHectares
		}
	}
	assert.InDelta(t, report.Total(), sum, 0.01)
}

func TestAreaReportJSONLayout(t *testing.T) {
	var counts [SEVERITY_CLASS_NUM + 1]int
	counts[7] = 2500
	report := buildAreaReport(counts, 100)

	raw, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]map[string]float64
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, float64(7), decoded["Extreme-Severity Burn"]["class_id"])
	assert.Equal(t, float64(25), decoded["Extreme-Severity Burn"]["area_hectares"])
	assert.NotContains(t, decoded[TOTAL_AREA_KEY], "class_id")
	assert.Equal(t, float64(25), decoded[TOTAL_AREA_KEY]["area_hectares"])
}

func TestRoundHectares(t *testing.T) {
	assert.Equal(t, 2.5, roundHectares(25000))
	assert.Equal(t, 0.01, roundHectares(123.4))
	assert.Equal(t, float64(0), roundHectares(0))
}
