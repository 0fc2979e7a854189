package burnlib

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/wgdzlh/burnlib/log"

	"go.uber.org/zap"
)

const nominatimURL = "https://nominatim.openstreetmap.org/search"

// 地名解析器。UserAgent为显式配置（Nominatim使用策略要求），不依赖任何全局状态
type Geocoder struct {
	BaseURL   string
	UserAgent string
	Client    *http.Client
}

func NewGeocoder(userAgent string) *Geocoder {
	return &Geocoder{
		BaseURL:   nominatimURL,
		UserAgent: userAgent,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup 地名转经纬度范围[lonMin, lonMax, latMin, latMax]（EPSG:4326）
func (gc *Geocoder) Lookup(name string) (span [4]float64, err error) {
	req, err := http.NewRequest(http.MethodGet,
		fmt.Sprintf("%s?format=json&limit=1&q=%s", gc.BaseURL, url.QueryEscape(name)), nil)
	if err != nil {
		return
	}
	req.Header.Set("User-Agent", gc.UserAgent)
	resp, err := gc.Client.Do(req)
	if err != nil {
		log.Error("Geocoder: lookup request failed", zap.String("name", name), zap.Error(err))
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("geocoder status %d", resp.StatusCode)
		return
	}
	var hits []struct {
		// Nominatim次序为[latMin, latMax, lonMin, lonMax]
		BoundingBox [4]string `json:"boundingbox"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return
	}
	if len(hits) == 0 {
		err = ErrPlaceNotFound
		return
	}
	bb := hits[0].BoundingBox
	for i, j := range [4]int{2, 3, 0, 1} {
		if span[i], err = strconv.ParseFloat(bb[j], 64); err != nil {
			return
		}
	}
	log.Info("Geocoder: place resolved", zap.String("name", name), zap.Any("span", span))
	return
}
