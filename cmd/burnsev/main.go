package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wgdzlh/burnlib"
	"github.com/wgdzlh/burnlib/log"
	"github.com/wgdzlh/burnlib/utils"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	prePtr := flag.String("pre", "", "Path to pre-fire NBR GeoTIFF")
	postPtr := flag.String("post", "", "Path to post-fire NBR GeoTIFF")
	dirPtr := flag.String("dir", envOrDefault("WORK_DIR", "."), "Work directory for inputs and outputs")
	namePtr := flag.String("name", "", "AOI name, resolves {name}_pre_nbr.tif/{name}_post_nbr.tif under -dir when -pre/-post are omitted")
	placePtr := flag.String("place", "", "Optional place name to geocode; prints the AOI extent WKT")
	titlePtr := flag.String("title", "Burn Severity Class", "Map title for the rendered output")
	pngPtr := flag.Bool("png", false, "Render the classified map as PNG")
	previewPtr := flag.Uint("preview", 0, "Also write a thumbnail with this max dimension (0 = off)")
	flag.Parse()

	log.Setup(envOrDefault("LOG_LEVEL", "info"))
	defer log.Sync()

	if !utils.IsDirectory(*dirPtr) {
		fatal(fmt.Errorf("work directory does not exist: %s", *dirPtr))
	}

	tb := burnlib.NewBurnToolbox(*dirPtr)

	if *placePtr != "" {
		gc := burnlib.NewGeocoder(envOrDefault("GEOCODER_USER_AGENT", "burnlib_analysis_v1"))
		span, err := gc.Lookup(*placePtr)
		fatal(err)
		aoiWkt := burnlib.SpanToWkt(span)
		fatal(tb.CheckWkt(aoiWkt, burnlib.UNIVERSAL_SRID))
		fmt.Fprintf(os.Stderr, "AOI for %q: %s\n", *placePtr, aoiWkt)
	}

	name := *namePtr
	prePath, postPath := *prePtr, *postPtr
	if prePath == "" || postPath == "" {
		if name == "" {
			flag.PrintDefaults()
			os.Exit(1)
		}
		pair, err := burnlib.DirProvider{Dir: *dirPtr}.FetchNbrPair(burnlib.NbrRequest{AoiName: name})
		fatal(err)
		prePath, postPath = pair.PrePath, pair.PostPath
	} else if name == "" {
		name = strings.TrimSuffix(utils.GetFilenameWithoutExt(prePath), "_pre_nbr")
	}

	dnbrPath := filepath.Join(*dirPtr, name+"_dnbr.tif")
	classifiedPath := filepath.Join(*dirPtr, name+"_classified.tif")

	_, err := tb.ComputeDNBR(prePath, postPath, dnbrPath)
	fatal(err)
	_, err = tb.ClassifySeverity(dnbrPath, classifiedPath)
	fatal(err)
	report, err := tb.AggregateArea(classifiedPath)
	fatal(err)

	if *pngPtr {
		fatal(tb.RenderClassified(classifiedPath, *titlePtr, filepath.Join(*dirPtr, name+"_severity.png")))
		if *previewPtr > 0 {
			fatal(tb.RenderPreview(classifiedPath, filepath.Join(*dirPtr, name+"_severity_preview.png"), *previewPtr))
		}
	}

	out, err := json.MarshalIndent(report, "", "  ")
	fatal(err)
	fmt.Println(string(out))
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fatal(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
