// Package listing flattens parsed gallery rows into the fixed-column
// records of the image listing workbook and drives the per-folder
// pipeline.
package listing

import (
	"path/filepath"

	"github.com/alecearnshaw-coder/fotosaves-NT/internal/gallery"
)

// Headers are the listing columns in workbook order (columns B through P;
// column A is left blank for manual annotations).
var Headers = []string{
	"Species_ID",
	"Slug",
	"Subspecies_ID",
	"Slide",
	"Cover",
	"Thumbnail_Filename",
	"Large_Filename",
	"Equipment",
	"Sex_Age",
	"Location",
	"Province",
	"Country",
	"Date",
	"Location_Date",
	"Threat_Status",
}

// Record is one workbook row. Several fields are always empty: they hold
// their column so the manual enrichment that follows extraction lands in
// fixed positions.
type Record struct {
	SpeciesID    string
	Slug         string
	SubspeciesID string
	Slide        string
	Cover        string
	Thumbnail    string
	Large        string
	Equipment    string
	SexAge       string
	Location     string
	Province     string
	Country      string
	Date         string
	LocationDate string
	ThreatStatus string
}

// Values returns the record's cells in Headers order.
func (r Record) Values() []string {
	return []string{
		r.SpeciesID,
		r.Slug,
		r.SubspeciesID,
		r.Slide,
		r.Cover,
		r.Thumbnail,
		r.Large,
		r.Equipment,
		r.SexAge,
		r.Location,
		r.Province,
		r.Country,
		r.Date,
		r.LocationDate,
		r.ThreatStatus,
	}
}

// FromResult flattens one page's parse result into records for a species.
// Rows without a .jpg thumbnail are dropped; the parsers already enforce
// this, but the listing is the contract so it is re-checked here.
func FromResult(species string, res *gallery.Result) []Record {
	records := make([]Record, 0, len(res.Rows))
	for _, row := range res.Rows {
		if !gallery.IsJPG(row.Thumbnail) {
			continue
		}
		slide := ""
		if row.Small {
			slide = "Y"
		}
		records = append(records, Record{
			Slug:         species,
			Slide:        slide,
			Thumbnail:    row.Thumbnail,
			Large:        row.Large,
			Equipment:    row.Equipment,
			SexAge:       row.Stage,
			LocationDate: row.LocationDate,
			ThreatStatus: res.ThreatStatus,
		})
	}
	return records
}

// OutputName derives the workbook filename from the target folder.
func OutputName(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	base := filepath.Base(abs)
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "Image_Listing"
	}
	return base + "_Image_Listing.xlsx"
}
