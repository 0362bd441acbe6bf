package gallery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ffnBackground marks a contact-sheet thumbnail slot: the cell's
// background references the shared film-frame graphic.
const ffnBackground = "ffn.gif"

// isFfnCell reports whether a td is a contact-sheet thumbnail slot.
func isFfnCell(td *html.Node) bool {
	return strings.Contains(attr(td, "background"), ffnBackground)
}

// tableHasFfnCell reports whether any td in the table is a thumbnail slot.
func tableHasFfnCell(tbl *html.Node) bool {
	for _, td := range findAll(tbl, "td") {
		if isFfnCell(td) {
			return true
		}
	}
	return false
}

// cellColspan returns a td's colspan, defaulting to 1 when absent or
// malformed.
func cellColspan(td *html.Node) int {
	span := intAttr(td, "colspan", 1)
	if span < 1 {
		return 1
	}
	return span
}

// expandRowText returns one text entry per spanned column for a row, so
// caption text lines up with the thumbnail columns underneath it.
func expandRowText(tds []*html.Node) []string {
	var expanded []string
	for _, td := range tds {
		text := CompactText(nodeText(td))
		for i := 0; i < cellColspan(td); i++ {
			expanded = append(expanded, text)
		}
	}
	return expanded
}

// mergeCaptionRow folds a text row into the running per-column captions.
// Rows of equal width stack per column ("prev cur"); a different width
// replaces the captions outright, and an all-blank row resets them so text
// never bleeds into an unrelated group of thumbnails.
func mergeCaptionRow(prev, cur []string) []string {
	blank := true
	for _, t := range cur {
		if t != "" {
			blank = false
			break
		}
	}
	if blank {
		return nil
	}
	if len(prev) == 0 || len(prev) != len(cur) {
		return cur
	}
	merged := make([]string, len(cur))
	for i := range cur {
		switch {
		case prev[i] != "" && cur[i] != "":
			merged[i] = prev[i] + " " + cur[i]
		case prev[i] != "":
			merged[i] = prev[i]
		default:
			merged[i] = cur[i]
		}
	}
	return merged
}

// ffnCellRow builds a thumbnail row from a single contact-sheet cell.
// Cells without a .jpg thumbnail (spacers, decorations) yield nothing.
func ffnCellRow(td *html.Node) (Row, bool) {
	row := Row{Small: true}
	if img := firstElement(td, "img", "src"); img != nil && IsJPG(attr(img, "src")) {
		row.Thumbnail = attr(img, "src")
	}
	if row.Thumbnail == "" {
		return Row{}, false
	}
	if a := firstElement(td, "a", "href"); a != nil && IsJPG(attr(a, "href")) {
		row.Large = attr(a, "href")
	}
	return row, true
}

// parseContactSheets extracts thumbnail rows from ffn.gif contact tables.
// Text rows above an image row carry per-column captions (location/date);
// colspan expansion keeps captions aligned with their thumbnails.
func parseContactSheets(doc *goquery.Document) []Row {
	var rows []Row
	doc.Find("table").Each(func(_ int, s *goquery.Selection) {
		tbl := s.Get(0)
		if !tableHasFfnCell(tbl) {
			return
		}

		stage := stageLabelFor(tbl)
		var captions []string

		for _, tr := range findAll(tbl, "tr") {
			tds := findAll(tr, "td")

			hasFfn := false
			for _, td := range tds {
				if isFfnCell(td) {
					hasFfn = true
					break
				}
			}

			if !hasFfn {
				captions = mergeCaptionRow(captions, expandRowText(tds))
				continue
			}

			col := 0
			for _, td := range tds {
				if isFfnCell(td) {
					if row, ok := ffnCellRow(td); ok {
						if col < len(captions) {
							row.LocationDate = captions[col]
						}
						row.Stage = stage
						rows = append(rows, row)
					}
				}
				col += cellColspan(td)
			}
		}
	})
	return rows
}
