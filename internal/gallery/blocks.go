package gallery

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// bigBlockWidth is the fixed pixel width of the main photo frames.
	bigBlockWidth = "800"

	// bigBlockMinBorder separates photo frames (border 6..9) from the
	// thin-bordered caption tables (border 1).
	bigBlockMinBorder = 6

	// maxCaptionTables caps the caption walk: equipment first, then
	// location/date.
	maxCaptionTables = 2
)

// isBigImageTable reports whether a table is a main photo frame: 800px
// wide, thick border, and holding at least one .jpg image.
func isBigImageTable(n *html.Node) bool {
	if !isElement(n, "table") {
		return false
	}
	if attr(n, "width") != bigBlockWidth {
		return false
	}
	if intAttr(n, "border", 0) < bigBlockMinBorder {
		return false
	}
	return firstJPGImage(n) != nil
}

// firstJPGImage returns the first descendant <img> with a .jpg src, or nil.
func firstJPGImage(n *html.Node) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if isElement(n, "img") && IsJPG(attr(n, "src")) {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}

// blockImages returns (thumbnail, large) for the primary photo of a frame.
// The preferred shape is an anchor wrapping the thumbnail with the href
// pointing at the full-size image; frames without the anchor still yield
// the thumbnail.
func blockImages(tbl *html.Node) (string, string) {
	if a := firstElement(tbl, "a", "href"); a != nil {
		if img := firstElement(a, "img", "src"); img != nil && IsJPG(attr(img, "src")) {
			large := ""
			if href := attr(a, "href"); IsJPG(href) {
				large = href
			}
			return attr(img, "src"), large
		}
	}
	if img := firstElement(tbl, "img", "src"); img != nil && IsJPG(attr(img, "src")) {
		return attr(img, "src"), ""
	}
	return "", ""
}

// followingCaptionTables collects compact text from the next thin-bordered
// 800px tables after a photo frame. The walk stops at the next frame so
// captions never leak between blocks.
func followingCaptionTables(tbl *html.Node, max int) []string {
	var texts []string
	for sib := tbl.NextSibling; sib != nil; sib = sib.NextSibling {
		if !isElement(sib, "table") {
			continue
		}
		if attr(sib, "width") == bigBlockWidth && attr(sib, "border") == "1" {
			texts = append(texts, CompactText(nodeText(sib)))
			if len(texts) >= max {
				break
			}
		}
		if isBigImageTable(sib) {
			break
		}
	}
	return texts
}

// parseBigBlocks extracts one row per 800px photo frame in the document.
func parseBigBlocks(doc *goquery.Document) []Row {
	var rows []Row
	doc.Find("table").Each(func(_ int, s *goquery.Selection) {
		tbl := s.Get(0)
		if !isBigImageTable(tbl) {
			return
		}

		thumb, large := blockImages(tbl)
		if !IsJPG(thumb) {
			return
		}

		var equipment, location string
		captions := followingCaptionTables(tbl, maxCaptionTables)
		if len(captions) >= 1 {
			equipment = captions[0]
		}
		if len(captions) >= 2 {
			location = captions[1]
		}

		rows = append(rows, Row{
			Thumbnail:    thumb,
			Large:        large,
			Equipment:    equipment,
			LocationDate: location,
			Stage:        stageLabelFor(tbl),
		})
	})
	return rows
}
