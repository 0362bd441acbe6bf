package gallery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

const (
	// threatHeaderPhrase identifies the conservation-status header table.
	threatHeaderPhrase = "globally threatened species"

	// threatSiblingScan bounds how many tables after the header are
	// checked for the marked status row.
	threatSiblingScan = 4
)

// threatVariants maps canonical labels to tolerant match patterns. The
// pages were typed by hand over two decades, so each label carries its
// observed misspellings ("Nearth-threatened", "Cirtically-endagered") and
// Spanish counterparts. Ordered most specific first: "Critically
// endangered" must never degrade to plain "Endangered".
var threatVariants = []struct {
	label    string
	patterns []string
}{
	{"Critically Endangered", []string{
		`\bcritical(?:ly)?[\s\-]*endanger(?:ed|d)\b`,
		`\bcirtical(?:ly)?[\s\-]*endager(?:ed|d)\b`,
		`\ben[\s\-]*peligro[\s\-]*critico\b`,
	}},
	{"Near-threatened", []string{
		`\bnear[\s\-]*threaten(?:ed|ned)\b`,
		`\bnearth[\s\-]*threat(?:en(?:ed)?|ed|ned)\b`,
		`\bnear[\s\-]*threated\b`,
		`\bnear[\s\-]*threat\w*\b`,
		`\bcasi[\s\-]*amenazad[ao]s?\b`,
	}},
	{"Endangered", []string{
		`\bendanger(?:ed|d)\b`,
		`\ben[\s\-]*peligro\b`,
	}},
	{"Vulnerable", []string{
		`\bvulnerable\b`,
	}},
}

// threatMatcher holds the compiled patterns for one canonical label. The
// marked variants additionally require a selection marker after the label,
// for header tables that inline the choice as "Label : x".
type threatMatcher struct {
	label  string
	plain  []*regexp.Regexp
	marked []*regexp.Regexp
}

var threatMatchers = compileThreatMatchers()

func compileThreatMatchers() []threatMatcher {
	matchers := make([]threatMatcher, 0, len(threatVariants))
	for _, v := range threatVariants {
		m := threatMatcher{label: v.label}
		for _, p := range v.patterns {
			m.plain = append(m.plain, regexp.MustCompile(`(?i)`+p))
			m.marked = append(m.marked, regexp.MustCompile(`(?i)`+p+`\s*[:\-]?\s*[x×]`))
		}
		matchers = append(matchers, m)
	}
	return matchers
}

// matchThreat returns the canonical label for the first variant matching
// anywhere in text, or "".
func matchThreat(text string) string {
	for _, m := range threatMatchers {
		for _, re := range m.plain {
			if re.MatchString(text) {
				return m.label
			}
		}
	}
	return ""
}

// statusInTable scans a table for the marked status row: the status grid
// puts an "x" (or "×") in a dedicated cell on the selected row. The label
// is read from the rightmost cell (usually the English column), falling
// back to the whole row text.
func statusInTable(tbl *html.Node) string {
	if !isElement(tbl, "table") {
		return ""
	}
	for _, tr := range findAll(tbl, "tr") {
		tds := findAll(tr, "td")
		if len(tds) == 0 {
			continue
		}

		marker := false
		for _, td := range tds {
			switch strings.ToLower(CompactText(nodeText(td))) {
			case "x", "×":
				marker = true
			}
			if marker {
				break
			}
		}
		if !marker {
			continue
		}

		if label := matchThreat(CompactText(nodeText(tds[len(tds)-1]))); label != "" {
			return label
		}
		if label := matchThreat(CompactText(nodeText(tr))); label != "" {
			return label
		}
	}
	return ""
}

// FindThreatStatus locates the page-level conservation status. It anchors
// on the "Globally threatened species" header table, checks it and the few
// tables after it for a marked row, then tries inline "Label : x" text in
// the header itself. As a last resort every table is scanned for a marked
// row.
func FindThreatStatus(doc *goquery.Document) string {
	root := doc.Get(0)
	if root == nil {
		return ""
	}
	tables := htmlquery.Find(root, "//table")

	for _, tbl := range tables {
		raw := nodeText(tbl)
		if !strings.Contains(strings.ToLower(CompactText(raw)), threatHeaderPhrase) {
			continue
		}

		if label := statusInTable(tbl); label != "" {
			return label
		}

		seen := 0
		for sib := tbl.NextSibling; sib != nil; sib = sib.NextSibling {
			if !isElement(sib, "table") {
				continue
			}
			seen++
			if label := statusInTable(sib); label != "" {
				return label
			}
			if seen >= threatSiblingScan {
				break
			}
		}

		for _, m := range threatMatchers {
			for _, re := range m.marked {
				if re.MatchString(raw) {
					return m.label
				}
			}
		}
	}

	for _, tbl := range tables {
		if label := statusInTable(tbl); label != "" {
			return label
		}
	}
	return ""
}
