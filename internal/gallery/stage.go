package gallery

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// stageKeywords flags the short sex/age/life-stage header tables. The
// pages mix English and Spanish labels, so both sets are checked as
// substrings of the lowercased table text.
var stageKeywords = []string{
	// English
	"male", "female", "chicks", "juvenile", "immature", "immatures",
	"subadult", "sub-adult", "nest", "nymph", "egg", "eggs", "adult",
	// Spanish
	"macho", "hembra", "pichon", "pichones", "juvenil", "inmaduro",
	"inmaduros", "subadulto", "nido", "ninfa", "huevo", "huevos",
	"adulto", "adultos",
}

const (
	// stageLookbackTables bounds how many preceding tables are examined
	// before giving up on a stage header.
	stageLookbackTables = 3

	// maxStageTextLen keeps long caption paragraphs from being mistaken
	// for stage headers.
	maxStageTextLen = 120
)

var digitRe = regexp.MustCompile(`\d`)

// looksLikeStageTable reports whether a table holds a short sex/age/stage
// header: at least one stage keyword, no digits (those belong to
// location/date captions), and short overall.
func looksLikeStageTable(n *html.Node) bool {
	if !isElement(n, "table") {
		return false
	}
	text := CompactText(nodeText(n))
	lower := strings.ToLower(text)

	keyword := false
	for _, kw := range stageKeywords {
		if strings.Contains(lower, kw) {
			keyword = true
			break
		}
	}
	if !keyword {
		return false
	}
	if digitRe.MatchString(text) {
		return false
	}
	return len(text) <= maxStageTextLen
}

// stageLabelFor looks back through preceding sibling tables for a stage
// header and returns its text as-is. The walk never crosses an earlier
// photo frame, so a header is only attached to its own block.
func stageLabelFor(tbl *html.Node) string {
	seen := 0
	for sib := tbl.PrevSibling; sib != nil; sib = sib.PrevSibling {
		if !isElement(sib, "table") {
			continue
		}
		if isBigImageTable(sib) {
			break
		}
		seen++
		if looksLikeStageTable(sib) {
			return CompactText(nodeText(sib))
		}
		if seen >= stageLookbackTables {
			break
		}
	}
	return ""
}
