package gallery

import "github.com/PuerkitoBio/goquery"

// Parse classifies every table in a gallery page: the 800px photo frames
// first, then the ffn.gif contact sheets, with the page-level conservation
// status attached to the result.
func Parse(doc *goquery.Document) *Result {
	res := &Result{ThreatStatus: FindThreatStatus(doc)}
	res.Rows = append(res.Rows, parseBigBlocks(doc)...)
	res.Rows = append(res.Rows, parseContactSheets(doc)...)
	return res
}

// ParseFile reads, decodes and parses one gallery page from disk.
func ParseFile(path string) (*Result, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(doc), nil
}
