package gallery

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// MaxHTMLSize limits page input to 10MB to prevent memory exhaustion
const MaxHTMLSize = 10 * 1024 * 1024

// Row is one photo entry extracted from a gallery page.
type Row struct {
	// Small marks entries taken from an ffn.gif contact sheet rather
	// than an 800px photo frame.
	Small        bool
	Thumbnail    string
	Large        string
	Equipment    string
	Stage        string
	LocationDate string
}

// Result holds everything extracted from a single gallery page.
type Result struct {
	Rows []Row

	// ThreatStatus is the page-level conservation status; empty when the
	// page has no "Globally threatened species" table.
	ThreatStatus string
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CompactText collapses all whitespace runs (including newlines) into
// single spaces and trims the ends.
func CompactText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// IsJPG reports whether a file reference points at a .jpg image.
// The galleries never use any other extension for photos.
func IsJPG(s string) bool {
	return s != "" && strings.HasSuffix(s, ".jpg")
}

// DetectCharset detects and returns the charset of raw page bytes.
func DetectCharset(data []byte) string {
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result == nil {
		return "windows-1252"
	}
	return strings.ToLower(result.Charset)
}

// Load parses page bytes into a goquery document with automatic charset
// conversion. The older pages are latin-1; the newer ones utf-8.
func Load(data []byte) (*goquery.Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("page content required")
	}
	if len(data) > MaxHTMLSize {
		return nil, fmt.Errorf("page exceeds maximum size of %d bytes", MaxHTMLSize)
	}

	utf8Reader, err := charset.NewReader(bytes.NewReader(data), DetectCharset(data))
	if err != nil {
		// Fallback to direct parsing
		return goquery.NewDocumentFromReader(bytes.NewReader(data))
	}

	return goquery.NewDocumentFromReader(utf8Reader)
}

// LoadFile reads and parses a gallery page from disk.
func LoadFile(path string) (*goquery.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	doc, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// nodeText extracts the text content of a node, separating text chunks
// with spaces. Combine with CompactText for normalized output.
func nodeText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

// attr returns the value of an attribute, or "" when absent.
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// isElement reports whether a node is an element with the given tag.
func isElement(n *html.Node, tag string) bool {
	return n != nil && n.Type == html.ElementNode && n.Data == tag
}

// findAll collects descendant elements with the given tag in document order.
func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if isElement(n, tag) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return out
}

// firstElement returns the first descendant element with the given tag
// carrying a non-empty attribute, or nil.
func firstElement(n *html.Node, tag, withAttr string) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if isElement(n, tag) && attr(n, withAttr) != "" {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return found
}

// intAttr parses a numeric attribute, returning fallback when missing or
// malformed.
func intAttr(n *html.Node, key string, fallback int) int {
	v, err := strconv.Atoi(attr(n, key))
	if err != nil {
		return fallback
	}
	return v
}
