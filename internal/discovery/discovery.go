// Package discovery locates gallery pages inside a folder and derives the
// species slug each page describes.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gabriel-vasile/mimetype"
)

// speciesPrefix is the fixed filename prefix of gallery pages; the slug
// follows it.
const speciesPrefix = "Fotos_"

// Input is a single gallery page selected for extraction.
type Input struct {
	Path    string
	Species string
}

// Find locates gallery pages matching pattern under dir, sorted by path.
// Files whose name does not carry the Fotos_ prefix are skipped even when
// the pattern admits them.
func Find(dir, pattern string) ([]Input, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob failed: %w", err)
	}
	sort.Strings(matches)

	inputs := make([]Input, 0, len(matches))
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		species, ok := SpeciesSlug(match)
		if !ok {
			continue
		}
		inputs = append(inputs, Input{Path: match, Species: species})
	}
	return inputs, nil
}

// SpeciesSlug derives the species slug from a Fotos_<slug>.html filename.
// The second return is false when the name lacks the Fotos_ prefix.
func SpeciesSlug(path string) (string, bool) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if !strings.HasPrefix(base, speciesPrefix) {
		return "", false
	}
	return strings.TrimPrefix(base, speciesPrefix), true
}

// IsHTML sniffs file content to confirm it is HTML. Plain text passes too:
// the oldest pages carry no doctype and sniff as text.
func IsHTML(path string) bool {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return false
	}
	for ; mt != nil; mt = mt.Parent() {
		if mt.Is("text/html") || mt.Is("text/plain") {
			return true
		}
	}
	return false
}
