// Package gallery extracts photo metadata from the static Fotos_*.html
// species pages.
//
// The pages predate any templating system, so extraction is heuristic:
// tables are classified by their fixed attributes rather than by class or
// id. The package is organized into specialized files:
//   - blocks: 800px photo-frame tables and their caption tables
//   - thumbs: ffn.gif contact-sheet tables with colspan column alignment
//   - stage: sex/age/life-stage header lookback
//   - threat: conservation-status detection with typo-tolerant matching
//
// Built on specialized libraries:
//   - goquery: jQuery-like CSS selectors
//   - htmlquery: XPath support for HTML
//   - chardet: character encoding detection for pre-Unicode pages
package gallery
