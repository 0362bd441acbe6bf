package gallery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeStageTable(t *testing.T) {
	cases := []struct {
		name string
		html string
		want bool
	}{
		{"english keyword", `<table><tr><td>Juvenile</td></tr></table>`, true},
		{"spanish keyword", `<table><tr><td>Macho adulto</td></tr></table>`, true},
		{"compound label kept as-is", `<table><tr><td>Female with chicks</td></tr></table>`, true},
		{"digits mean location or date", `<table><tr><td>Male - Santiago 2004</td></tr></table>`, false},
		{"no keyword", `<table><tr><td>Canon EOS 7D</td></tr></table>`, false},
		{"long paragraph", `<table><tr><td>adult ` + strings.Repeat("wing ", 30) + `</td></tr></table>`, false},
		{"empty", `<table><tr><td></td></tr></table>`, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustDoc(t, "<html><body>"+tc.html+"</body></html>")
			assert.Equal(t, tc.want, looksLikeStageTable(doc.Find("table").Get(0)))
		})
	}
}

func TestStageLabelFor(t *testing.T) {
	t.Run("finds header within lookback", func(t *testing.T) {
		doc := mustDoc(t, `<html><body>
			<table><tr><td>Immature</td></tr></table>
			<table><tr><td>filler</td></tr></table>
			<table width="800" border="9" id="target"><tr><td><img src="a.jpg"></td></tr></table>
		</body></html>`)
		target := doc.Find("table#target").Get(0)
		assert.Equal(t, "Immature", stageLabelFor(target))
	})

	t.Run("gives up past the lookback limit", func(t *testing.T) {
		doc := mustDoc(t, `<html><body>
			<table><tr><td>Immature</td></tr></table>
			<table><tr><td>filler one</td></tr></table>
			<table><tr><td>filler two</td></tr></table>
			<table><tr><td>filler three</td></tr></table>
			<table width="800" border="9" id="target"><tr><td><img src="a.jpg"></td></tr></table>
		</body></html>`)
		target := doc.Find("table#target").Get(0)
		assert.Equal(t, "", stageLabelFor(target))
	})

	t.Run("never crosses a preceding photo frame", func(t *testing.T) {
		doc := mustDoc(t, `<html><body>
			<table><tr><td>Female</td></tr></table>
			<table width="800" border="9"><tr><td><img src="a.jpg"></td></tr></table>
			<table width="800" border="9" id="target"><tr><td><img src="b.jpg"></td></tr></table>
		</body></html>`)
		target := doc.Find("table#target").Get(0)
		assert.Equal(t, "", stageLabelFor(target))
	})

	t.Run("non-table siblings are skipped", func(t *testing.T) {
		doc := mustDoc(t, `<html><body>
			<table><tr><td>Nest with eggs</td></tr></table>
			<p>some text</p>
			<table width="800" border="9" id="target"><tr><td><img src="a.jpg"></td></tr></table>
		</body></html>`)
		target := doc.Find("table#target").Get(0)
		assert.Equal(t, "Nest with eggs", stageLabelFor(target))
	})
}
