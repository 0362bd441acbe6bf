package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func statusPage(label string) string {
	return `<html><body>
		<table width="400"><tr><td>Globally threatened species</td></tr></table>
		<table><tr><td>-</td><td>x</td><td>` + label + `</td></tr></table>
	</body></html>`
}

func TestMatchThreat(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Near-threatened", "Near-threatened"},
		{"NEAR THREATENED", "Near-threatened"},
		{"Nearth-threatened", "Near-threatened"},
		{"Near-threated", "Near-threatened"},
		{"Casi amenazada", "Near-threatened"},
		{"Vulnerable", "Vulnerable"},
		{"vulnerable", "Vulnerable"},
		{"Endangered", "Endangered"},
		{"En peligro", "Endangered"},
		{"Critically Endangered", "Critically Endangered"},
		{"critically endangered", "Critically Endangered"},
		{"Cirtically-endagered", "Critically Endangered"},
		{"En peligro critico", "Critically Endangered"},
		{"Least Concern", ""},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.want, matchThreat(tc.text))
		})
	}
}

func TestFindThreatStatus(t *testing.T) {
	t.Run("marked row after header table", func(t *testing.T) {
		doc := mustDoc(t, statusPage("Vulnerable"))
		assert.Equal(t, "Vulnerable", FindThreatStatus(doc))
	})

	t.Run("specific label wins over its substring", func(t *testing.T) {
		doc := mustDoc(t, statusPage("Critically endangered"))
		assert.Equal(t, "Critically Endangered", FindThreatStatus(doc))
	})

	t.Run("typo in marked row", func(t *testing.T) {
		doc := mustDoc(t, statusPage("Cirtically-endagered"))
		assert.Equal(t, "Critically Endangered", FindThreatStatus(doc))
	})

	t.Run("uppercase marker", func(t *testing.T) {
		doc := mustDoc(t, `<html><body>
			<table><tr><td>Globally Threatened Species</td></tr></table>
			<table><tr><td>X</td><td>Endangered</td></tr></table>
		</body></html>`)
		assert.Equal(t, "Endangered", FindThreatStatus(doc))
	})

	t.Run("multiplication sign marker", func(t *testing.T) {
		doc := mustDoc(t, `<html><head><meta charset="utf-8"></head><body>
			<table><tr><td>Globally threatened species</td></tr></table>
			<table><tr><td>×</td><td>Near-threatened</td></tr></table>
		</body></html>`)
		assert.Equal(t, "Near-threatened", FindThreatStatus(doc))
	})

	t.Run("label read from row when rightmost cell is bare", func(t *testing.T) {
		doc := mustDoc(t, `<html><body>
			<table><tr><td>Globally threatened species</td></tr></table>
			<table><tr><td>Vulnerable</td><td>x</td><td>-</td></tr></table>
		</body></html>`)
		assert.Equal(t, "Vulnerable", FindThreatStatus(doc))
	})

	t.Run("inline selection inside the header table", func(t *testing.T) {
		doc := mustDoc(t, `<html><body>
			<table><tr><td>Globally threatened species</td></tr>
			<tr><td>Near-threatened : x</td></tr></table>
		</body></html>`)
		assert.Equal(t, "Near-threatened", FindThreatStatus(doc))
	})

	t.Run("global fallback without header phrase", func(t *testing.T) {
		doc := mustDoc(t, `<html><body>
			<table width="800" border="9"><tr><td><img src="a.jpg"></td></tr></table>
			<table><tr><td>x</td><td>Endangered</td></tr></table>
		</body></html>`)
		assert.Equal(t, "Endangered", FindThreatStatus(doc))
	})

	t.Run("marked row beyond the sibling scan is ignored", func(t *testing.T) {
		doc := mustDoc(t, `<html><body>
			<table><tr><td>Globally threatened species</td></tr></table>
			<table><tr><td>one</td></tr></table>
			<table><tr><td>two</td></tr></table>
			<table><tr><td>three</td></tr></table>
			<table><tr><td>four</td></tr></table>
			<table><tr><td>x</td><td>Vulnerable</td></tr></table>
		</body></html>`)
		// Still found by the global scan, which exists for exactly this shape.
		assert.Equal(t, "Vulnerable", FindThreatStatus(doc))
	})

	t.Run("no status anywhere", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><table><tr><td>plain</td></tr></table></body></html>`)
		assert.Equal(t, "", FindThreatStatus(doc))
	})
}
