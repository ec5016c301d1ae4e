package render

import (
	"strings"
	"testing"

	"formalgen/internal/lookup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocx_OfficeOrder(t *testing.T) {
	d := NewDocx(t.TempDir())

	out, err := d.OfficeOrder(sampleOfficeOrder())
	require.NoError(t, err)
	require.NotEmpty(t, out)

	xml := docxBodyXML(t, out)
	assert.Contains(t, xml, "BISAG-N")
	assert.Contains(t, xml, "Ref: BISAG-N/Office Order/2026/")
	assert.Contains(t, xml, "Date: 15-01-2026")
	assert.Contains(t, xml, "Office Order")
	assert.Contains(t, xml, "All project staff shall report to the main campus.")
	assert.Contains(t, xml, "Director General, BISAG-N")
	assert.Contains(t, xml, "Scientist")
	assert.Contains(t, xml, "Accounts Officer")
}

func TestDocx_Circular_TableRows(t *testing.T) {
	d := NewDocx(t.TempDir())

	out, err := d.Circular(sampleCircular())
	require.NoError(t, err)

	xml := docxBodyXML(t, out)
	assert.Contains(t, xml, "Circular")
	assert.Contains(t, xml, "Date : 15-01-2026")
	assert.Contains(t, xml, "Subject : Annual maintenance shutdown")
	assert.Contains(t, xml, "Sr. No.")
	assert.Contains(t, xml, "Smt. R. Patel")
	assert.Contains(t, xml, "Shri P. K. Joshi")

	// One header row plus one row per recipient.
	assert.Equal(t, 3, strings.Count(xml, "</w:tr>"))
}

func TestDocx_Circular_HindiNames(t *testing.T) {
	d := NewDocx(t.TempDir())

	doc := sampleCircular()
	doc.Language = lookup.LangHI

	out, err := d.Circular(doc)
	require.NoError(t, err)

	xml := docxBodyXML(t, out)
	assert.Contains(t, xml, "परिपत्र")
	assert.Contains(t, xml, "दिनांक :")
	assert.Contains(t, xml, "श्रीमती आर. पटेल")
	assert.NotContains(t, xml, "Smt. R. Patel")
}

func TestDocx_Circular_NoRecipientsNoTable(t *testing.T) {
	d := NewDocx(t.TempDir())

	doc := sampleCircular()
	doc.ToPeople = nil

	out, err := d.Circular(doc)
	require.NoError(t, err)

	xml := docxBodyXML(t, out)
	assert.NotContains(t, xml, "<w:tbl>")
}

func TestDocx_PageMarginsAreOneInch(t *testing.T) {
	d := NewDocx(t.TempDir())

	order, err := d.OfficeOrder(sampleOfficeOrder())
	require.NoError(t, err)

	circular, err := d.Circular(sampleCircular())
	require.NoError(t, err)

	for _, out := range [][]byte{order, circular} {
		xml := docxBodyXML(t, out)
		assert.Contains(t, xml, "<w:pgMar")
		// 1in on all four sides, in twips.
		for _, side := range []string{"w:top", "w:right", "w:bottom", "w:left"} {
			assert.Contains(t, xml, side+`="1440"`)
		}
	}
}

func TestDocx_Circular_MissingLogoIsSkipped(t *testing.T) {
	// staticDir without a logo asset: the render succeeds and simply has
	// no drawing in it.
	d := NewDocx(t.TempDir())

	out, err := d.Circular(sampleCircular())
	require.NoError(t, err)

	xml := docxBodyXML(t, out)
	assert.NotContains(t, xml, "<w:drawing>")
}
