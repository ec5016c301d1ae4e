package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fumiama/go-docx"

	"formalgen/internal/document"
)

// EMUs per inch, the unit OOXML drawings are sized in.
const emuPerInch = 914400

const logoHeightEMU = int64(0.9 * emuPerInch)

// Column widths of the circular recipient table, in twips.
var recipientColWidths = []int64{1440, 5040, 2160} // 1.0in, 3.5in, 1.5in

// A4 page with 1in margins on all four sides, in twips.
func a4SectPr() *docx.SectPr {
	return &docx.SectPr{
		PgSz: &docx.PgSz{W: 11906, H: 16838},
		PgMar: &docx.PgMar{
			Top:    1440,
			Right:  1440,
			Bottom: 1440,
			Left:   1440,
		},
	}
}

// Docx builds document records into OOXML word-processor files by
// appending paragraphs and tables in order. It shares no template with the
// PDF renderer; the two are kept visually in sync by hand.
type Docx struct {
	staticDir string
}

// NewDocx creates a DOCX renderer. staticDir is where the logo asset lives.
func NewDocx(staticDir string) *Docx {
	return &Docx{staticDir: staticDir}
}

// OfficeOrder renders an office order to DOCX.
func (d *Docx) OfficeOrder(doc document.OfficeOrder) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	for _, line := range doc.Header {
		p := w.AddParagraph().Justification("center")
		p.AddText(line).Bold()
	}

	w.AddParagraph().AddText("Ref: " + doc.Reference).Bold()

	p := w.AddParagraph().Justification("right")
	p.AddText("Date: " + doc.Date).Bold()

	p = w.AddParagraph().Justification("center")
	p.AddText(doc.Title).Bold().Underline("single")

	w.AddParagraph().AddText(doc.Body)

	p = w.AddParagraph().Justification("right")
	p.AddText(doc.From).Bold()

	for _, recipient := range doc.To {
		w.AddParagraph().AddText(recipient).Bold()
	}

	w.Document.Body.Items = append(w.Document.Body.Items, a4SectPr())

	return writeDocx(w)
}

// Circular renders a circular to DOCX. A missing logo asset skips the logo
// block rather than failing the render.
func (d *Docx) Circular(doc document.Circular) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	d.addLogo(w)

	header := doc.Header
	for _, line := range []string{header.OrgName, header.Ministry, header.Government} {
		p := w.AddParagraph().Justification("center")
		p.AddText(line).Bold().Size("28")
	}

	p := w.AddParagraph().Justification("center")
	p.AddText(doc.Title()).Bold().Underline("single").Size("32")

	p = w.AddParagraph().Justification("right")
	p.AddText(doc.DateLabel() + " " + doc.Date).Bold().Size("24")

	w.AddParagraph().AddText(doc.SubjectLabel() + " " + doc.Subject).Bold().Size("24")

	p = w.AddParagraph().Justification("both")
	p.AddText(doc.Body).Size("24")

	p = w.AddParagraph().Justification("right")
	p.AddText(doc.From).Bold().Size("24")

	w.AddParagraph()

	if len(doc.ToPeople) > 0 {
		d.addRecipientTable(w, doc)
	}

	w.Document.Body.Items = append(w.Document.Body.Items, a4SectPr())

	return writeDocx(w)
}

func (d *Docx) addLogo(w *docx.Docx) {
	logoPath := filepath.Join(d.staticDir, logoFileName)
	if _, err := os.Stat(logoPath); err != nil {
		return
	}
	p := w.AddParagraph().Justification("center")
	run, err := p.AddInlineDrawingFrom(logoPath)
	if err != nil {
		return
	}
	scaleDrawingHeight(run, logoHeightEMU)
	w.AddParagraph()
}

// scaleDrawingHeight pins an inline drawing to a fixed height, keeping the
// aspect ratio.
func scaleDrawingHeight(r *docx.Run, height int64) {
	for _, child := range r.Children {
		drawing, ok := child.(*docx.Drawing)
		if !ok || drawing.Inline == nil || drawing.Inline.Extent == nil {
			continue
		}
		ext := drawing.Inline.Extent
		if ext.CY > 0 {
			ext.CX = int64(float64(ext.CX) * float64(height) / float64(ext.CY))
		}
		ext.CY = height
	}
}

func (d *Docx) addRecipientTable(w *docx.Docx, doc document.Circular) {
	rowHeights := make([]int64, len(doc.ToPeople)+1)
	tableWidth := int64(0)
	for _, cw := range recipientColWidths {
		tableWidth += cw
	}

	table := w.AddTableTwips(rowHeights, recipientColWidths, tableWidth, nil)

	sr, name, sign := doc.TableLabels()
	headerRow := table.TableRows[0]
	for i, label := range []string{sr, name, sign} {
		p := headerRow.TableCells[i].AddParagraph().Justification("center")
		p.AddText(label).Bold()
	}

	for i, person := range doc.ToPeople {
		row := table.TableRows[i+1]

		p := row.TableCells[0].AddParagraph().Justification("center")
		p.AddText(strconv.Itoa(i + 1))

		p = row.TableCells[1].AddParagraph().Justification("center")
		p.AddText(person.Name(doc.Language))

		// Signature column stays blank.
		row.TableCells[2].AddParagraph().Justification("center")
	}
}

func writeDocx(w *docx.Docx) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write docx: %w", err)
	}
	return buf.Bytes(), nil
}
