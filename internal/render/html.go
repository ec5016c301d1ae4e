package render

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"image"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"

	"formalgen/internal/document"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplates = template.Must(template.New("pages").
	Funcs(template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}).
	ParseFS(templateFS, "templates/*.tmpl"))

// renderOrderHTML produces the styled intermediate the PDF is printed from.
func renderOrderHTML(doc document.OfficeOrder) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "pdf_office_order.html.tmpl", doc); err != nil {
		return "", fmt.Errorf("render office order html: %w", err)
	}
	return buf.String(), nil
}

type circularPage struct {
	document.Circular
	Logo template.URL
}

func renderCircularHTML(doc document.Circular, logo template.URL) (string, error) {
	var buf bytes.Buffer
	page := circularPage{Circular: doc, Logo: logo}
	if err := pageTemplates.ExecuteTemplate(&buf, "pdf_circular.html.tmpl", page); err != nil {
		return "", fmt.Errorf("render circular html: %w", err)
	}
	return buf.String(), nil
}

// logoDataURI inlines the logo asset as a data URI. When recompress is set
// the image is re-encoded as JPEG at quality 85 to keep the output small;
// if the asset cannot be decoded the raw bytes are embedded unchanged,
// under their sniffed media type.
func logoDataURI(path string, recompress bool) (template.URL, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if recompress {
		img, _, err := image.Decode(bytes.NewReader(raw))
		if err == nil {
			var out bytes.Buffer
			if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: 85}); err == nil {
				return template.URL("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(out.Bytes())), nil
			}
		}
	}
	mime := http.DetectContentType(raw)
	return template.URL("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw)), nil
}
