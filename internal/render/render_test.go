package render

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"formalgen/internal/document"
	"formalgen/internal/lookup"

	"github.com/stretchr/testify/require"
)

func sampleOfficeOrder() document.OfficeOrder {
	return document.OfficeOrder{
		Language:  lookup.LangEN,
		Header:    []string{"BISAG-N", "Ministry of Electronics and IT", "Gandhinagar"},
		Title:     "Office Order",
		Reference: "BISAG-N/Office Order/2026/",
		Date:      "15-01-2026",
		Body:      "All project staff shall report to the main campus.",
		From:      "Director General, BISAG-N",
		To:        []string{"Scientist", "Accounts Officer"},
	}
}

func sampleCircular() document.Circular {
	return document.Circular{
		Language: lookup.LangEN,
		Header: lookup.CircularHeader{
			OrgName:    "BISAG-N",
			Ministry:   "Ministry of Electronics and IT",
			Government: "Government of India",
		},
		Date:    "15-01-2026",
		Subject: "Annual maintenance shutdown",
		Body:    "The campus network will remain unavailable on Saturday.",
		From:    "Administrative Officer",
		ToPeople: []lookup.Person{
			{ID: 2, NameEN: "Smt. R. Patel", NameHI: "श्रीमती आर. पटेल"},
			{ID: 5, NameEN: "Shri P. K. Joshi", NameHI: "श्री पी. के. जोशी"},
		},
	}
}

// docxBodyXML unpacks the OOXML container and returns word/document.xml.
func docxBodyXML(t *testing.T, data []byte) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()

		raw, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(raw)
	}

	t.Fatal("word/document.xml not found in output")
	return ""
}
