// Package pdftest builds small, well-formed PDF documents for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"
)

// Build returns a PDF with one page per argument. Each line of a page's
// text is drawn on its own baseline, top to bottom, in Helvetica. An empty
// string produces a page without a content stream.
func Build(pages ...string) []byte {
	contents := make([]string, len(pages))
	for i, text := range pages {
		if text != "" {
			contents[i] = contentStream(text)
		}
	}
	return build(contents)
}

// Span is a run of text drawn with its baseline starting at (X, Y).
type Span struct {
	X, Y float64
	S    string
}

// BuildLayout returns a PDF with one page per argument, drawing each span
// at its own position in the order given.
func BuildLayout(pages ...[]Span) []byte {
	contents := make([]string, len(pages))
	for i, spans := range pages {
		if len(spans) == 0 {
			continue
		}
		var b strings.Builder
		b.WriteString("BT\n/F1 12 Tf\n")
		for _, sp := range spans {
			fmt.Fprintf(&b, "1 0 0 1 %g %g Tm\n(%s) Tj\n", sp.X, sp.Y, escape(sp.S))
		}
		b.WriteString("ET")
		contents[i] = b.String()
	}
	return build(contents)
}

// build assembles the document; an empty content string yields a page
// without a content stream.
func build(contents []string) []byte {
	var objects []string

	// Objects 1-3 are the catalog, page tree and font. Page objects follow,
	// each trailed by its content stream when it has one.
	next := 4
	var kids []string
	type pageObj struct {
		id, contentID int
		content       string
	}
	var pageObjs []pageObj
	for _, content := range contents {
		p := pageObj{id: next}
		next++
		if content != "" {
			p.contentID = next
			p.content = content
			next++
		}
		pageObjs = append(pageObjs, p)
		kids = append(kids, fmt.Sprintf("%d 0 R", p.id))
	}

	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(contents)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	)
	for _, p := range pageObjs {
		page := "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >>"
		if p.contentID != 0 {
			page += fmt.Sprintf(" /Contents %d 0 R", p.contentID)
		}
		objects = append(objects, page+" >>")
		if p.contentID != 0 {
			objects = append(objects, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(p.content), p.content))
		}
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

// contentStream draws each line of text 16 points below the previous one.
func contentStream(text string) string {
	var b strings.Builder
	b.WriteString("BT\n/F1 12 Tf\n72 720 Td\n")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString("0 -16 Td\n")
		}
		fmt.Fprintf(&b, "(%s) Tj\n", escape(line))
	}
	b.WriteString("ET")
	return b.String()
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
