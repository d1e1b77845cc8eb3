package pdf

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Layout tolerances in text-space points.
const (
	rowTolerance      = 3.0
	minSpaceGap       = 1.0
	spaceGapPerFontPt = 0.2
)

// plainText returns page text in content-stream order.
func plainText(p pdf.Page) (string, error) {
	return p.GetPlainText(nil)
}

// layoutText rebuilds page text from glyph positions: glyphs are grouped
// into rows by baseline, rows are read top to bottom and glyphs left to
// right, with a space wherever the horizontal gap between glyphs is wider
// than a fraction of the font size.
func layoutText(p pdf.Page) (string, error) {
	glyphs := p.Content().Text
	if len(glyphs) == 0 {
		return "", nil
	}

	// PDF y grows upward, so the top row has the largest Y.
	sort.SliceStable(glyphs, func(i, j int) bool {
		return glyphs[i].Y > glyphs[j].Y
	})

	var rows [][]pdf.Text
	rowY := math.Inf(1)
	for _, g := range glyphs {
		if len(rows) == 0 || math.Abs(rowY-g.Y) > rowTolerance {
			rows = append(rows, nil)
			rowY = g.Y
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], g)
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		if line := strings.TrimSpace(joinRow(row)); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

// joinRow orders a row's glyphs by X and concatenates them.
func joinRow(row []pdf.Text) string {
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].X < row[j].X
	})

	var b strings.Builder
	var prev *pdf.Text
	for i := range row {
		g := &row[i]
		if prev != nil && needsSpace(prev, g) {
			b.WriteByte(' ')
		}
		b.WriteString(g.S)
		prev = g
	}
	return b.String()
}

func needsSpace(prev, cur *pdf.Text) bool {
	if strings.HasSuffix(prev.S, " ") || strings.HasPrefix(cur.S, " ") {
		return false
	}
	gap := cur.X - (prev.X + prev.W)
	return gap > math.Max(minSpaceGap, spaceGapPerFontPt*prev.FontSize)
}
