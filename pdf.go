package main

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

// ---------------------------------------------------------------------------
// PDF Rendering
// ---------------------------------------------------------------------------

const (
	thaiFont = "THSarabunNew"
	coreFont = "Helvetica"

	portrait  = "P"
	landscape = "L"

	pageMarginTop    = 20.0
	pageMarginBottom = 15.0
	cellPadding      = 1.5
)

type alignment string

const (
	alignLeft   alignment = "L"
	alignCenter alignment = "C"
	alignRight  alignment = "R"
)

type rgb struct{ R, G, B int }

var (
	colorBlack     = rgb{0, 0, 0}
	colorWhite     = rgb{255, 255, 255}
	colorGrey      = rgb{100, 100, 100}
	colorCutLine   = rgb{150, 150, 150}
	colorLightGrey = rgb{220, 220, 220}
	colorPanel     = rgb{240, 240, 240}
	colorStripe    = rgb{245, 245, 245}
	colorDark      = rgb{50, 50, 50}
	colorSlate     = rgb{52, 58, 64}
	colorIncome    = rgb{40, 167, 69}
	colorExpense   = rgb{220, 53, 69}
	colorBalance   = rgb{0, 123, 255}
	colorClosed    = rgb{255, 220, 220}
)

// renderer is one PDF document with the Thai font registered. Every document
// generator creates its own.
type renderer struct {
	pdf    *fpdf.Fpdf
	family string
	bold   string
	width  float64
	height float64
}

// newRenderer starts an A4 document in the given orientation. Without a
// configured font it falls back to a core font, which cannot show Thai glyphs.
func newRenderer(fonts FontConfig, orientation string, logger *zap.Logger) (*renderer, error) {
	pdf := fpdf.New(orientation, "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("payrolldocs", true)

	r := &renderer{pdf: pdf, family: coreFont, bold: "B"}
	switch {
	case fonts.Regular != "":
		pdf.AddUTF8Font(thaiFont, "", fonts.Regular)
		r.family = thaiFont
		r.bold = ""
		if fonts.Bold != "" {
			pdf.AddUTF8Font(thaiFont, "B", fonts.Bold)
			r.bold = "B"
		}
	default:
		logger.Warn("no Thai font configured, Thai text will not render",
			zap.String("fallback", coreFont))
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to load fonts: %w", err)
	}

	r.width, r.height = pdf.GetPageSize()
	pdf.AddPage()
	r.setFont(false, 12)
	return r, nil
}

func (r *renderer) setFont(bold bool, size float64) {
	style := ""
	if bold {
		style = r.bold
	}
	r.pdf.SetFont(r.family, style, size)
}

func (r *renderer) setTextColor(c rgb) { r.pdf.SetTextColor(c.R, c.G, c.B) }
func (r *renderer) setFillColor(c rgb) { r.pdf.SetFillColor(c.R, c.G, c.B) }
func (r *renderer) setDrawColor(c rgb) { r.pdf.SetDrawColor(c.R, c.G, c.B) }

func (r *renderer) addPage() { r.pdf.AddPage() }

// text draws s with its baseline at y; x is the left edge, centre or right
// edge depending on align.
func (r *renderer) text(x, y float64, s string, align alignment) {
	switch align {
	case alignCenter:
		x -= r.pdf.GetStringWidth(s) / 2
	case alignRight:
		x -= r.pdf.GetStringWidth(s)
	}
	r.pdf.Text(x, y, s)
}

func (r *renderer) line(x1, y1, x2, y2 float64) { r.pdf.Line(x1, y1, x2, y2) }

func (r *renderer) dashedLine(x1, y1, x2, y2 float64) {
	r.pdf.SetDashPattern([]float64{3, 3}, 0)
	r.line(x1, y1, x2, y2)
	r.pdf.SetDashPattern([]float64{}, 0)
}

func (r *renderer) box(x, y, w, h float64) { r.pdf.Rect(x, y, w, h, "D") }

func (r *renderer) fillBox(x, y, w, h float64, c rgb) {
	r.setFillColor(c)
	r.pdf.Rect(x, y, w, h, "F")
}

// fit shortens s until it fits in width w.
func (r *renderer) fit(s string, w float64) string {
	limit := w - 2*cellPadding
	for r.pdf.GetStringWidth(s) > limit && s != "" {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	return s
}

// bottom is the lowest y a row may reach before a page break.
func (r *renderer) bottom() float64 { return r.height - pageMarginBottom }

// bytes finishes the document.
func (r *renderer) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// ---------------------------------------------------------------------------
// Tables
// ---------------------------------------------------------------------------

type column struct {
	Title string
	Width float64
	Align alignment
}

// cellStyle overrides how one cell is drawn. Zero fields keep the defaults.
type cellStyle struct {
	Text      *string
	TextColor *rgb
	Fill      *rgb
	Bold      bool
}

// tableSpec describes a table layout. All report documents share it; they
// differ only in columns and colours.
type tableSpec struct {
	X          float64
	Columns    []column
	RowHeight  float64
	FontSize   float64
	HeaderFill rgb
	HeaderText rgb
	Grid       bool
	Stripe     *rgb
	// HeaderStyle and CellStyle may return nil to keep the defaults.
	HeaderStyle func(col int) *cellStyle
	CellStyle   func(row, col int, value string) *cellStyle
}

func (s tableSpec) width() float64 {
	var w float64
	for _, c := range s.Columns {
		w += c.Width
	}
	return w
}

// table draws the header at y followed by rows, starting a new page (and
// repeating the header) whenever the next row would cross the bottom margin.
// It returns the y position below the last row.
func (r *renderer) table(y float64, spec tableSpec, rows [][]string) float64 {
	if spec.RowHeight == 0 {
		spec.RowHeight = 8
	}
	if spec.FontSize == 0 {
		spec.FontSize = 10
	}
	border := ""
	if spec.Grid {
		border = "1"
	}

	y = r.tableHeader(y, spec, border)
	for i, row := range rows {
		if y+spec.RowHeight > r.bottom() {
			r.addPage()
			y = r.tableHeader(pageMarginTop, spec, border)
		}

		x := spec.X
		for j, col := range spec.Columns {
			value := ""
			if j < len(row) {
				value = row[j]
			}

			fill := false
			if spec.Stripe != nil && i%2 == 1 {
				r.setFillColor(*spec.Stripe)
				fill = true
			}
			r.setTextColor(colorBlack)
			r.setFont(false, spec.FontSize)

			if spec.CellStyle != nil {
				if st := spec.CellStyle(i, j, value); st != nil {
					value, fill = r.applyStyle(st, value, fill, spec.FontSize)
				}
			}

			r.pdf.SetXY(x, y)
			r.pdf.CellFormat(col.Width, spec.RowHeight, r.fit(value, col.Width),
				border, 0, string(col.Align), fill, 0, "")
			x += col.Width
		}
		y += spec.RowHeight
	}

	r.setTextColor(colorBlack)
	r.setFont(false, spec.FontSize)
	return y
}

func (r *renderer) tableHeader(y float64, spec tableSpec, border string) float64 {
	x := spec.X
	for j, col := range spec.Columns {
		r.setFillColor(spec.HeaderFill)
		r.setTextColor(spec.HeaderText)
		r.setFont(true, spec.FontSize)
		title := col.Title
		if spec.HeaderStyle != nil {
			if st := spec.HeaderStyle(j); st != nil {
				title, _ = r.applyStyle(st, title, true, spec.FontSize)
			}
		}
		r.pdf.SetXY(x, y)
		r.pdf.CellFormat(col.Width, spec.RowHeight, r.fit(title, col.Width),
			border, 0, string(alignCenter), true, 0, "")
		x += col.Width
	}
	r.setTextColor(colorBlack)
	return y + spec.RowHeight
}

func (r *renderer) applyStyle(st *cellStyle, value string, fill bool, size float64) (string, bool) {
	if st.Text != nil {
		value = *st.Text
	}
	if st.TextColor != nil {
		r.setTextColor(*st.TextColor)
	}
	if st.Fill != nil {
		r.setFillColor(*st.Fill)
		fill = true
	}
	if st.Bold {
		r.setFont(true, size)
	}
	return value, fill
}
