package main

import (
	"bytes"
	"fmt"
	"testing"

	"go.uber.org/zap"
)

func newTestRenderer(t *testing.T, orientation string) *renderer {
	t.Helper()
	r, err := newRenderer(FontConfig{}, orientation, zap.NewNop())
	if err != nil {
		t.Fatalf("newRenderer() error = %v", err)
	}
	return r
}

func TestNewRendererFallbackFont(t *testing.T) {
	r := newTestRenderer(t, portrait)
	if r.family != coreFont {
		t.Errorf("family = %q, want %q", r.family, coreFont)
	}

	data, err := r.bytes()
	if err != nil {
		t.Fatalf("bytes() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output does not start with PDF magic bytes")
	}
}

func TestNewRendererMissingFont(t *testing.T) {
	_, err := newRenderer(FontConfig{Regular: "/nonexistent/THSarabunNew.ttf"}, portrait, zap.NewNop())
	if err == nil {
		t.Error("newRenderer() expected error for missing font file")
	}
}

func TestRendererPageSize(t *testing.T) {
	p := newTestRenderer(t, portrait)
	l := newTestRenderer(t, landscape)
	if p.width >= p.height {
		t.Errorf("portrait page %vx%v is not upright", p.width, p.height)
	}
	if l.width <= l.height {
		t.Errorf("landscape page %vx%v is not wide", l.width, l.height)
	}
}

func TestTablePaginates(t *testing.T) {
	r := newTestRenderer(t, portrait)
	spec := tableSpec{
		X:          20,
		Columns:    []column{{Title: "No", Width: 20, Align: alignRight}, {Title: "Item", Width: 150, Align: alignLeft}},
		RowHeight:  8,
		HeaderFill: colorLightGrey,
		HeaderText: colorBlack,
		Grid:       true,
	}

	rows := make([][]string, 60)
	for i := range rows {
		rows[i] = []string{fmt.Sprint(i + 1), "row"}
	}

	y := r.table(40, spec, rows)
	if got := r.pdf.PageCount(); got < 2 {
		t.Errorf("PageCount() = %d, want at least 2", got)
	}
	if y > r.bottom() {
		t.Errorf("table ended at y=%v, below the bottom margin %v", y, r.bottom())
	}
	if spec.width() != 170 {
		t.Errorf("width() = %v, want 170", spec.width())
	}
}

func TestTableCellStyle(t *testing.T) {
	r := newTestRenderer(t, portrait)
	var seen []string
	spec := tableSpec{
		Columns: []column{{Title: "A", Width: 30, Align: alignLeft}},
		CellStyle: func(row, col int, value string) *cellStyle {
			seen = append(seen, value)
			return nil
		},
	}

	r.table(20, spec, [][]string{{"one"}, {}, {"three"}})
	want := []string{"one", "", "three"}
	if fmt.Sprint(seen) != fmt.Sprint(want) {
		t.Errorf("CellStyle saw %q, want %q", seen, want)
	}
}

func TestFit(t *testing.T) {
	r := newTestRenderer(t, portrait)
	long := "a very long description that cannot fit into a narrow column"

	got := r.fit(long, 20)
	if len(got) >= len(long) {
		t.Errorf("fit() did not shorten %q", long)
	}
	if r.pdf.GetStringWidth(got) > 20-2*cellPadding {
		t.Errorf("fit() result %q is still too wide", got)
	}
	if r.fit("ok", 50) != "ok" {
		t.Error("fit() changed text that fits")
	}
}
