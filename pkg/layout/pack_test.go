package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/ffimg/pkg/spec"
)

func sized(widths ...float64) []Sized {
	out := make([]Sized, len(widths))
	for i, w := range widths {
		out[i] = Sized{Field: spec.ParsedField{Index: i}, Width: w}
	}
	return out
}

func indices(rows [][]Sized) [][]int {
	out := make([][]int, len(rows))
	for r, row := range rows {
		for _, it := range row {
			out[r] = append(out[r], it.Field.Index)
		}
	}
	return out
}

func TestPack(t *testing.T) {
	// Padding 10, usable width 980.
	c := NewCanvas(1000, 500)

	tests := []struct {
		name   string
		widths []float64
		want   [][]int
	}{
		{"empty", nil, [][]int{}},
		{"single row", []float64{100, 200, 300}, [][]int{{0, 1, 2}}},
		{"exact fit stays", []float64{490, 490}, [][]int{{0, 1}}},
		{"overflow wraps", []float64{500, 500, 500}, [][]int{{0}, {1}, {2}}},
		{"greedy no reorder", []float64{600, 500, 300, 100}, [][]int{{0}, {1, 2, 3}}},
		{"oversized alone", []float64{100, 2000, 100}, [][]int{{0}, {1}, {2}}},
		{"oversized first", []float64{2000, 100}, [][]int{{0}, {1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := indices(Pack(sized(tt.widths...), c))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Pack() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSizeKeepsOrderAcrossCategories(t *testing.T) {
	c := NewCanvas(1000, 500)
	in := []spec.ParsedField{
		{Name: "magic", Bytes: 4, Display: "4 bytes", Category: "header", Index: 0},
		{Name: "len", Bytes: 2, Display: "2 bytes", Category: "header", Index: 1},
		{Name: "data", Bytes: 8, Display: "8 bytes", Category: "payload", Index: 2},
	}
	m := NewWidthModel(c, 10, 8)

	got := Size(in, c, m, halfEm, 10)
	for i, it := range got {
		if it.Field.Index != i {
			t.Errorf("Size()[%d] = field %d", i, it.Field.Index)
		}
		if it.Width < it.MinWidth {
			t.Errorf("Size()[%d] width %v < min %v", i, it.Width, it.MinWidth)
		}
	}

	rows := Pack(got, c)
	if len(rows) != 1 {
		t.Errorf("Pack() rows = %d, want fields of both categories on one row", len(rows))
	}
}
