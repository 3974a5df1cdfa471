package layout

import "testing"

func row(widths ...float64) Row {
	r := make(Row, len(widths))
	for i, w := range widths {
		r[i] = Block{Width: w, MinWidth: w}
	}
	return r
}

func TestDistribute(t *testing.T) {
	tests := []struct {
		name   string
		row    Row
		usable float64
		want   []float64
	}{
		{"even slack", row(100, 200, 300), 900, []float64{200, 300, 400}},
		{"single block fills", row(50), 1881.6, []float64{1881.6}},
		{"already full", row(400, 600), 1000, []float64{400, 600}},
		{"oversized not shrunk", row(1500), 1000, []float64{1500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Distribute(tt.row, tt.usable, 19.2)

			x := 19.2
			for i, b := range tt.row {
				if !approx(b.Width, tt.want[i]) {
					t.Errorf("block %d width = %v, want %v", i, b.Width, tt.want[i])
				}
				if !approx(b.X, x) {
					t.Errorf("block %d X = %v, want %v", i, b.X, x)
				}
				x += b.Width
			}
		})
	}
}

func TestDistributeEmpty(t *testing.T) {
	var r Row
	Distribute(r, 100, 0)
	if len(r) != 0 {
		t.Errorf("Distribute(empty) = %v", r)
	}
}
