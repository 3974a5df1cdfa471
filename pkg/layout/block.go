package layout

import "github.com/matzehuels/ffimg/pkg/spec"

// Block is the final geometry of one field. X and Y locate the top-left
// corner.
type Block struct {
	X, Y          float64
	Width, Height float64
	MinWidth      float64 // Width required by the longer label plus padding
	Row           int
	Field         spec.ParsedField
}

// Right returns the X coordinate of the block's right edge.
func (b Block) Right() float64 { return b.X + b.Width }

// Bottom returns the Y coordinate of the block's bottom edge.
func (b Block) Bottom() float64 { return b.Y + b.Height }

// CenterX returns the horizontal center point of the block.
func (b Block) CenterX() float64 { return b.X + b.Width/2 }

// CenterY returns the vertical center point of the block.
func (b Block) CenterY() float64 { return b.Y + b.Height/2 }

// Row is an ordered strip of blocks.
type Row []Block

// Width returns the summed width of the row's blocks.
func (r Row) Width() float64 {
	var sum float64
	for _, b := range r {
		sum += b.Width
	}
	return sum
}
