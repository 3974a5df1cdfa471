// Package layout converts a list of sized fields into row-wrapped block
// geometry for a fixed canvas.
//
// # Pipeline
//
// Layout runs in four steps, each exposed on its own so it can be tested in
// isolation:
//
//  1. [ByteWidth] derives a pixels-per-byte scale from the typical field size,
//     ignoring outliers so a single large payload does not shrink every other
//     field to a sliver.
//  2. [WidthModel] maps a field's byte count to a width, compressing large
//     fields linearly into the upper half of the usable width and never going
//     below the width its label needs.
//  3. [Pack] fills rows greedily in declaration order.
//  4. [Distribute] stretches each packed row so it spans the usable width.
//
// Row height and font size depend on each other through the row count, so
// [Estimate] searches for a fixed point before the final pass. [Build] runs
// the whole sequence and returns a [Layout] ready for rendering.
//
// # Coordinates
//
// All geometry is in pixels with the origin at the top-left corner of the
// canvas and Y growing downward, matching raster images.
package layout
