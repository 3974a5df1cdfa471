package layout

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/matzehuels/ffimg/pkg/errors"
)

// OutlierCutoff is the robust score at or above which a size is ignored
// when computing the byte width.
const OutlierCutoff = 5.0

// typicalFraction is the share of the usable width a typical field gets.
const typicalFraction = 10.0

// ByteWidth returns the pixels-per-byte scale for the given field sizes.
//
// Each size is scored by its absolute deviation from the median divided by
// the median absolute deviation (MAD). Sizes scoring OutlierCutoff or more
// are dropped and the rest averaged; a field of average size then spans a
// tenth of the usable width.
//
// When the MAD is zero (more than half the sizes are identical) the mean
// absolute deviation is used as the scale instead. That scale shrinks as
// the identical majority grows, so a moderately larger size can be dropped
// too: nineteen 2-byte fields and one 8-byte field leave the 8 out of the
// average. When the mean deviation is zero as well, every size is equal
// and none is dropped.
func ByteWidth(sizes []uint64, usableWidth float64) (float64, error) {
	inliers, err := Inliers(sizes)
	if err != nil {
		return 0, err
	}
	avg, err := stats.Mean(inliers)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "average field size")
	}
	return (usableWidth / typicalFraction) / avg, nil
}

// Inliers returns the sizes that survive outlier filtering, in input order.
// If filtering would remove everything, all sizes are returned.
func Inliers(sizes []uint64) (stats.Float64Data, error) {
	if len(sizes) == 0 {
		return nil, errors.New(errors.ErrCodeEmptySpec, "spec contains no fields")
	}

	values := make(stats.Float64Data, len(sizes))
	for i, s := range sizes {
		values[i] = float64(s)
	}

	med, err := values.Median()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "median field size")
	}
	devs := make(stats.Float64Data, len(values))
	for i, v := range values {
		devs[i] = math.Abs(v - med)
	}

	scale, _ := devs.Median()
	if scale == 0 {
		scale, _ = devs.Mean()
	}
	if scale == 0 {
		return values, nil
	}

	inliers := make(stats.Float64Data, 0, len(values))
	for i, v := range values {
		if devs[i]/scale < OutlierCutoff {
			inliers = append(inliers, v)
		}
	}
	if len(inliers) == 0 {
		return values, nil
	}
	return inliers, nil
}
