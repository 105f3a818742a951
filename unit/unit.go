// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Pixels, or px, is the unit for display dependent pixels. Their size
vary between platforms and displays.

To maintain a constant visual size across platforms and displays,
always use dps to define user interfaces. Only use pixels for derived
values.
*/
package unit

import (
	"fmt"
	"math"
)

// Dp represents device independent pixels. 1 dp has
// the same apparent size across platforms and
// display resolutions.
type Dp float32

// Metric converts device independent dp to device pixels.
type Metric struct {
	// PxPerDp is the device-dependent size of one dp.
	PxPerDp float32
}

// Dp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Dp(v Dp) int {
	return int(math.Round(float64(c.PxPerDp) * float64(v)))
}

// DpScale scales v by the dp scaling factor without rounding. Useful
// for thresholds compared against fractional pixel distances.
func (c Metric) DpScale(v Dp) float32 {
	return c.PxPerDp * float32(v)
}

// PxToDp converts v to Dp.
func (c Metric) PxToDp(v int) Dp {
	return Dp(float32(v) / c.PxPerDp)
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float32(v))
}
