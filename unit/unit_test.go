// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"github.com/breakthestatic/ha-swipe-pad/unit"
)

func TestMetric_Dp(t *testing.T) {
	m := unit.Metric{
		PxPerDp: 2,
	}

	{
		exp := 10
		got := m.Dp(5)
		if got != exp {
			t.Errorf("Dp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := unit.Dp(5)
		got := m.PxToDp(m.Dp(5))
		if got != exp {
			t.Errorf("PxToDp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := float32(1.5)
		got := m.DpScale(0.75)
		if got != exp {
			t.Errorf("DpScale conversion mismatch %v != %v", exp, got)
		}
	}
}
