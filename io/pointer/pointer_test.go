// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"
)

func TestKindString(t *testing.T) {
	for _, tc := range []struct {
		kind Kind
		res  string
	}{
		{Cancel, "Cancel"},
		{Press, "Press"},
		{Release, "Release"},
		{Move, "Move"},
		{Press | Release, "Press|Release"},
		{Press | Release | Move, "Press|Release|Move"},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, tc.kind.String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
}

func TestButtonsString(t *testing.T) {
	for _, tc := range []struct {
		buttons Buttons
		res     string
	}{
		{ButtonPrimary, "ButtonPrimary"},
		{ButtonPrimary | ButtonTertiary, "ButtonPrimary|ButtonTertiary"},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, tc.buttons.String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
}
