// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

package slicest

import (
	"strconv"
	"testing"
)

func TestMapI(t *testing.T) {
	got := MapI([]string{"a", "b"}, func(i int, s string) string {
		return strconv.Itoa(i) + s
	})
	if len(got) != 2 || got[0] != "0a" || got[1] != "1b" {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestMap_Empty(t *testing.T) {
	got := Map([]int(nil), strconv.Itoa)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("unexpected result: %v", got)
	}
}
