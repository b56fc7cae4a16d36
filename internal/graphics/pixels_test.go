/*
 * Copyright (C) 2023 by Jason Figge
 */

package graphics

import (
	"bytes"
	"testing"
)

func TestCopyRowsPadded(t *testing.T) {
	src := []byte{
		1, 2, 3, 4, 9, 9,
		5, 6, 7, 8, 9, 9,
	}
	dst := make([]byte, 16)
	copyRows(dst, 8, src, 6, 4, 2)
	want := []byte{1, 2, 3, 4, 0, 0, 0, 0, 5, 6, 7, 8, 0, 0, 0, 0}
	if !bytes.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}
}

func TestCopyRowsPacked(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	dst := make([]byte, 8)
	copyRows(dst, 4, src, 4, 4, 2)
	if !bytes.Equal(dst, src) {
		t.Errorf("dst = %v, want %v", dst, src)
	}
}

func TestKeyTurn(t *testing.T) {
	tests := []struct {
		left, right bool
		want        float64
	}{
		{false, false, 0},
		{true, false, -50},
		{false, true, 50},
		{true, true, 0},
	}
	for _, tt := range tests {
		if got := keyTurn(tt.left, tt.right, 1000, 0.05); got != tt.want {
			t.Errorf("keyTurn(%v, %v) = %v, want %v", tt.left, tt.right, got, tt.want)
		}
	}
}
