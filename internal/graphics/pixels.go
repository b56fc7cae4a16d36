/*
 * Copyright (C) 2023 by Jason Figge
 */

package graphics

// copyRows copies rows of rowBytes each between buffers with different
// strides.
func copyRows(dst []byte, dstPitch int, src []byte, srcPitch, rowBytes, rows int) {
	if dstPitch == srcPitch && dstPitch == rowBytes {
		copy(dst[:rowBytes*rows], src[:rowBytes*rows])
		return
	}
	for y := 0; y < rows; y++ {
		copy(dst[y*dstPitch:y*dstPitch+rowBytes], src[y*srcPitch:y*srcPitch+rowBytes])
	}
}

// keyTurn converts held turn keys into horizontal mouse motion for dt
// seconds.
func keyTurn(left, right bool, pixelsPerSecond, dt float64) float64 {
	var delta float64
	if left {
		delta -= pixelsPerSecond * dt
	}
	if right {
		delta += pixelsPerSecond * dt
	}
	return delta
}
