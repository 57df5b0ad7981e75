// SPDX-License-Identifier: MIT

package compute

// PointInCircle reports whether (x, y) lies strictly inside the circle
// centred at (cx, cy) with radius r.
func PointInCircle(x, y, cx, cy, r float32) bool {
	dx := x - cx
	dy := y - cy

	return dx*dx+dy*dy < r*r
}

// PointInEllipse reports whether (x, y) lies strictly inside the
// axis-aligned ellipse centred at (cx, cy) with radii rw and rh.
func PointInEllipse(x, y, cx, cy, rw, rh float32) bool {
	dx := x - cx
	dy := y - cy

	return (dx*dx)/(rw*rw)+(dy*dy)/(rh*rh) < 1
}

// PointInBox reports whether (x, y) lies inside the box whose top-left
// corner is (bx, by), edges included.
func PointInBox(x, y, bx, by, bw, bh float32) bool {
	return x >= bx && x <= bx+bw && y >= by && y <= by+bh
}
