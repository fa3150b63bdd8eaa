package geometry2D

import "math"

// RotateAboutPoint rigidly rotates a point set about pivot through a signed
// angle in degrees, counter-clockwise positive. Both output components are
// computed from the untouched pivot-relative coordinates, then translated
// back.
func RotateAboutPoint(points []Point, pivot Point, angleDeg float64) (rotated []Point) {
	var (
		theta = angleDeg * math.Pi / 180.
		cosT  = math.Cos(theta)
		sinT  = math.Sin(theta)
	)
	rotated = make([]Point, len(points))
	for i, pt := range points {
		xRel := pt.X - pivot.X
		yRel := pt.Y - pivot.Y
		rotated[i] = Point{
			X: pivot.X + xRel*cosT - yRel*sinT,
			Y: pivot.Y + xRel*sinT + yRel*cosT,
		}
	}
	return
}
