// Package math provides the angle and direction helpers the avatar runtime
// needs on top of go-gl/mathgl: angle wrapping and azimuth/altitude
// decomposition of direction vectors.
package math

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// SanitizeAngle wraps an angle in radians to within half a turn of zero.
func SanitizeAngle(angle float32) float32 {
	turns := gomath.Round(float64(angle) / (2.0 * gomath.Pi))
	return angle - float32(2.0*gomath.Pi*turns)
}

// AzimuthAltitude decomposes a direction vector into an azimuth/altitude
// pair: azimuth = atan2(-z, x), altitude = atan2(y, sqrt(x^2+z^2)).
func AzimuthAltitude(dir mgl32.Vec3) (azimuth, altitude float32) {
	azimuth = float32(gomath.Atan2(float64(-dir.Z()), float64(dir.X())))
	horizontal := gomath.Sqrt(float64(dir.X()*dir.X() + dir.Z()*dir.Z()))
	altitude = float32(gomath.Atan2(float64(dir.Y()), horizontal))
	return azimuth, altitude
}

// DirectionFromAzimuthAltitude is the inverse of AzimuthAltitude; the
// returned vector is unit length.
func DirectionFromAzimuthAltitude(azimuth, altitude float32) mgl32.Vec3 {
	cosAlt := float32(gomath.Cos(float64(altitude)))
	return mgl32.Vec3{
		cosAlt * float32(gomath.Cos(float64(azimuth))),
		float32(gomath.Sin(float64(altitude))),
		-cosAlt * float32(gomath.Sin(float64(azimuth))),
	}
}
