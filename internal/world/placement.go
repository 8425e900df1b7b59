package world

import (
	"log"
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LatLngToVector places a point at lat/lng degrees, height above a sphere of
// the given radius. Out-of-range input is logged and used as is.
func LatLngToVector(lat, lng float64, radius, height float32) rl.Vector3 {
	if lat < -90 || lat > 90 {
		log.Printf("World: latitude %.2f outside [-90, 90]", lat)
	}
	if lng < -180 || lng > 180 {
		log.Printf("World: longitude %.2f outside [-180, 180]", lng)
	}

	r := float64(radius + height)
	phi := lat * math.Pi / 180
	theta := (lng - 180) * math.Pi / 180

	return rl.Vector3{
		X: float32(-r * math.Cos(phi) * math.Cos(theta)),
		Y: float32(r * math.Sin(phi)),
		Z: float32(r * math.Cos(phi) * math.Sin(theta)),
	}
}

// RandomInt returns an integer in [min, max], both inclusive.
func RandomInt(rng *rand.Rand, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return rng.Intn(max-min+1) + min
}
