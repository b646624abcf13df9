package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

const (
	// MinLatitude is the southernmost valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the northernmost valid latitude in degrees.
	MaxLatitude = 90.0
	// MinLongitude is the westernmost valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the easternmost valid longitude in degrees.
	MaxLongitude = 180.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint so that
// coordinates are always within valid bounds.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position as a latitude/longitude pair in
// decimal degrees. It is an immutable value object; the zero value is invalid
// and fails validation.
//
// GeoPoint is the unit of distance reasoning for the allocation engine:
// warehouse positions, agent start positions, and order destinations are all
// GeoPoints, and travel distances between them are great-circle kilometers.
//
// Example:
//
//	wh, err := kernel.NewGeoPoint(28.70, 77.10)
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
//	dest, _ := kernel.NewGeoPoint(28.71, 77.12)
//	km := wh.DistanceTo(dest)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given coordinates in decimal
// degrees. Latitude must be within [-90, 90] and longitude within
// [-180, 180]; an aggregated validation error is returned otherwise.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLatitude(latitude), p.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks that the GeoPoint was created through its constructor.
// The zero value fails with ErrGeoPointIsNotConstructed.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String implements fmt.Stringer with the form "GeoPoint(lat,lon)".
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.latitude, p.longitude)
}

// IsEqual compares two geo points for coordinate equality. Both points must
// be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// DistanceTo returns the great-circle distance in kilometers between two
// points, computed with the haversine formula on a sphere of radius 6371 km.
// The result is symmetric and non-negative, and zero for identical points.
// Accuracy is adequate for intra-metropolitan distances; no ellipsoidal
// correction is applied. Coordinate validity is the constructor's concern,
// so DistanceTo itself has no error conditions.
func (p GeoPoint) DistanceTo(other GeoPoint) float64 {
	lat1 := degreesToRadians(p.latitude)
	lon1 := degreesToRadians(p.longitude)
	lat2 := degreesToRadians(other.latitude)
	lon2 := degreesToRadians(other.longitude)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

// setLatitude sets the latitude with range validation.
// Pointer receiver is intentional for self-encapsulated construction.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	p.latitude = latitude
	return nil
}

// setLongitude sets the longitude with range validation.
// Pointer receiver is intentional for self-encapsulated construction.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	p.longitude = longitude
	return nil
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
