package geo

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrOutOfRange         = errors.New("coordinates out of range")
	ErrUnrecognizedFormat = errors.New("unrecognized coordinate format")
	errMalformedWKT       = errors.New("malformed WKT point")
)

const (
	earthRadiusKm         = 6371.0
	displayDecimalsFactor = 1e6
)

// Point is a geographic coordinate pair at full floating precision.
type Point struct {
	Lat float64
	Lng float64
}

// Encode produces the well-known text form stored in the database.
// Longitude comes first, matching the WKT axis order.
func Encode(lat, lng float64) (string, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return "", fmt.Errorf("%w: lat=%v lng=%v", ErrOutOfRange, lat, lng)
	}
	return fmt.Sprintf("POINT(%s %s)",
		strconv.FormatFloat(lng, 'f', -1, 64),
		strconv.FormatFloat(lat, 'f', -1, 64),
	), nil
}

// Decode accepts any of the coordinate shapes clients and the database
// produce: a WKT point, a GeoJSON point object, a {lat,lng} object, or a
// bare "lat,lng" pair.
func Decode(raw string) (Point, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Point{}, ErrUnrecognizedFormat
	}

	if strings.HasPrefix(strings.ToUpper(s), "POINT") {
		p, err := decodeWKT(s)
		if err != nil {
			return Point{}, ErrUnrecognizedFormat
		}
		return p, nil
	}

	if strings.HasPrefix(s, "{") {
		if p, ok := decodeJSON(s); ok {
			return p, nil
		}
		return Point{}, ErrUnrecognizedFormat
	}

	if p, ok := decodePair(s); ok {
		return p, nil
	}

	return Point{}, ErrUnrecognizedFormat
}

func decodeWKT(s string) (Point, error) {
	open := strings.Index(s, "(")
	end := strings.LastIndex(s, ")")
	if open < 0 || end < open {
		return Point{}, errMalformedWKT
	}
	fields := strings.Fields(s[open+1 : end])
	if len(fields) != 2 {
		return Point{}, errMalformedWKT
	}
	lng, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Point{}, errMalformedWKT
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Point{}, errMalformedWKT
	}
	return Point{Lat: lat, Lng: lng}, nil
}

func decodeJSON(s string) (Point, bool) {
	var geo struct {
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"`
	}
	if err := json.Unmarshal([]byte(s), &geo); err == nil &&
		strings.EqualFold(geo.Type, "Point") && len(geo.Coordinates) == 2 {
		return Point{Lat: geo.Coordinates[1], Lng: geo.Coordinates[0]}, true
	}

	var obj struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	if err := json.Unmarshal([]byte(s), &obj); err == nil && obj.Lat != nil && obj.Lng != nil {
		return Point{Lat: *obj.Lat, Lng: *obj.Lng}, true
	}

	return Point{}, false
}

func decodePair(s string) (Point, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, false
	}
	return Point{Lat: lat, Lng: lng}, true
}

// Display renders a point the way documents show it: "lat, lng" rounded
// to 6 decimals. Storage always keeps full precision.
func (p Point) Display() string {
	return fmt.Sprintf("%s, %s",
		strconv.FormatFloat(round6(p.Lat), 'f', -1, 64),
		strconv.FormatFloat(round6(p.Lng), 'f', -1, 64),
	)
}

func round6(f float64) float64 {
	return math.Round(f*displayDecimalsFactor) / displayDecimalsFactor
}

// DistanceKm is the haversine great-circle distance between two points.
func DistanceKm(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
