package geo

import (
	"errors"
	"math"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Point{
		{Lat: -2.170998, Lng: -79.922356},
		{Lat: 0, Lng: 0},
		{Lat: 90, Lng: 180},
		{Lat: -90, Lng: -180},
		{Lat: 41.123456789, Lng: 2.987654321},
	}

	for _, want := range cases {
		wkt, err := Encode(want.Lat, want.Lng)
		if err != nil {
			t.Fatalf("Encode(%v, %v) failed: %v", want.Lat, want.Lng, err)
		}

		got, err := Decode(wkt)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", wkt, err)
		}

		if math.Abs(got.Lat-want.Lat) > 1e-6 || math.Abs(got.Lng-want.Lng) > 1e-6 {
			t.Fatalf("round trip of %+v gave %+v", want, got)
		}
	}
}

func TestEncodeOutOfRange(t *testing.T) {
	cases := [][2]float64{
		{91, 0},
		{-91, 0},
		{0, 181},
		{0, -181},
	}

	for _, c := range cases {
		if _, err := Encode(c[0], c[1]); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Encode(%v, %v) expected ErrOutOfRange, got %v", c[0], c[1], err)
		}
	}
}

func TestDecodeToleratesAllFormats(t *testing.T) {
	cases := []string{
		"POINT(-79.922356 -2.170998)",
		"point(-79.922356 -2.170998)",
		`{"type":"Point","coordinates":[-79.922356,-2.170998]}`,
		`{"lat":-2.170998,"lng":-79.922356}`,
		"-2.170998,-79.922356",
		" -2.170998 , -79.922356 ",
	}

	for _, raw := range cases {
		p, err := Decode(raw)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", raw, err)
		}
		if math.Abs(p.Lat+2.170998) > 1e-6 || math.Abs(p.Lng+79.922356) > 1e-6 {
			t.Fatalf("Decode(%q) = %+v", raw, p)
		}
	}
}

func TestDecodeUnrecognized(t *testing.T) {
	cases := []string{
		"",
		"not a point",
		"POINT()",
		"POINT(1)",
		`{"type":"LineString","coordinates":[[0,0],[1,1]]}`,
		`{"lat":1}`,
		"1,2,3",
	}

	for _, raw := range cases {
		if _, err := Decode(raw); !errors.Is(err, ErrUnrecognizedFormat) {
			t.Fatalf("Decode(%q) expected ErrUnrecognizedFormat, got %v", raw, err)
		}
	}
}

func TestDisplayRoundsToSixDecimals(t *testing.T) {
	p := Point{Lat: -2.1709984321, Lng: -79.9223561234}
	got := p.Display()
	want := "-2.170998, -79.922356"
	if got != want {
		t.Fatalf("Display() = %q, want %q", got, want)
	}
}

func TestDistanceKm(t *testing.T) {
	p := Point{Lat: -2.170998, Lng: -79.922356}
	if d := DistanceKm(p, p); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}

	q := Point{Lat: 10, Lng: 20}
	if d1, d2 := DistanceKm(p, q), DistanceKm(q, p); math.Abs(d1-d2) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", d1, d2)
	}

	// One degree of latitude is roughly 111 km.
	a := Point{Lat: 0, Lng: 0}
	b := Point{Lat: 1, Lng: 0}
	if d := DistanceKm(a, b); math.Abs(d-111) > 1 {
		t.Fatalf("one degree of latitude = %v km, want ~111", d)
	}
}
