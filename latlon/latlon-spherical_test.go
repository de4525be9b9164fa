package latlon

import (
	"math"
	"testing"
)

func TestWrap360(t *testing.T) {
	a := wrap360(-1.0)
	if a != 359.0 {
		t.Errorf("wrap360(-1) = %f; want 359.0", a)
	}
	b := wrap360(361.0)
	if b != 1.0 {
		t.Errorf("wrap360(361.0) = %f; want 1.0", b)
	}
}

func TestDistanceTo(t *testing.T) {
	p1 := LatLon{Lat: 51.127, Lon: 1.338}
	p2 := LatLon{Lat: 50.964, Lon: 1.853}
	d := LatLonSpherical{}.DistanceTo(p1, p2)
	if math.Round(d*10)/10 != 40.3 {
		t.Errorf("{%f,%f}.DistanceTo({%f,%f}) = %f; want 40.3", p1.Lat, p1.Lon, p2.Lat, p2.Lon, d)
	}
}

func TestBearingTo(t *testing.T) {
	p1 := LatLon{Lat: 51.127, Lon: 1.338}
	p2 := LatLon{Lat: 50.964, Lon: 1.853}
	b := LatLonSpherical{}.BearingTo(p1, p2)
	if math.Round(b*10)/10 != 116.5 {
		t.Errorf("{%f,%f}.BearingTo({%f,%f}) = %f; want 116.5", p1.Lat, p1.Lon, p2.Lat, p2.Lon, b)
	}
}

func TestDistanceAndBearingTo(t *testing.T) {
	p1 := LatLon{Lat: 51.127, Lon: 1.338}
	p2 := LatLon{Lat: 50.964, Lon: 1.853}
	d, b := LatLonSpherical{}.DistanceAndBearingTo(p1, p2)
	if math.Round(d*10)/10 != 40.3 || math.Round(b*10)/10 != 116.5 {
		t.Errorf("DistanceAndBearingTo = (%f, %f); want (40.3, 116.5)", d, b)
	}
}

func TestDestination(t *testing.T) {
	p1 := LatLon{Lat: 51.127, Lon: 1.338}
	p2 := LatLonSpherical{}.Destination(p1, 116.52142115848176, 40.3076631417113)
	if math.Round(p2.Lat*10000)/10000 != 50.9640 || math.Round(p2.Lon*10000)/10000 != 1.8530 {
		t.Errorf("{%f,%f}.Destination(116.52, 40.31) = {%f,%f}; want {50.9640,1.8530}", p1.Lat, p1.Lon, p2.Lat, p2.Lon)
	}
}

func TestDestinationRoundTrip(t *testing.T) {
	sph := LatLonSpherical{}
	from := LatLon{Lat: 10.0, Lon: -30.0}
	for _, dist := range []float64{5.0, 35.0, 45.0, 800.0} {
		to := sph.Destination(from, 90.0, dist)
		d := sph.DistanceTo(from, to)
		if math.Abs(d-dist) > 1e-6 {
			t.Errorf("DistanceTo(Destination(%.1f)) = %f; want %.1f", dist, d, dist)
		}
	}
}

func TestDestinationWrapsAntimeridian(t *testing.T) {
	sph := LatLonSpherical{}
	from := LatLon{Lat: 0.0, Lon: 179.5}
	to := sph.Destination(from, 90.0, 200.0)
	if to.Lon > 180.0 || to.Lon < -180.0 {
		t.Errorf("Destination crossed the antimeridian with lon %f; want [-180,180]", to.Lon)
	}
	if to.Lon > 0 {
		t.Errorf("Destination lon = %f; want negative (wrapped)", to.Lon)
	}
}
