package wind

import (
	"math"
	"testing"
	"time"
)

func TestTwa(t *testing.T) {
	for _, tt := range []struct {
		heading float64
		wind    float64
		twa     float64
	}{
		{0, 90, 90},
		{90, 0, -90},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
	} {
		twa := Twa(tt.heading, tt.wind)
		if twa != tt.twa {
			t.Errorf("Twa(%f, %f) = %f; want %f", tt.heading, tt.wind, twa, tt.twa)
		}
	}
}

func TestHeading(t *testing.T) {
	for _, tt := range []struct {
		twa     float64
		wind    float64
		heading float64
	}{
		{90, 90, 0},
		{-90, 0, 90},
		{20, 10, 350},
	} {
		heading := Heading(tt.twa, tt.wind)
		if heading != tt.heading {
			t.Errorf("Heading(%f, %f) = %f; want %f", tt.twa, tt.wind, heading, tt.heading)
		}
	}
}

func TestBilinearInterpolate(t *testing.T) {
	g00 := []float64{0, 0}
	g10 := []float64{1, 2}
	g01 := []float64{2, 4}
	g11 := []float64{3, 6}

	u, v := bilinearInterpolate(0, 0, g00, g10, g01, g11)
	if u != 0 || v != 0 {
		t.Errorf("bilinearInterpolate(0,0) = (%f,%f); want (0,0)", u, v)
	}

	u, v = bilinearInterpolate(1, 1, g00, g10, g01, g11)
	if u != 3 || v != 6 {
		t.Errorf("bilinearInterpolate(1,1) = (%f,%f); want (3,6)", u, v)
	}

	u, v = bilinearInterpolate(0.5, 0.5, g00, g10, g01, g11)
	if u != 1.5 || v != 3 {
		t.Errorf("bilinearInterpolate(0.5,0.5) = (%f,%f); want (1.5,3)", u, v)
	}
}

func TestVectorToDegrees(t *testing.T) {
	// wind blowing to the north comes from the south : 180
	d := vectorToDegrees(0, 1, 1)
	if math.Round(d) != 180 {
		t.Errorf("vectorToDegrees(0,1) = %f; want 180", d)
	}
	// wind blowing to the east comes from the west : 270
	d = vectorToDegrees(1, 0, 1)
	if math.Round(d) != 270 {
		t.Errorf("vectorToDegrees(1,0) = %f; want 270", d)
	}
}

func constantGrid(rows, cols int, value float64) [][]float64 {
	grid := make([][]float64, rows)
	for i := range grid {
		grid[i] = make([]float64, cols)
		for j := range grid[i] {
			grid[i][j] = value
		}
	}
	return grid
}

func testWind(u, v float64) *Wind {
	return &Wind{
		Date: time.Now(),
		Lat0: 90.0,
		Lon0: 0.0,
		ΔLat: 1.0,
		ΔLon: 1.0,
		NLat: 181,
		NLon: 360,
		U:    constantGrid(181, 361, u),
		V:    constantGrid(181, 361, v),
	}
}

func TestInterpolateSingleForecast(t *testing.T) {
	w := testWind(0, 3)

	d, s := Interpolate([]*Wind{w}, nil, 45.5, -30.5, 0)
	if math.Round(d) != 180 || math.Abs(s-3) > 1e-9 {
		t.Errorf("Interpolate = (%f, %f); want (180, 3)", d, s)
	}
}

func TestInterpolateBlendsForecasts(t *testing.T) {
	w1 := testWind(0, 2)
	w2 := testWind(0, 4)

	_, s := Interpolate([]*Wind{w1}, []*Wind{w2}, 10.0, 10.0, 0.5)
	if math.Abs(s-3) > 1e-9 {
		t.Errorf("Interpolate speed = %f; want 3 halfway between 2 and 4", s)
	}
}

func TestBuildGridWrapsContinuousLongitudes(t *testing.T) {
	w := Wind{NLat: 2, NLon: 360, ΔLat: 1, ΔLon: 1}

	data := make([]float64, 2*360)
	for i := range data {
		data[i] = float64(i)
	}

	grid := w.buildGrid(data)
	if len(grid[0]) != 361 {
		t.Fatalf("len(grid[0]) = %d; want 361 with wrap column", len(grid[0]))
	}
	if grid[0][360] != grid[0][0] || grid[1][360] != grid[1][0] {
		t.Error("wrap column should duplicate the first column")
	}
}

func TestFindWindsEmpty(t *testing.T) {
	w := &Winds{winds: make(map[string]ForecastWinds)}
	w1, w2, h := w.FindWinds(time.Now())
	if w1 != nil || w2 != nil || h != 0 {
		t.Errorf("FindWinds on empty set = (%v, %v, %f); want (nil, nil, 0)", w1, w2, h)
	}

	d, s := w.Forecast(45.0, -30.0, 0)
	if d != 0 || s != 0 {
		t.Errorf("Forecast on empty set = (%f, %f); want flat calm (0, 0)", d, s)
	}
}

func TestFindWindsBrackets(t *testing.T) {
	now := time.Now().Truncate(time.Hour)
	before := &Wind{Date: now.Add(-time.Hour), File: "a"}
	after := &Wind{Date: now.Add(time.Hour), File: "b"}

	w := &Winds{winds: map[string]ForecastWinds{
		before.Date.Format("2006010215"): {before},
		after.Date.Format("2006010215"):  {after},
	}}

	w1, w2, h := w.FindWinds(now)
	if w1 == nil || w2 == nil {
		t.Fatal("FindWinds should bracket a time between two forecasts")
	}
	if w1[0].File != "a" || w2[0].File != "b" {
		t.Errorf("FindWinds = (%s, %s); want (a, b)", w1[0].File, w2[0].File)
	}
	if math.Abs(h-0.5) > 1e-9 {
		t.Errorf("FindWinds ratio = %f; want 0.5", h)
	}
}
