package course

import (
	"encoding/json"
	"io/ioutil"

	"github.com/a-bouts/helm-server/latlon"
)

// Checkpoint is a course mark with its capture radius in kilometers.
// Reached is the only mutable field and never goes back to false.
type Checkpoint struct {
	latlon.LatLon
	Name    string  `json:"name,omitempty"`
	Radius  float64 `json:"radius"`
	Reached bool    `json:"reached"`
}

type Course struct {
	Name        string        `json:"name"`
	Checkpoints []*Checkpoint `json:"checkpoints"`
}

// Config carries the values the harness injects at construction time.
type Config struct {
	Start latlon.LatLon
}

// New builds the round the world competition course. The last checkpoint
// closes the loop on the injected start position.
func New(cfg Config) *Course {
	c := &Course{
		Name: "around-the-world",
		Checkpoints: []*Checkpoint{
			{LatLon: latlon.LatLon{Lat: 43.797109, Lon: -11.264905}, Name: "biscay", Radius: 50},
			{LatLon: latlon.LatLon{Lat: 16.79314, Lon: -57.16281}, Name: "antilles", Radius: 50},
			{LatLon: latlon.LatLon{Lat: 14.33136, Lon: -60.86658}, Name: "sainte-lucie", Radius: 10},
			{LatLon: latlon.LatLon{Lat: 14.88418, Lon: -75.99475}, Name: "caraibes", Radius: 50},
			{LatLon: latlon.LatLon{Lat: 10.05314, Lon: -80.25195}, Name: "colon", Radius: 30},
			{LatLon: latlon.LatLon{Lat: 9.34789, Lon: -79.91893}, Name: "gatun", Radius: 10},
			{LatLon: latlon.LatLon{Lat: 8.92079, Lon: -79.47879}, Name: "balboa", Radius: 10},
			{LatLon: latlon.LatLon{Lat: 6.81393, Lon: -79.21698}, Name: "panama-sud", Radius: 30},
			{LatLon: latlon.LatLon{Lat: 3.0, Lon: -150.0}, Name: "pacifique", Radius: 100},
			{LatLon: latlon.LatLon{Lat: 2.67776, Lon: 132.97296}, Name: "halmahera", Radius: 50},
			{LatLon: latlon.LatLon{Lat: -2.44015, Lon: 129.74323}, Name: "seram", Radius: 10},
			{LatLon: latlon.LatLon{Lat: -2.96691, Lon: 125.12873}, Name: "buru", Radius: 10},
			{LatLon: latlon.LatLon{Lat: -8.21340, Lon: 128.47406}, Name: "banda", Radius: 50},
			{LatLon: latlon.LatLon{Lat: -11.34191, Lon: 128.54547}, Name: "timor", Radius: 10},
			{LatLon: latlon.LatLon{Lat: -14.16543, Lon: 115.78259}, Name: "australie", Radius: 50},
			{LatLon: latlon.LatLon{Lat: -20.0, Lon: 70.0}, Name: "ocean-indien", Radius: 50},
			{LatLon: latlon.LatLon{Lat: -36.693, Lon: 22.09}, Name: "bonne-esperance", Radius: 50},
			{LatLon: latlon.LatLon{Lat: -36.9, Lon: 12.0}, Name: "atlantique-sud", Radius: 50},
			{LatLon: latlon.LatLon{Lat: 14.06509, Lon: -24.97424}, Name: "cap-vert", Radius: 50},
			{LatLon: latlon.LatLon{Lat: 45.53168, Lon: -11.13147}, Name: "finisterre", Radius: 50},
		},
	}
	c.Checkpoints = append(c.Checkpoints, &Checkpoint{LatLon: cfg.Start, Name: "finish", Radius: 5})
	return c
}

// Load reads a course from a JSON file. The finish checkpoint on the start
// position is appended the same way New does it.
func Load(file string, cfg Config) (*Course, error) {
	content, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var c Course
	if err := json.Unmarshal(content, &c); err != nil {
		return nil, err
	}

	c.Checkpoints = append(c.Checkpoints, &Checkpoint{LatLon: cfg.Start, Name: "finish", Radius: 5})
	return &c, nil
}

// Remaining counts the checkpoints not yet reached.
func (c *Course) Remaining() int {
	n := 0
	for _, ch := range c.Checkpoints {
		if !ch.Reached {
			n++
		}
	}
	return n
}

func (c *Course) Done() bool {
	return c.Remaining() == 0
}
