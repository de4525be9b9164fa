package model

import "github.com/a-bouts/helm-server/latlon"

// Tick is the vessel state the simulation harness reports every time step.
// Times are in hours, speed is in knots.
type Tick struct {
	T         float64    `json:"t"`
	Dt        float64    `json:"dt"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Heading   float64    `json:"heading"`
	Speed     float64    `json:"speed"`
	Vector    [2]float64 `json:"vector"`
}

// Instruction is the helm answer for one tick. At most one directive is set;
// all nil means the course is complete and the helm has nothing to steer to.
// Sail throttles the vessel in [0,1] independently of the directive.
type Instruction struct {
	Location *latlon.LatLon `json:"location,omitempty"`
	Heading  *float64       `json:"heading,omitempty"`
	Vector   *[2]float64    `json:"vector,omitempty"`
	Left     *float64       `json:"left,omitempty"`
	Right    *float64       `json:"right,omitempty"`
	Sail     *float64       `json:"sail,omitempty"`
}
