package helm

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/helm-server/api/model"
	"github.com/a-bouts/helm-server/course"
	"github.com/a-bouts/helm-server/latlon"
	"github.com/a-bouts/helm-server/wind"
	"github.com/a-bouts/helm-server/xmpp"
)

// Forecast answers wind queries : direction in degrees and speed in m/s at
// a position, hours ahead of now.
type Forecast interface {
	Forecast(lat float64, lon float64, hours float64) (float64, float64)
}

// Terrain answers land or sea queries.
type Terrain interface {
	IsLand(lat float64, lon float64) bool
}

// Helm steers the vessel along its course, one tick at a time. The reached
// flags of the course checkpoints are its only state across ticks.
type Helm struct {
	Team   string
	course *course.Course
	x      *xmpp.Xmpp
	latlon.LatLonSpherical
}

func New(team string, c *course.Course, x *xmpp.Xmpp) *Helm {
	return &Helm{Team: team, course: c, x: x}
}

func (h *Helm) Course() *course.Course {
	return h.course
}

// Decide returns the instruction for one tick : steer to the first unreached
// checkpoint, throttling the sail down when the checkpoint is closer than two
// radii plus the distance covered during this tick. Checkpoints closer than
// their radius are marked reached on the way. When everything is reached no
// directive is set and only the sail value remains.
func (h *Helm) Decide(tick model.Tick, forecast Forecast, terrain Terrain) model.Instruction {
	var instruction model.Instruction

	pos := latlon.LatLon{Lat: tick.Latitude, Lon: tick.Longitude}

	if forecast != nil {
		d, s := forecast.Forecast(tick.Latitude, tick.Longitude, 0)
		log.Debugf("t %.1f wind %.0f° %.1f m/s twa %.0f", tick.T, d, s, wind.Twa(tick.Heading, d))
	}
	if terrain != nil && terrain.IsLand(tick.Latitude, tick.Longitude) {
		log.Warnf("t %.1f aground at (%.5f,%.5f)", tick.T, tick.Latitude, tick.Longitude)
	}

	jump := tick.Dt * math.Abs(tick.Speed)

	for _, ch := range h.course.Checkpoints {
		dist := h.DistanceTo(pos, ch.LatLon)

		if dist < 2.0*ch.Radius+jump {
			sail := math.Min(ch.Radius/jump, 1)
			instruction.Sail = &sail
		} else {
			sail := 1.0
			instruction.Sail = &sail
		}

		if dist < ch.Radius {
			if !ch.Reached {
				h.reached(ch)
			}
			ch.Reached = true
		}

		if !ch.Reached {
			instruction.Location = &latlon.LatLon{Lat: ch.Lat, Lon: ch.Lon}
			break
		}
	}

	return instruction
}

func (h *Helm) reached(ch *course.Checkpoint) {
	remaining := h.course.Remaining() - 1

	log.Infof("Checkpoint '%s' reached, %d to go", ch.Name, remaining)

	if h.x == nil {
		return
	}

	msg := fmt.Sprintf("%s : checkpoint '%s' reached, %d to go", h.Team, ch.Name, remaining)
	if remaining == 0 {
		msg = fmt.Sprintf("%s : course complete", h.Team)
	}
	go h.x.Send(msg)
}
