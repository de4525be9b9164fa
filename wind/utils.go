package wind

// Twa is the true wind angle, in ]-180,180], of a vessel heading relative
// to the wind direction.
func Twa(heading, wind float64) float64 {
	twa := wind - heading
	if twa <= -180 {
		twa += 360
	}
	if twa > 180 {
		twa -= 360
	}

	return twa
}

// Heading is the vessel heading, in [0,360[, matching a true wind angle for
// a wind direction.
func Heading(twa, wind float64) float64 {
	heading := wind - twa
	if heading < 0 {
		heading += 360
	}
	if heading >= 360 {
		heading -= 360
	}

	return heading
}
