package main

import (
	"github.com/grapengine/grape/engine/colors"
	"github.com/grapengine/grape/engine/surface"
)

// rocketArt draws a small rocket into a CPU surface: red nose cone, white
// body with a porthole, red fins, orange exhaust. Nose points up, matching
// heading 0.
func rocketArt() *surface.Surface {
	const w, h = 32, 48
	s, _ := surface.New(w, h)

	body := colors.White
	nose := colors.Red
	fin := colors.Red
	port := colors.FromHSV(210, 0.7, 0.9)
	flame := colors.FromHSV(30, 1, 1)

	// nose cone: widening rows from the tip down to the body
	for y := 2; y < 14; y++ {
		half := (y - 2) * 6 / 12
		s.Fill(w/2-half-1, y, 2*half+2, 1, nose)
	}

	// body
	s.Fill(w/2-6, 14, 12, 22, body)

	// porthole
	s.Fill(w/2-3, 19, 6, 6, port)

	// fins
	for y := 30; y < 38; y++ {
		spread := (y - 30) * 5 / 8
		s.Fill(w/2-7-spread, y, 3, 1, fin)
		s.Fill(w/2+4+spread, y, 3, 1, fin)
	}

	// exhaust flame: narrowing rows below the body
	for y := 38; y < 46; y++ {
		half := 5 - (y-38)*5/8
		if half < 1 {
			half = 1
		}
		s.Fill(w/2-half, y, 2*half, 1, flame)
	}

	return s
}
