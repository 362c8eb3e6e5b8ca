package view

import (
	"fmt"
	"math"
)

// FormatSeconds renders a run time as H:MM:SS.xx, M:SS.xx or S.xx depending
// on its magnitude. NaN and negative inputs render as an empty string.
func FormatSeconds(t float64) string {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return ""
	}

	// Round through centiseconds so .995 carries into the next second.
	totalCS := int64(math.Round(t * 100))
	totalSeconds := totalCS / 100
	frac := totalCS % 100

	s := totalSeconds % 60
	m := (totalSeconds / 60) % 60
	h := totalSeconds / 3600

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, frac)
	}
	if m > 0 {
		return fmt.Sprintf("%d:%02d.%02d", m, s, frac)
	}
	return fmt.Sprintf("%d.%02d", s, frac)
}

// AxisTicks holds precomputed tick positions and labels for a time axis.
type AxisTicks struct {
	Values []float64 `json:"values"`
	Labels []string  `json:"labels"`
}

var tickStepCandidates = []float64{0.1, 0.2, 0.5, 1, 2, 5, 10, 15, 30, 60, 300, 600}

// TimeAxisTicks picks ~targetTicks evenly spaced tick positions covering the
// given time values and formats the labels for the range: seconds with two
// decimals under a minute, M:SS under an hour, H:MM:SS above.
func TimeAxisTicks(values []float64, targetTicks int) AxisTicks {
	if targetTicks < 2 {
		targetTicks = 7
	}

	vals := values[:0:0]
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return AxisTicks{Values: []float64{0}, Labels: []string{"0:00"}}
	}

	yMin, yMax := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < yMin {
			yMin = v
		}
		if v > yMax {
			yMax = v
		}
	}

	// Expand degenerate ranges slightly so a flat series still gets an axis.
	if math.Abs(yMax-yMin) < 1e-9 {
		span := math.Max(1.0, yMax*0.05)
		yMin -= span
		yMax += span
	}

	rawStep := (yMax - yMin) / float64(targetTicks-1)
	step := math.Ceil(rawStep/tickStepCandidates[len(tickStepCandidates)-1]) * tickStepCandidates[len(tickStepCandidates)-1]
	for _, c := range tickStepCandidates {
		if c >= rawStep {
			step = c
			break
		}
	}

	start := math.Floor(yMin/step) * step
	end := math.Ceil(yMax/step) * step

	mode := "subminute"
	if yMax >= 3600 {
		mode = "hours"
	} else if yMax >= 60 {
		mode = "minutes"
	}

	var ticks AxisTicks
	for v := start; v <= end+step*0.5; v += step {
		rounded := math.Round(v*100) / 100
		ticks.Values = append(ticks.Values, rounded)
		ticks.Labels = append(ticks.Labels, formatTick(rounded, mode))
	}
	return ticks
}

func formatTick(sec float64, mode string) string {
	switch mode {
	case "subminute":
		return fmt.Sprintf("%.2f", sec)
	case "minutes":
		total := int(math.Round(sec))
		return fmt.Sprintf("%d:%02d", total/60, total%60)
	default:
		total := int(math.Round(sec))
		return fmt.Sprintf("%d:%02d:%02d", total/3600, (total/60)%60, total%60)
	}
}
