package life

import (
	"strconv"

	"gameoflife/pkg/core"
)

// Parameters reports the board dimensions and live statistics.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", l.cur.W),
				intParam("h", "Height", l.cur.H),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				uintParam("generation", "Generation", l.generation),
				intParam("population", "Population", l.Population()),
				boolParam("sustain", "Sustain", l.sustain),
				floatParam("density", "Soup density", l.density),
			},
		},
	}}
}

// ParameterControls exposes sustain as a 0/1 toggle and the soup density.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "sustain", Label: "Sustain", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "density", Label: "Soup density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer control. It reports whether key was
// recognised.
func (l *Life) SetIntParameter(key string, value int) bool {
	switch key {
	case "sustain":
		l.SetSustain(value != 0)
		return true
	}
	return false
}

// SetFloatParameter updates a floating point control. It reports whether
// key was recognised.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "density":
		l.SetDensity(value)
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func uintParam(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
	}
}

// boolParam renders as 0/1 so the HUD can adjust it like an integer.
func boolParam(key, label string, value bool) core.Parameter {
	v := "0"
	if value {
		v = "1"
	}
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: v,
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
