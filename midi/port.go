package midi

import (
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// OutPort finds an output port whose name contains name, or the first port
// when name is empty. A driver must be registered by the caller.
func OutPort(name string) (drivers.Out, error) {
	if name == "" {
		return midi.OutPort(0)
	}
	for _, out := range midi.GetOutPorts() {
		if strings.Contains(strings.ToLower(out.String()), strings.ToLower(name)) {
			return out, nil
		}
	}
	return midi.FindOutPort(name)
}

// OutPortNames lists the output ports of the registered driver.
func OutPortNames() []string {
	var names []string
	for _, out := range midi.GetOutPorts() {
		names = append(names, out.String())
	}
	return names
}

func Close() {
	midi.CloseDriver()
}
