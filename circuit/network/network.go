// Package network records the connections between device ports.
package network

import (
	"github.com/dangerclosesec/logsim/circuit/devices"
	"github.com/dangerclosesec/logsim/circuit/model"
	"github.com/dangerclosesec/logsim/circuit/names"
)

// Graph maps every connected input to the output driving it
type Graph struct {
	devices *devices.Table
	drivers map[model.PortRef]model.PortRef
	count   int
}

// New creates an empty Graph over the devices of devs
func New(devs *devices.Table) *Graph {
	return &Graph{
		devices: devs,
		drivers: make(map[model.PortRef]model.PortRef),
	}
}

// MakeConnection connects an output to an input. The two ends may be given
// in either order.
func (g *Graph) MakeConnection(dev1, port1, dev2, port2 names.ID) model.ConnStatus {
	d1, ok1 := g.devices.Get(dev1)
	d2, ok2 := g.devices.Get(dev2)
	if !ok1 || !ok2 {
		return model.ConnDeviceAbsent
	}

	in1, out1 := d1.IsInput(port1), d1.IsOutput(port1)
	in2, out2 := d2.IsInput(port2), d2.IsOutput(port2)
	if (!in1 && !out1) || (!in2 && !out2) {
		return model.ConnPortAbsent
	}

	var input, output model.PortRef
	switch {
	case in1 && in2:
		return model.ConnInputToInput
	case out1 && out2:
		return model.ConnOutputToOutput
	case out1:
		output = model.PortRef{Device: dev1, Port: port1}
		input = model.PortRef{Device: dev2, Port: port2}
	default:
		output = model.PortRef{Device: dev2, Port: port2}
		input = model.PortRef{Device: dev1, Port: port1}
	}

	if _, ok := g.drivers[input]; ok {
		return model.ConnInputConnected
	}

	g.drivers[input] = output
	g.count++

	return model.ConnOK
}

// Driver returns the output connected to input
func (g *Graph) Driver(input model.PortRef) (model.PortRef, bool) {
	out, ok := g.drivers[input]
	return out, ok
}

// Len returns the number of connections
func (g *Graph) Len() int {
	return g.count
}

// UnconnectedInputs lists every input nothing drives, in declaration order
func (g *Graph) UnconnectedInputs() []model.PortRef {
	var out []model.PortRef
	for _, d := range g.devices.Devices() {
		for _, port := range d.Inputs {
			ref := model.PortRef{Device: d.ID, Port: port}
			if _, ok := g.Driver(ref); !ok {
				out = append(out, ref)
			}
		}
	}
	return out
}
