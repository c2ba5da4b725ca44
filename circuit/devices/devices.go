// Package devices keeps the devices declared by a circuit definition and
// the ports each of them exposes.
package devices

import (
	"fmt"

	"github.com/dangerclosesec/logsim/circuit/model"
	"github.com/dangerclosesec/logsim/circuit/names"
)

// MaxInputs is the most inputs a logic gate can have
const MaxInputs = 16

// Device is a declared device and its ports
type Device struct {
	ID       names.ID
	Kind     model.DeviceKind
	Property *int
	Inputs   []names.ID
	Outputs  []names.ID
}

// IsInput reports whether port is an input of the device
func (d *Device) IsInput(port names.ID) bool {
	return contains(d.Inputs, port)
}

// IsOutput reports whether port is an output of the device. Devices with a
// single output use names.None for it.
func (d *Device) IsOutput(port names.ID) bool {
	return contains(d.Outputs, port)
}

// Table holds the declared devices
type Table struct {
	names   *names.Table
	devices map[names.ID]*Device
	order   []names.ID

	gatePins              []names.ID
	data, clk, set, clear names.ID
	q, qbar               names.ID
}

// New creates an empty Table. Pin names are interned in table.
func New(table *names.Table) *Table {
	t := &Table{
		names:   table,
		devices: make(map[names.ID]*Device),
	}

	pins := make([]string, MaxInputs)
	for i := range pins {
		pins[i] = fmt.Sprintf("I%d", i+1)
	}
	t.gatePins = table.Lookup(pins...)

	ids := table.Lookup("DATA", "CLK", "SET", "CLEAR", "Q", "QBAR")
	t.data, t.clk, t.set, t.clear, t.q, t.qbar = ids[0], ids[1], ids[2], ids[3], ids[4], ids[5]

	return t
}

// MakeDevice validates and adds a device
func (t *Table) MakeDevice(id names.ID, kind model.DeviceKind, property *int) model.DeviceStatus {
	if _, ok := t.devices[id]; ok {
		return model.DevicePresent
	}

	d := &Device{ID: id, Kind: kind, Property: property}

	switch {
	case kind.IsGate():
		if property == nil || *property < 1 || *property > MaxInputs {
			return model.DeviceInvalidQualifier
		}
		d.Inputs = append([]names.ID(nil), t.gatePins[:*property]...)
		d.Outputs = []names.ID{names.None}
	case kind == model.KindClock:
		if property == nil || *property <= 0 {
			return model.DeviceInvalidQualifier
		}
		d.Outputs = []names.ID{names.None}
	case kind == model.KindSwitch:
		if property == nil || (*property != 0 && *property != 1) {
			return model.DeviceInvalidQualifier
		}
		d.Outputs = []names.ID{names.None}
	case kind == model.KindXor:
		if property != nil {
			return model.DeviceQualifierPresent
		}
		d.Inputs = append([]names.ID(nil), t.gatePins[:2]...)
		d.Outputs = []names.ID{names.None}
	case kind == model.KindNot:
		if property != nil {
			return model.DeviceQualifierPresent
		}
		d.Inputs = []names.ID{t.gatePins[0]}
		d.Outputs = []names.ID{names.None}
	case kind == model.KindDType:
		if property != nil {
			return model.DeviceQualifierPresent
		}
		d.Inputs = []names.ID{t.data, t.clk, t.set, t.clear}
		d.Outputs = []names.ID{t.q, t.qbar}
	default:
		return model.DeviceBadDevice
	}

	t.devices[id] = d
	t.order = append(t.order, id)

	return model.DeviceOK
}

// Get returns the device with the given id
func (t *Table) Get(id names.ID) (*Device, bool) {
	d, ok := t.devices[id]
	return d, ok
}

// Devices returns every device in declaration order
func (t *Table) Devices() []*Device {
	out := make([]*Device, len(t.order))
	for i, id := range t.order {
		out[i] = t.devices[id]
	}
	return out
}

// Len returns the number of devices
func (t *Table) Len() int {
	return len(t.order)
}

func contains(ids []names.ID, id names.ID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
