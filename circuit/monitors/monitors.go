// Package monitors keeps the output signals a circuit definition asks to
// record.
package monitors

import (
	"github.com/dangerclosesec/logsim/circuit/devices"
	"github.com/dangerclosesec/logsim/circuit/model"
	"github.com/dangerclosesec/logsim/circuit/names"
)

// Set holds the monitored outputs and the cycle recording starts at
type Set struct {
	names   *names.Table
	devices *devices.Table
	start   map[model.PortRef]int
	order   []model.PortRef
}

// New creates an empty Set
func New(table *names.Table, devs *devices.Table) *Set {
	return &Set{
		names:   table,
		devices: devs,
		start:   make(map[model.PortRef]int),
	}
}

// MakeMonitor starts monitoring dev.port. Monitoring anything but an existing
// output fails with MonitorNotOutput.
func (s *Set) MakeMonitor(dev, port names.ID, startCycle int) model.MonitorStatus {
	d, ok := s.devices.Get(dev)
	if !ok || !d.IsOutput(port) {
		return model.MonitorNotOutput
	}

	ref := model.PortRef{Device: dev, Port: port}
	if _, ok := s.start[ref]; ok {
		return model.MonitorPresent
	}

	s.start[ref] = startCycle
	s.order = append(s.order, ref)

	return model.MonitorOK
}

// Len returns the number of monitors
func (s *Set) Len() int {
	return len(s.order)
}

// SignalNames returns the display name of each monitored output, such as
// "sw1" or "dtype.Q"
func (s *Set) SignalNames() []string {
	out := make([]string, 0, len(s.order))
	for _, ref := range s.order {
		out = append(out, ref.Name(s.names))
	}
	return out
}
