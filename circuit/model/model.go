// Package model holds the types shared between the definition parser and the
// services that build a circuit from it.
package model

import "github.com/dangerclosesec/logsim/circuit/names"

// DeviceKind is the kind of a declared device
type DeviceKind int

const (
	KindClock DeviceKind = iota
	KindSwitch
	KindAnd
	KindNand
	KindOr
	KindNor
	KindDType
	KindXor
	KindNot
)

func (k DeviceKind) String() string {
	switch k {
	case KindClock:
		return "CLOCK"
	case KindSwitch:
		return "SWITCH"
	case KindAnd:
		return "AND"
	case KindNand:
		return "NAND"
	case KindOr:
		return "OR"
	case KindNor:
		return "NOR"
	case KindDType:
		return "DTYPE"
	case KindXor:
		return "XOR"
	case KindNot:
		return "NOT"
	default:
		return "UNKNOWN"
	}
}

// IsGate reports whether the kind takes a configurable number of inputs
func (k DeviceKind) IsGate() bool {
	return k == KindAnd || k == KindNand || k == KindOr || k == KindNor
}

// DeviceStatus is the result of declaring a device
type DeviceStatus int

const (
	DeviceOK DeviceStatus = iota
	DeviceInvalidQualifier
	DeviceBadDevice
	DeviceQualifierPresent
	DevicePresent
)

func (s DeviceStatus) String() string {
	switch s {
	case DeviceOK:
		return "OK"
	case DeviceInvalidQualifier:
		return "INVALID_QUALIFIER"
	case DeviceBadDevice:
		return "BAD_DEVICE"
	case DeviceQualifierPresent:
		return "QUALIFIER_PRESENT"
	case DevicePresent:
		return "DEVICE_PRESENT"
	default:
		return "UNKNOWN"
	}
}

// ConnStatus is the result of wiring two ports together
type ConnStatus int

const (
	ConnOK ConnStatus = iota
	ConnInputToInput
	ConnOutputToOutput
	ConnInputConnected
	ConnPortAbsent
	ConnDeviceAbsent
)

func (s ConnStatus) String() string {
	switch s {
	case ConnOK:
		return "OK"
	case ConnInputToInput:
		return "INPUT_TO_INPUT"
	case ConnOutputToOutput:
		return "OUTPUT_TO_OUTPUT"
	case ConnInputConnected:
		return "INPUT_CONNECTED"
	case ConnPortAbsent:
		return "PORT_ABSENT"
	case ConnDeviceAbsent:
		return "DEVICE_ABSENT"
	default:
		return "UNKNOWN"
	}
}

// MonitorStatus is the result of registering a signal tap
type MonitorStatus int

const (
	MonitorOK MonitorStatus = iota
	MonitorNotOutput
	MonitorPresent
)

func (s MonitorStatus) String() string {
	switch s {
	case MonitorOK:
		return "OK"
	case MonitorNotOutput:
		return "NOT_OUTPUT"
	case MonitorPresent:
		return "MONITOR_PRESENT"
	default:
		return "UNKNOWN"
	}
}

// PortRef names one port of one device. Port is names.None for the single
// output of a device that has no named outputs.
type PortRef struct {
	Device names.ID
	Port   names.ID
}

// Name renders the port as "device" or "device.PORT"
func (r PortRef) Name(table *names.Table) string {
	name, _ := table.NameString(r.Device)
	if r.Port != names.None {
		port, _ := table.NameString(r.Port)
		name += "." + port
	}
	return name
}

// DeviceTable creates and validates devices
type DeviceTable interface {
	// MakeDevice declares a device. property is nil when the declaration
	// carried no numeric qualifier.
	MakeDevice(id names.ID, kind DeviceKind, property *int) DeviceStatus
}

// NetworkGraph wires device ports together
type NetworkGraph interface {
	// MakeConnection connects dev1.port1 to dev2.port2. port1 may be names.None.
	MakeConnection(dev1, port1, dev2, port2 names.ID) ConnStatus
}

// MonitorSet registers output signals to record
type MonitorSet interface {
	MakeMonitor(dev, port names.ID, startCycle int) MonitorStatus
}
