package model

import (
	"testing"

	"github.com/dangerclosesec/logsim/circuit/names"
	"github.com/stretchr/testify/assert"
)

func TestDeviceKindString(t *testing.T) {
	kinds := map[DeviceKind]string{
		KindClock:  "CLOCK",
		KindSwitch: "SWITCH",
		KindAnd:    "AND",
		KindNand:   "NAND",
		KindOr:     "OR",
		KindNor:    "NOR",
		KindDType:  "DTYPE",
		KindXor:    "XOR",
		KindNot:    "NOT",
		99:         "UNKNOWN",
	}

	for kind, want := range kinds {
		assert.Equal(t, want, kind.String())
	}
}

func TestDeviceKindIsGate(t *testing.T) {
	for _, kind := range []DeviceKind{KindAnd, KindNand, KindOr, KindNor} {
		assert.True(t, kind.IsGate(), kind.String())
	}
	for _, kind := range []DeviceKind{KindClock, KindSwitch, KindDType, KindXor, KindNot} {
		assert.False(t, kind.IsGate(), kind.String())
	}
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "DEVICE_PRESENT", DevicePresent.String())
	assert.Equal(t, "QUALIFIER_PRESENT", DeviceQualifierPresent.String())
	assert.Equal(t, "INPUT_CONNECTED", ConnInputConnected.String())
	assert.Equal(t, "DEVICE_ABSENT", ConnDeviceAbsent.String())
	assert.Equal(t, "NOT_OUTPUT", MonitorNotOutput.String())
	assert.Equal(t, "MONITOR_PRESENT", MonitorPresent.String())
	assert.Equal(t, "UNKNOWN", MonitorStatus(-1).String())
}

func TestPortRefName(t *testing.T) {
	table := names.New()
	ids := table.Lookup("dtype1", "Q", "sw")

	assert.Equal(t, "dtype1.Q", PortRef{Device: ids[0], Port: ids[1]}.Name(table))
	assert.Equal(t, "sw", PortRef{Device: ids[2], Port: names.None}.Name(table))
}
