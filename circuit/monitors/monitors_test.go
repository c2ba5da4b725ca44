package monitors

import (
	"testing"

	"github.com/dangerclosesec/logsim/circuit/devices"
	"github.com/dangerclosesec/logsim/circuit/model"
	"github.com/dangerclosesec/logsim/circuit/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeMonitor(t *testing.T) {
	table := names.New()
	devs := devices.New(table)
	one := 1

	sw := table.Lookup("sw")[0]
	d := table.Lookup("dtype")[0]
	q, data := table.Lookup("Q")[0], table.Lookup("DATA")[0]

	require.Equal(t, model.DeviceOK, devs.MakeDevice(sw, model.KindSwitch, &one))
	require.Equal(t, model.DeviceOK, devs.MakeDevice(d, model.KindDType, nil))

	set := New(table, devs)

	assert.Equal(t, model.MonitorOK, set.MakeMonitor(d, q, 0))
	assert.Equal(t, model.MonitorOK, set.MakeMonitor(sw, names.None, 3))
	assert.Equal(t, model.MonitorPresent, set.MakeMonitor(d, q, 0))
	assert.Equal(t, model.MonitorNotOutput, set.MakeMonitor(d, data, 0))
	assert.Equal(t, model.MonitorNotOutput, set.MakeMonitor(d, names.None, 0))
	assert.Equal(t, model.MonitorNotOutput, set.MakeMonitor(table.Lookup("ghost")[0], names.None, 0))

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"dtype.Q", "sw"}, set.SignalNames())
}
