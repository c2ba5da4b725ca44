package network

import (
	"testing"

	"github.com/dangerclosesec/logsim/circuit/devices"
	"github.com/dangerclosesec/logsim/circuit/model"
	"github.com/dangerclosesec/logsim/circuit/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	table *names.Table
	devs  *devices.Table
	graph *Graph
}

func newFixture(t *testing.T) *fixture {
	table := names.New()
	devs := devices.New(table)

	two, one := 2, 1
	require.Equal(t, model.DeviceOK, devs.MakeDevice(table.Lookup("sw")[0], model.KindSwitch, &one))
	require.Equal(t, model.DeviceOK, devs.MakeDevice(table.Lookup("g")[0], model.KindAnd, &two))
	require.Equal(t, model.DeviceOK, devs.MakeDevice(table.Lookup("d")[0], model.KindDType, nil))

	return &fixture{table: table, devs: devs, graph: New(devs)}
}

func (f *fixture) id(s string) names.ID {
	return f.table.Lookup(s)[0]
}

func TestMakeConnection(t *testing.T) {
	tests := []struct {
		name                     string
		dev1, port1, dev2, port2 string
		expected                 model.ConnStatus
	}{
		{"output to input", "sw", "", "g", "I1", model.ConnOK},
		{"input to output", "g", "I2", "sw", "", model.ConnOK},
		{"dtype output", "d", "Q", "g", "I1", model.ConnOK},
		{"absent device", "nope", "", "g", "I1", model.ConnDeviceAbsent},
		{"absent destination", "sw", "", "nope", "I1", model.ConnDeviceAbsent},
		{"absent gate pin", "sw", "", "g", "I3", model.ConnPortAbsent},
		{"dtype without pin", "d", "", "g", "I1", model.ConnPortAbsent},
		{"input to input", "g", "I1", "d", "DATA", model.ConnInputToInput},
		{"output to output", "sw", "", "d", "Q", model.ConnOutputToOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			port := func(s string) names.ID {
				if s == "" {
					return names.None
				}
				return f.id(s)
			}

			status := f.graph.MakeConnection(f.id(tt.dev1), port(tt.port1), f.id(tt.dev2), port(tt.port2))
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestMakeConnectionInputConnected(t *testing.T) {
	f := newFixture(t)

	require.Equal(t, model.ConnOK, f.graph.MakeConnection(f.id("sw"), names.None, f.id("g"), f.id("I1")))
	assert.Equal(t, model.ConnInputConnected, f.graph.MakeConnection(f.id("d"), f.id("Q"), f.id("g"), f.id("I1")))
	assert.Equal(t, 1, f.graph.Len())

	driver, ok := f.graph.Driver(model.PortRef{Device: f.id("g"), Port: f.id("I1")})
	require.True(t, ok)
	assert.Equal(t, model.PortRef{Device: f.id("sw"), Port: names.None}, driver)
}

func TestUnconnectedInputs(t *testing.T) {
	f := newFixture(t)

	require.Equal(t, model.ConnOK, f.graph.MakeConnection(f.id("sw"), names.None, f.id("g"), f.id("I1")))
	require.Equal(t, model.ConnOK, f.graph.MakeConnection(f.id("g"), names.None, f.id("d"), f.id("DATA")))

	unconnected := f.graph.UnconnectedInputs()
	assert.Equal(t, []model.PortRef{
		{Device: f.id("g"), Port: f.id("I2")},
		{Device: f.id("d"), Port: f.id("CLK")},
		{Device: f.id("d"), Port: f.id("SET")},
		{Device: f.id("d"), Port: f.id("CLEAR")},
	}, unconnected)
}
