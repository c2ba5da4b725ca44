// File: parser/parse.go
package parser

import (
	"github.com/dangerclosesec/logsim/circuit/model"
	"github.com/dangerclosesec/logsim/circuit/names"
)

// ParseFile parses the definition file at path. Diagnostics are returned
// even when err is a *FatalError.
func ParseFile(path string, table *names.Table, devices model.DeviceTable, network model.NetworkGraph, monitors model.MonitorSet) (Diagnostics, error) {
	s, err := OpenScanner(path, table)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	p := NewParser(s, table, devices, network, monitors)
	if _, err := p.ParseNetwork(); err != nil {
		return p.Diagnostics(), err
	}

	return p.Diagnostics(), nil
}
