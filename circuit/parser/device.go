// File: parser/device.go
package parser

import (
	"github.com/dangerclosesec/logsim/circuit/model"
	"github.com/dangerclosesec/logsim/circuit/names"
)

// parseDevice parses one device declaration statement such as
// "SWITCH sw1(0), sw2(1);"
func (p *Parser) parseDevice() {
	tok := p.cur.peek()

	kind, ok := p.deviceKind(tok)
	if !ok {
		p.syntaxError(ErrDeviceTypeNotDeclared)
		if p.cur.is(TokenSemicolon) {
			p.cur.advance()
		}
		return
	}
	p.cur.advance()

	for {
		declared := p.declareDevice(kind)

		if p.cur.is(TokenComma) {
			p.cur.advance()
			continue
		}
		// A failed declaration that resynchronized on the next name keeps
		// the list going
		if !declared && p.cur.is(TokenDeviceName) {
			continue
		}
		break
	}

	p.expectSemicolon()
}

// deviceKind maps a gate name token to its device kind
func (p *Parser) deviceKind(tok Token) (model.DeviceKind, bool) {
	if tok.Type != TokenGateName {
		return 0, false
	}

	switch tok.ID {
	case p.reserved.clock:
		return model.KindClock, true
	case p.reserved.switchID:
		return model.KindSwitch, true
	case p.reserved.and:
		return model.KindAnd, true
	case p.reserved.nand:
		return model.KindNand, true
	case p.reserved.or:
		return model.KindOr, true
	case p.reserved.nor:
		return model.KindNor, true
	case p.reserved.dtype:
		return model.KindDType, true
	case p.reserved.xor:
		return model.KindXor, true
	case p.reserved.not:
		return model.KindNot, true
	default:
		return 0, false
	}
}

// declareDevice parses "name" or "name(n)" and submits the device. It
// reports whether the declaration was well formed.
func (p *Parser) declareDevice(kind model.DeviceKind) bool {
	nameTok := p.cur.peek()
	if nameTok.Type != TokenDeviceName {
		p.syntaxError(ErrDeviceNameExpected)
		return false
	}
	p.cur.advance()

	var property *int
	if invalid, needed := propertyError(kind); needed {
		if !p.cur.isID(TokenBracket, p.reserved.leftBracket) {
			p.syntaxError(ErrLeftBracketExpected)
			return false
		}
		p.cur.advance()

		numTok := p.cur.peek()
		if numTok.Type != TokenNumber || !validProperty(kind, numTok.Value) {
			p.syntaxError(invalid)
			if p.cur.isID(TokenBracket, p.reserved.rightBracket) {
				p.cur.advance()
			}
			return false
		}
		p.cur.advance()

		if !p.cur.isID(TokenBracket, p.reserved.rightBracket) {
			p.syntaxError(ErrRightBracketExpected)
			return false
		}
		p.cur.advance()

		value := numTok.Value
		property = &value
	}

	p.submitDevice(nameTok, kind, property)
	return true
}

// propertyError returns the diagnostic for a bad property of kind, and
// false when the kind takes no property
func propertyError(kind model.DeviceKind) (ErrorKind, bool) {
	switch {
	case kind == model.KindClock:
		return ErrInvalidCycleValue, true
	case kind == model.KindSwitch:
		return ErrInvalidStateOfSwitch, true
	case kind.IsGate():
		return ErrInvalidInputInitialisation, true
	default:
		return 0, false
	}
}

func validProperty(kind model.DeviceKind, n int) bool {
	switch kind {
	case model.KindClock:
		return n > 0
	case model.KindSwitch:
		return n == 0 || n == 1
	default:
		return n >= 1 && n <= MaxGatePins
	}
}

func (p *Parser) submitDevice(nameTok Token, kind model.DeviceKind, property *int) {
	status := p.devices.MakeDevice(nameTok.ID, kind, property)

	p.logger.Debug("declared device",
		"name", nameTok.Literal,
		"kind", kind.String(),
		"status", status.String(),
	)

	switch status {
	case model.DeviceOK:
		p.declared[nameTok.ID] = true
	case model.DeviceInvalidQualifier:
		p.record(ErrInvalidQualifier, nameTok)
	case model.DeviceBadDevice:
		p.record(ErrBadDevice, nameTok)
	case model.DeviceQualifierPresent:
		p.record(ErrQualifierPresent, nameTok)
	case model.DevicePresent:
		p.record(ErrDevicePresent, nameTok)
	}
}

// parseConnection parses "src[.Q] => dst.pin;"
func (p *Parser) parseConnection() {
	srcTok := p.cur.peek()
	if srcTok.Type != TokenDeviceName {
		p.syntaxError(ErrDeviceNameExpected)
		p.endStatement()
		return
	}
	p.cur.advance()

	srcPort := names.None
	if p.cur.is(TokenDot) {
		p.cur.advance()
		if !p.cur.is(TokenDTypeOutputPin) {
			p.syntaxError(ErrOutputPinExpected)
			p.endStatement()
			return
		}
		srcPort = p.cur.advance().ID
	}

	// A missing arrow directly before the destination name is reported and
	// the rest of the statement is still checked for syntax
	failed := false
	if p.cur.is(TokenRightArrow) {
		p.cur.advance()
	} else {
		p.syntaxError(ErrRightArrowExpected)
		if !p.cur.is(TokenDeviceName) {
			p.endStatement()
			return
		}
		failed = true
	}

	dstTok := p.cur.peek()
	if dstTok.Type != TokenDeviceName {
		p.syntaxError(ErrDeviceNameExpected)
		p.endStatement()
		return
	}
	p.cur.advance()

	if !p.cur.is(TokenDot) {
		p.syntaxError(ErrInputSpecificationExpected)
		p.endStatement()
		return
	}
	p.cur.advance()

	pinTok := p.cur.peek()
	switch {
	case pinTok.Type == TokenDTypeInputPin:
	case pinTok.Type == TokenGatePin && pinTok.Value >= 1 && pinTok.Value <= MaxGatePins:
	case pinTok.Type == TokenGatePin:
		p.syntaxError(ErrInvalidGatePin)
		p.endStatement()
		return
	default:
		p.syntaxError(ErrNotValidInput)
		p.endStatement()
		return
	}
	p.cur.advance()

	if !failed {
		p.submitConnection(srcTok, srcPort, dstTok, pinTok.ID)
	}

	p.expectSemicolon()
}

func (p *Parser) submitConnection(srcTok Token, srcPort names.ID, dstTok Token, dstPort names.ID) {
	status := p.network.MakeConnection(srcTok.ID, srcPort, dstTok.ID, dstPort)

	p.logger.Debug("connected",
		"from", srcTok.Literal,
		"to", dstTok.Literal,
		"status", status.String(),
	)

	switch status {
	case model.ConnOK:
	case model.ConnInputToInput:
		p.record(ErrInputToInput, srcTok)
	case model.ConnOutputToOutput:
		p.record(ErrOutputToOutput, srcTok)
	case model.ConnInputConnected:
		p.record(ErrInputConnected, dstTok)
	case model.ConnPortAbsent:
		p.record(ErrPortAbsent, srcTok)
	case model.ConnDeviceAbsent:
		if p.declared[srcTok.ID] && !p.declared[dstTok.ID] {
			p.record(ErrDeviceAbsent, dstTok)
		} else {
			p.record(ErrDeviceAbsent, srcTok)
		}
	}
}

// parseMonitor parses "name[.Q];"
func (p *Parser) parseMonitor() {
	tok := p.cur.peek()
	if tok.Type != TokenDeviceName {
		p.syntaxError(ErrDeviceNameExpected)
		p.endStatement()
		return
	}
	p.cur.advance()

	port := names.None
	if p.cur.is(TokenDot) {
		p.cur.advance()
		if !p.cur.is(TokenDTypeOutputPin) {
			p.syntaxError(ErrOutputPinExpected)
			p.endStatement()
			return
		}
		port = p.cur.advance().ID
	}

	status := p.monitors.MakeMonitor(tok.ID, port, 0)

	p.logger.Debug("monitored",
		"name", tok.Literal,
		"status", status.String(),
	)

	switch status {
	case model.MonitorOK:
	case model.MonitorNotOutput:
		p.record(ErrNotOutput, tok)
	case model.MonitorPresent:
		p.record(ErrMonitorPresent, tok)
	}

	p.expectSemicolon()
}
