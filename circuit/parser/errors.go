// File: parser/errors.go
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMissingEnd is returned when a definition ends without the END keyword
var ErrMissingEnd = errors.New("missing END keyword")

// FatalError stops a parse. It carries the diagnostic that caused it.
type FatalError struct {
	Err        error
	Diagnostic Diagnostic
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%v (line %d, column %d)", e.Err, e.Diagnostic.Line, e.Diagnostic.Column)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies a diagnostic
type ErrorKind int

const (
	// Syntax errors
	ErrLeftCurlyBraceExpected ErrorKind = iota
	ErrRightCurlyBraceExpected
	ErrMissingEndKeyword
	ErrUnexpectedSymbol
	ErrSectionOutOfOrder
	ErrNoDevices
	ErrNoMonitors
	ErrDeviceTypeNotDeclared
	ErrDeviceNameExpected
	ErrLeftBracketExpected
	ErrRightBracketExpected
	ErrInvalidCycleValue
	ErrInvalidStateOfSwitch
	ErrInvalidInputInitialisation
	ErrSemicolonExpected
	ErrOutputPinExpected
	ErrRightArrowExpected
	ErrInputSpecificationExpected
	ErrNotValidInput
	ErrInvalidGatePin

	// Semantic errors reported by the collaborators
	ErrInvalidQualifier
	ErrBadDevice
	ErrQualifierPresent
	ErrDevicePresent
	ErrInputToInput
	ErrOutputToOutput
	ErrInputConnected
	ErrPortAbsent
	ErrDeviceAbsent
	ErrNotOutput
	ErrMonitorPresent

	numErrorKinds
)

// stopSet is a set of token types parsing may resume at
type stopSet uint32

func stopAt(types ...TokenType) stopSet {
	var set stopSet
	for _, t := range types {
		set |= 1 << uint(t)
	}
	return set
}

func (s stopSet) has(t TokenType) bool {
	return s&(1<<uint(t)) != 0
}

var (
	noResync      stopSet
	stopStatement = stopAt(TokenSemicolon, TokenCurlyBracket, TokenKeyword, TokenEOF)
	stopArgument  = stopAt(TokenSemicolon, TokenCurlyBracket, TokenKeyword, TokenEOF, TokenDeviceName, TokenComma)
	stopQualifier = stopAt(TokenSemicolon, TokenCurlyBracket, TokenKeyword, TokenEOF, TokenDeviceName, TokenComma, TokenBracket)
	stopSection   = stopAt(TokenKeyword, TokenEOF)
)

// info returns the message of the kind and the tokens parsing resumes at
func (k ErrorKind) info() (string, stopSet) {
	switch k {
	case ErrLeftCurlyBraceExpected:
		return "Missing '{'", noResync
	case ErrRightCurlyBraceExpected:
		return "Missing '}'", stopSection
	case ErrMissingEndKeyword:
		return "Missing END to indicate end of definition file", noResync
	case ErrUnexpectedSymbol:
		return "Expected DEVICES, CONNECT, MONITOR or END", stopSection
	case ErrSectionOutOfOrder:
		return "Sections must appear in the order DEVICES, CONNECT, MONITOR", noResync
	case ErrNoDevices:
		return "At least one device must be declared", noResync
	case ErrNoMonitors:
		return "At least one monitor point must be declared", noResync
	case ErrDeviceTypeNotDeclared:
		return "Device type not specified, please specify", stopStatement
	case ErrDeviceNameExpected:
		return "Device not specified", stopArgument
	case ErrLeftBracketExpected:
		return "'(' expected but not present", stopArgument
	case ErrRightBracketExpected:
		return "')' expected at end of initialisation", stopArgument
	case ErrInvalidCycleValue:
		return "Invalid value of clock cycles", stopQualifier
	case ErrInvalidStateOfSwitch:
		return "Invalid state of switch", stopQualifier
	case ErrInvalidInputInitialisation:
		return "Number of inputs incorrectly configured", stopQualifier
	case ErrSemicolonExpected:
		return "Semicolon expected at end of line", stopStatement
	case ErrOutputPinExpected:
		return "Output pin not specified", stopStatement
	case ErrRightArrowExpected:
		return "Right arrow expected to signify connect", stopArgument
	case ErrInputSpecificationExpected:
		return "Input expected but not specified", stopStatement
	case ErrNotValidInput:
		return "Not a valid input pin", stopStatement
	case ErrInvalidGatePin:
		return fmt.Sprintf("Gate input pins range from I1 to I%d", MaxGatePins), stopStatement
	case ErrInvalidQualifier:
		return "Qualifier is invalid", noResync
	case ErrBadDevice:
		return "The device kind is incorrect", noResync
	case ErrQualifierPresent:
		return "No qualifier should be present", noResync
	case ErrDevicePresent:
		return "Device already created", noResync
	case ErrInputToInput:
		return "Input is connected to an input", noResync
	case ErrOutputToOutput:
		return "Output is connected to an output", noResync
	case ErrInputConnected:
		return "Input is already connected", noResync
	case ErrPortAbsent:
		return "Port accessed is absent", noResync
	case ErrDeviceAbsent:
		return "Device accessed is absent", noResync
	case ErrNotOutput:
		return "Monitoring point is not an output", noResync
	case ErrMonitorPresent:
		return "Monitor is already present", noResync
	default:
		return "Unknown error", noResync
	}
}

// Message returns the human readable description of the kind
func (k ErrorKind) Message() string {
	msg, _ := k.info()
	return msg
}

// IsSemantic reports whether the kind was raised by a collaborator rather
// than by the grammar
func (k ErrorKind) IsSemantic() bool {
	return k >= ErrInvalidQualifier && k < numErrorKinds
}

func (k ErrorKind) String() string {
	switch k {
	case ErrLeftCurlyBraceExpected:
		return "LEFT_CURLY_BRACE_EXPECTED"
	case ErrRightCurlyBraceExpected:
		return "RIGHT_CURLY_BRACE_EXPECTED"
	case ErrMissingEndKeyword:
		return "MISSING_END_KEYWORD"
	case ErrUnexpectedSymbol:
		return "UNEXPECTED_SYMBOL"
	case ErrSectionOutOfOrder:
		return "SECTION_OUT_OF_ORDER"
	case ErrNoDevices:
		return "NO_DEVICES"
	case ErrNoMonitors:
		return "NO_MONITORS"
	case ErrDeviceTypeNotDeclared:
		return "DEVICE_TYPE_NOT_DECLARED"
	case ErrDeviceNameExpected:
		return "DEVICE_NAME_EXPECTED"
	case ErrLeftBracketExpected:
		return "LEFT_BRACKET_EXPECTED"
	case ErrRightBracketExpected:
		return "RIGHT_BRACKET_EXPECTED"
	case ErrInvalidCycleValue:
		return "INVALID_CYCLE_VALUE"
	case ErrInvalidStateOfSwitch:
		return "INVALID_STATE_OF_SWITCH"
	case ErrInvalidInputInitialisation:
		return "INVALID_INPUT_INITIALISATION"
	case ErrSemicolonExpected:
		return "SEMICOLON_EXPECTED"
	case ErrOutputPinExpected:
		return "OUTPUT_PIN_EXPECTED"
	case ErrRightArrowExpected:
		return "RIGHT_ARROW_EXPECTED"
	case ErrInputSpecificationExpected:
		return "INPUT_SPECIFICATION_EXPECTED"
	case ErrNotValidInput:
		return "NOT_VALID_INPUT"
	case ErrInvalidGatePin:
		return "INVALID_GATE_PIN"
	case ErrInvalidQualifier:
		return "INVALID_QUALIFIER"
	case ErrBadDevice:
		return "BAD_DEVICE"
	case ErrQualifierPresent:
		return "QUALIFIER_PRESENT"
	case ErrDevicePresent:
		return "DEVICE_PRESENT"
	case ErrInputToInput:
		return "INPUT_TO_INPUT"
	case ErrOutputToOutput:
		return "OUTPUT_TO_OUTPUT"
	case ErrInputConnected:
		return "INPUT_CONNECTED"
	case ErrPortAbsent:
		return "PORT_ABSENT"
	case ErrDeviceAbsent:
		return "DEVICE_ABSENT"
	case ErrNotOutput:
		return "NOT_OUTPUT"
	case ErrMonitorPresent:
		return "MONITOR_PRESENT"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Diagnostic is one problem found in a definition
type Diagnostic struct {
	Code       int       `json:"code"`
	Kind       ErrorKind `json:"-"`
	Line       int       `json:"line"`
	Column     int       `json:"column"`
	SourceLine string    `json:"source_line"`
	Caret      string    `json:"caret"`
	Message    string    `json:"message"`
}

// MarshalJSON includes the kind by name
func (d Diagnostic) MarshalJSON() ([]byte, error) {
	type plain Diagnostic
	return json.Marshal(struct {
		plain
		Kind string `json:"kind"`
	}{plain(d), d.Kind.String()})
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("Error location: line %d, column %d\n%s\n%s\n%s",
		d.Line, d.Column, d.SourceLine, d.Caret, d.Message)
}

// Diagnostics is an ordered diagnostic log
type Diagnostics []Diagnostic

// Join renders every diagnostic into one report, separated by sep
func (ds Diagnostics) Join(sep string) string {
	return strings.Join(ds.Strings(), sep)
}

// Strings renders each diagnostic on its own
func (ds Diagnostics) Strings() []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.String()
	}
	return out
}

// Kinds lists the kind of every diagnostic in order
func (ds Diagnostics) Kinds() []ErrorKind {
	out := make([]ErrorKind, len(ds))
	for i, d := range ds {
		out[i] = d.Kind
	}
	return out
}
