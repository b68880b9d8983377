package models

// ReceiverKind describes how an annotated method receives its service
type ReceiverKind int

const (
	ReceiverNone               ReceiverKind = iota // free function
	ReceiverByReference                            // value receiver: func (s T)
	ReceiverByMutableReference                     // pointer receiver: func (s *T)
)

// String returns the string representation of the receiver kind
func (k ReceiverKind) String() string {
	switch k {
	case ReceiverByReference:
		return "value"
	case ReceiverByMutableReference:
		return "pointer"
	default:
		return "none"
	}
}

// ReturnShape is the static category of an action's declared results. It
// selects the handler body the generator emits.
type ReturnShape int

const (
	// Raw results are converted and wrapped in a success response
	Raw ReturnShape = iota
	// RawResult is a result list ending in error whose values are converted and wrapped
	RawResult
	// WrappedResponse is (ServiceResponse, error); the response is passed through
	WrappedResponse
)

// String returns the string representation of the return shape
func (s ReturnShape) String() string {
	switch s {
	case WrappedResponse:
		return "WrappedResponse"
	case RawResult:
		return "RawResult"
	default:
		return "Raw"
	}
}

// DefaultResponseTypeName is the type name that marks a WrappedResponse result
const DefaultResponseTypeName = "ServiceResponse"

// GeneratedHeader is the first line of every generated file. Only files
// carrying it are overwritten or removed.
const GeneratedHeader = "// Code generated by runar. DO NOT EDIT."

// GeneratedFileName is the name of the file written into every package with actions
const GeneratedFileName = "autogen_actions.go"
