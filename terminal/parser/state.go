package parser

// State for the state machine
type State int

const (
	StateGround State = iota
	StateEscape
	StateCSIEntry
	StateCSIParam
	StateCSIIntermediate
	StateCSIIgnore
	StateOSCString
	StateDCSEntry
	StateDCSParam
	StateDCSIntermediate
	StateDCSPassthrough
	StateDCSIgnore
	StateSosPmApcString
	StateStringEscape

	stateCount = int(StateStringEscape) + 1
)

func (s State) String() string {
	switch s {
	case StateGround:
		return "Ground"
	case StateEscape:
		return "Escape"
	case StateCSIEntry:
		return "CSIEntry"
	case StateCSIParam:
		return "CSIParam"
	case StateCSIIntermediate:
		return "CSIIntermediate"
	case StateCSIIgnore:
		return "CSIIgnore"
	case StateOSCString:
		return "OSCString"
	case StateDCSEntry:
		return "DCSEntry"
	case StateDCSParam:
		return "DCSParam"
	case StateDCSIntermediate:
		return "DCSIntermediate"
	case StateDCSPassthrough:
		return "DCSPassthrough"
	case StateDCSIgnore:
		return "DCSIgnore"
	case StateSosPmApcString:
		return "SosPmApcString"
	case StateStringEscape:
		return "StringEscape"
	default:
		return "Unknown"
	}
}
