package proto

// Kind identifies the message type carried in kernel.Message.Kind.
type Kind uint16

const (
	MsgLogLine Kind = iota + 1
	MsgAppControl
	MsgAppShutdown
	MsgCalcPress
)

func (k Kind) String() string {
	switch k {
	case MsgLogLine:
		return "log_line"
	case MsgAppControl:
		return "app_control"
	case MsgAppShutdown:
		return "app_shutdown"
	case MsgCalcPress:
		return "calc_press"
	default:
		return "unknown"
	}
}
