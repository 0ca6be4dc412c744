// Package monitor implements the line-oriented console protocol spoken
// between the firmware's serial console and the host tool. Requests are
// single words, responses are single lines, so the protocol is usable
// from a terminal as well as from host/fc.
package monitor

// Console requests.
const (
	CmdUptime = "uptime" // report microsecond and millisecond uptime
	CmdReason = "reason" // report the persistent reset reason
	CmdClear  = "clear"  // clear the persistent reset reason
	CmdReboot = "reboot" // reset into the application
	CmdDFU    = "dfu"    // reset into the bootloader
)

// System is the capability surface the console needs from the firmware.
type System interface {
	Micros() uint64
	Millis() uint32
	ResetReason() uint32
	ClearResetReason()

	// Reboot resets the system; it does not return on hardware.
	Reboot(toBootloader bool)
}

// Console dispatches request lines against a System. A reboot request is
// acknowledged first and executed by CheckPendingReboot once the caller
// has flushed the response; resetting before the acknowledgement leaves
// the serial link is a lost reply on the host side.
type Console struct {
	sys                System
	pendingReboot      bool
	rebootToBootloader bool
}

func NewConsole(sys System) *Console {
	return &Console{sys: sys}
}

// Handle executes one request line and returns the response line,
// without a trailing newline. Unknown requests produce both an error
// response line and ErrUnknownCommand, so callers can still send the
// response to the peer.
func (c *Console) Handle(line string) (string, error) {
	switch trimSpace(line) {
	case CmdUptime:
		return FormatUptime(c.sys.Micros(), c.sys.Millis()), nil
	case CmdReason:
		return FormatReason(c.sys.ResetReason()), nil
	case CmdClear:
		c.sys.ClearResetReason()
		return RespOK, nil
	case CmdReboot:
		c.pendingReboot = true
		c.rebootToBootloader = false
		return RespOK, nil
	case CmdDFU:
		c.pendingReboot = true
		c.rebootToBootloader = true
		return RespOK, nil
	case "":
		return "", nil
	default:
		return RespErr + " unknown command", ErrUnknownCommand
	}
}

// CheckPendingReboot performs a reboot requested by an earlier Handle
// call. The caller invokes it after transmitting the acknowledgement.
// Does not return on hardware if a reboot was pending.
func (c *Console) CheckPendingReboot() {
	if !c.pendingReboot {
		return
	}
	c.pendingReboot = false
	c.sys.Reboot(c.rebootToBootloader)
}

// trimSpace trims leading/trailing spaces and CR/LF without pulling the
// strings package into the firmware image.
func trimSpace(s string) string {
	start := 0
	for start < len(s) && isSpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
