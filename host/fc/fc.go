// Package fc provides the host-side handle to a flight controller's
// serial console.
package fc

import (
	"bufio"
	"fmt"
	"strings"

	"breeze/host/serial"
	"breeze/monitor"
)

// FC is a connection to a board running the firmware console.
type FC struct {
	port   serial.Port
	reader *bufio.Reader
}

// Connect opens the console on device with the default serial settings.
func Connect(device string) (*FC, error) {
	return ConnectWithConfig(serial.DefaultConfig(device))
}

// ConnectWithConfig opens the console with a custom serial config.
func ConnectWithConfig(cfg *serial.Config) (*FC, error) {
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port: %w", err)
	}
	return New(port), nil
}

// New wraps an already-open port.
func New(port serial.Port) *FC {
	return &FC{
		port:   port,
		reader: bufio.NewReader(port),
	}
}

// Close closes the underlying port.
func (f *FC) Close() error {
	return f.port.Close()
}

// Uptime queries the board's uptime clock.
func (f *FC) Uptime() (us uint64, ms uint32, err error) {
	resp, err := f.roundTrip(monitor.CmdUptime)
	if err != nil {
		return 0, 0, err
	}
	return monitor.ParseUptime(resp)
}

// ResetReason reads the board's persistent reset reason.
func (f *FC) ResetReason() (uint32, error) {
	resp, err := f.roundTrip(monitor.CmdReason)
	if err != nil {
		return 0, err
	}
	return monitor.ParseReason(resp)
}

// ClearResetReason clears the board's persistent reset reason.
func (f *FC) ClearResetReason() error {
	return f.expectOK(monitor.CmdClear)
}

// Reboot restarts the board, into the bootloader when toBootloader is
// set. The board acknowledges before resetting; the serial link drops
// immediately afterwards.
func (f *FC) Reboot(toBootloader bool) error {
	cmd := monitor.CmdReboot
	if toBootloader {
		cmd = monitor.CmdDFU
	}
	return f.expectOK(cmd)
}

// roundTrip sends one request line and reads one response line.
func (f *FC) roundTrip(cmd string) (string, error) {
	if err := f.port.Flush(); err != nil {
		return "", fmt.Errorf("flush before %q: %w", cmd, err)
	}
	if _, err := f.port.Write([]byte(cmd + "\n")); err != nil {
		return "", fmt.Errorf("send %q: %w", cmd, err)
	}
	line, err := f.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read response to %q: %w", cmd, err)
	}
	line = strings.TrimSpace(line)
	if rest, ok := strings.CutPrefix(line, monitor.RespErr+" "); ok {
		return "", fmt.Errorf("board error for %q: %s", cmd, rest)
	}
	return line, nil
}

func (f *FC) expectOK(cmd string) error {
	resp, err := f.roundTrip(cmd)
	if err != nil {
		return err
	}
	if resp != monitor.RespOK {
		return fmt.Errorf("unexpected response to %q: %q", cmd, resp)
	}
	return nil
}
