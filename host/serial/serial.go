// Package serial abstracts the host's serial link to the flight
// controller so the rest of the host code can run against a real port
// or an in-memory fake.
package serial

import "io"

// Port is a byte-stream connection to the board.
type Port interface {
	io.ReadWriteCloser

	// Flush discards any buffered but untransmitted data.
	Flush() error
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g. "/dev/ttyACM0", "COM3").
	Device string

	// Baud rate. USB CDC consoles ignore it but the field is still
	// required to open the port.
	Baud int

	// Read timeout in milliseconds (0 = blocking).
	ReadTimeout int
}

// DefaultConfig returns the configuration for the firmware's console.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 500,
	}
}
