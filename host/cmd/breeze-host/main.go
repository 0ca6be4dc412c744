// breeze-host is an interactive console for a board running the breeze
// firmware: query uptime, inspect and clear the persistent reset reason,
// and reboot into the application or the bootloader.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"breeze/core"
	"breeze/host/fc"
	"breeze/host/serial"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	verbose = flag.Bool("verbose", false, "Enable verbose output")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	fmt.Printf("Connecting to %s...\n", *device)
	board, err := fc.ConnectWithConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer board.Close()
	fmt.Println("Connected.")

	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return

		case "help", "?":
			printHelp()

		case "uptime":
			us, ms, err := board.Uptime()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Printf("uptime: %d us (%d ms)\n", us, ms)
			if *verbose {
				fmt.Printf("  %.3f s since boot\n", float64(us)/1e6)
			}

		case "reason":
			reason, err := board.ResetReason()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Printf("reset reason: 0x%08X%s\n", reason, describeReason(reason))

		case "clear":
			if err := board.ClearResetReason(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Println("reset reason cleared")

		case "reboot":
			if err := board.Reboot(false); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Println("board is restarting; reconnect when it comes back")
			return

		case "dfu":
			if err := board.Reboot(true); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Println("board is restarting into the bootloader")
			return

		default:
			fmt.Printf("Unknown command: %s (type 'help' for available commands)\n", line)
		}
	}
}

func describeReason(reason uint32) string {
	switch reason {
	case 0:
		return " (none recorded)"
	case core.SoftResetTag:
		return " (deliberate soft reset)"
	default:
		return ""
	}
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  uptime  - query the board's microsecond uptime clock")
	fmt.Println("  reason  - read the persistent reset reason")
	fmt.Println("  clear   - clear the persistent reset reason")
	fmt.Println("  reboot  - restart into the application")
	fmt.Println("  dfu     - restart into the bootloader (firmware update)")
	fmt.Println("  help    - show this help")
	fmt.Println("  quit    - exit")
}
