package monitor

import (
	"errors"
	"testing"
)

func TestParseUptime(t *testing.T) {
	us, ms, err := ParseUptime("uptime us=4294967295999 ms=4294967295\r\n")
	if err != nil {
		t.Fatalf("ParseUptime: %v", err)
	}
	if us != 4294967295999 || ms != 4294967295 {
		t.Errorf("ParseUptime = %d, %d", us, ms)
	}
}

func TestParseUptimeRejectsGarbage(t *testing.T) {
	for _, line := range []string{
		"",
		"ok",
		"uptime us=abc ms=1",
		"uptime us=1",
		"uptime us=1 ms=99999999999",
	} {
		if _, _, err := ParseUptime(line); !errors.Is(err, ErrBadResponse) {
			t.Errorf("ParseUptime(%q) err = %v, want ErrBadResponse", line, err)
		}
	}
}

func TestReasonRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 0xDEADBEEF, 0x50F7B007} {
		got, err := ParseReason(FormatReason(v))
		if err != nil {
			t.Fatalf("ParseReason: %v", err)
		}
		if got != v {
			t.Errorf("round trip %#x -> %#x", v, got)
		}
	}
}

func TestFormatReasonZeroPadded(t *testing.T) {
	if got := FormatReason(0x7B); got != "reason=0x0000007b" {
		t.Errorf("FormatReason(0x7B) = %q", got)
	}
}
