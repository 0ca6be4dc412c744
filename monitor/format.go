package monitor

import (
	"strconv"
	"strings"
)

// Response lines.
const (
	RespOK  = "ok"
	RespErr = "err"

	uptimePrefix = "uptime us="
	reasonPrefix = "reason=0x"
)

// FormatUptime renders the uptime response line.
func FormatUptime(us uint64, ms uint32) string {
	return uptimePrefix + utoa64(us) + " ms=" + utoa32(ms)
}

// FormatReason renders the reset reason response line.
func FormatReason(reason uint32) string {
	return reasonPrefix + htoa32(reason)
}

// ParseUptime extracts the microsecond and millisecond values from an
// uptime response line.
func ParseUptime(line string) (us uint64, ms uint32, err error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), uptimePrefix)
	if !ok {
		return 0, 0, ErrBadResponse
	}
	usField, msField, ok := strings.Cut(rest, " ms=")
	if !ok {
		return 0, 0, ErrBadResponse
	}
	us, err = strconv.ParseUint(usField, 10, 64)
	if err != nil {
		return 0, 0, ErrBadResponse
	}
	ms64, err := strconv.ParseUint(msField, 10, 32)
	if err != nil {
		return 0, 0, ErrBadResponse
	}
	return us, uint32(ms64), nil
}

// ParseReason extracts the reset reason from a reason response line.
func ParseReason(line string) (uint32, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), reasonPrefix)
	if !ok {
		return 0, ErrBadResponse
	}
	v, err := strconv.ParseUint(rest, 16, 32)
	if err != nil {
		return 0, ErrBadResponse
	}
	return uint32(v), nil
}

// The firmware image formats responses without fmt; these helpers keep
// the console path allocation-light on the MCU.

func utoa32(n uint32) string {
	return utoa64(uint64(n))
}

func utoa64(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

const hexDigits = "0123456789abcdef"

// htoa32 renders n as exactly eight lowercase hex digits.
func htoa32(n uint32) string {
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = hexDigits[n&0xF]
		n >>= 4
	}
	return string(buf[:])
}
