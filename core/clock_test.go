package core

import "testing"

// fakeTimer simulates the platform cycle timer. Time advances only when
// the test (or the fake itself, via autoStep) says so.
type fakeTimer struct {
	reload   uint32 // captured from StartTick
	elapsed  uint32 // cycles elapsed within the current tick period
	down     bool
	autoStep uint32 // cycles to advance on every ReadCycles
	reads    int
	onRead   func(f *fakeTimer) // runs before the read, simulates preemption
}

func (f *fakeTimer) StartTick(reloadCycles uint32) {
	f.reload = reloadCycles
}

func (f *fakeTimer) CountsDown() bool {
	return f.down
}

func (f *fakeTimer) ReadCycles() uint32 {
	f.reads++
	if f.onRead != nil {
		f.onRead(f)
	}
	if f.autoStep > 0 {
		f.advance(f.autoStep)
	}
	if f.down {
		return f.reload - f.elapsed
	}
	return f.elapsed
}

// advance moves time forward, firing Tick on every tick-period boundary
// the way the hardware interrupt would.
func (f *fakeTimer) advance(cycles uint32) {
	f.elapsed += cycles
	for f.elapsed >= f.reload {
		f.elapsed -= f.reload
		Tick()
	}
}

const testSysclockHz = 72000000 // 72 MHz: 72 cycles/us, 72000 cycles/tick

func newTestClock(down bool) *fakeTimer {
	ft := &fakeTimer{down: down}
	SetCycleTimer(ft)
	setTickCount(0)
	InitClock(testSysclockHz)
	return ft
}

func TestInitClockCalibration(t *testing.T) {
	ft := newTestClock(true)

	if usCycles != 72 {
		t.Errorf("cycles per microsecond = %d, want 72", usCycles)
	}
	if tickCycles != 72000 {
		t.Errorf("cycles per tick = %d, want 72000", tickCycles)
	}
	if ft.reload != 72000 {
		t.Errorf("StartTick reload = %d, want 72000", ft.reload)
	}
}

func TestMillisTracksTicks(t *testing.T) {
	newTestClock(true)

	if got := Millis(); got != 0 {
		t.Fatalf("Millis at boot = %d, want 0", got)
	}
	for i := 0; i < 7; i++ {
		Tick()
	}
	if got := Millis(); got != 7 {
		t.Errorf("Millis after 7 ticks = %d, want 7", got)
	}
}

func TestMicrosDownCounter(t *testing.T) {
	ft := newTestClock(true)
	setTickCount(3)
	ft.elapsed = 250 * 72 // 250us into the current tick

	if got := Micros(); got != 3250 {
		t.Errorf("Micros = %d, want 3250", got)
	}
}

func TestMicrosUpCounter(t *testing.T) {
	ft := newTestClock(false)
	setTickCount(3)
	ft.elapsed = 250 * 72

	if got := Micros(); got != 3250 {
		t.Errorf("Micros = %d, want 3250", got)
	}
}

// A tick firing between the millisecond read and the cycle register read
// must force a retry: the result has to reflect the post-increment
// millisecond count, never a torn pre-increment/post-reload pair.
func TestMicrosRetriesOnConcurrentTick(t *testing.T) {
	ft := newTestClock(true)
	setTickCount(41)
	ft.elapsed = 900 * 72 // late in the tick period

	fired := false
	ft.onRead = func(f *fakeTimer) {
		if !fired {
			fired = true
			// The tick preempts between the two counter reads: the
			// period rolls over and the cycle register reloads.
			f.elapsed = 0
			Tick()
		}
	}

	got := Micros()
	if got != 42000 {
		t.Errorf("Micros = %d, want 42000 (post-tick value)", got)
	}
	if ft.reads < 2 {
		t.Errorf("cycle register read %d time(s), want a retry", ft.reads)
	}
}

func TestMicrosMonotonic(t *testing.T) {
	ft := newTestClock(true)
	ft.autoStep = 37 // sub-microsecond steps, relatively prime to the reload

	prev := Micros()
	for i := 0; i < 20000; i++ {
		now := Micros()
		if now < prev {
			t.Fatalf("Micros went backwards: %d after %d (iteration %d)", now, prev, i)
		}
		prev = now
	}
}

func TestMicrosResolutionBound(t *testing.T) {
	ft := newTestClock(true)
	ft.autoStep = 3

	a := Micros()
	b := Micros()
	if b-a >= 1000 {
		t.Errorf("back-to-back Micros differ by %d us, want < 1000", b-a)
	}
}

func TestMillisWraparound(t *testing.T) {
	newTestClock(true)
	setTickCount(0xFFFFFFFF)

	Tick()
	if got := Millis(); got != 0 {
		t.Fatalf("Millis after wrap = %d, want 0", got)
	}

	// Elapsed time across the wrap boundary still comes out right with
	// unsigned subtraction.
	setTickCount(0xFFFFFFFE)
	start := Millis()
	for i := 0; i < 5; i++ {
		Tick()
	}
	if delta := Millis() - start; delta != 5 {
		t.Errorf("elapsed across wrap = %d, want 5", delta)
	}
}

func TestMicrosRestartsLowAfterWrap(t *testing.T) {
	ft := newTestClock(true)
	setTickCount(0xFFFFFFFF)
	ft.elapsed = 0

	before := Micros()
	Tick()
	after := Micros()
	if after >= before {
		t.Errorf("Micros after millisecond wrap = %d, want a restart below %d", after, before)
	}
}
