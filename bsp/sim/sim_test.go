package sim

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"bootcode-go/drivers/aht20"
	"bootcode-go/kernel"
	"bootcode-go/kernel/driver"

	"github.com/rs/zerolog"
)

// syncBuffer is written by the kernel goroutine and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitOutput(t *testing.T, out *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if out.String() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("console output:\n%q\nwant:\n%q", out.String(), want)
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Drivers = append(cfg.Drivers, DriverSpec{Kind: "fpga"})
	if _, err := New(cfg, strings.NewReader(""), io.Discard, zerolog.Nop()); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewBuildsDriversInOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Drivers = append(cfg.Drivers, DriverSpec{Kind: KindAHT20})
	b, err := New(cfg, strings.NewReader(""), io.Discard, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var got []string
	for _, d := range b.Drivers() {
		got = append(got, d.Compatible())
	}
	if strings.Join(got, ",") != "uart,gpio,"+aht20.Compatible {
		t.Fatalf("drivers = %v", got)
	}
}

func TestInjectedFailure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Drivers[1].Fail = true
	b, err := New(cfg, strings.NewReader(""), io.Discard, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = driver.InitAll(b.Drivers())
	if name, ok := driver.FailedDriver(err); !ok || name != "gpio" {
		t.Fatalf("FailedDriver = %q, %v", name, ok)
	}
	if !errors.Is(err, ErrInjectedFailure) {
		t.Fatalf("cause lost: %v", err)
	}
}

func TestSensorCalibration(t *testing.T) {
	ok := newDriver(DriverSpec{Kind: KindAHT20}, zerolog.Nop())
	if err := ok.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	bad := newDriver(DriverSpec{Kind: KindAHT20, Fail: true}, zerolog.Nop())
	if err := bad.Init(); !errors.Is(err, aht20.ErrNotCalibrated) {
		t.Fatalf("Init err = %v, want ErrNotCalibrated", err)
	}
}

func TestBootEchoes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Name = "X"
	out := &syncBuffer{}
	b, err := New(cfg, strings.NewReader("ignored\nhi"), out, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	go kernel.Boot(b)

	waitOutput(t, out, "[0] Booting on: X\n"+
		"[1] Drivers loaded:\n"+
		"      1. uart\n"+
		"      2. gpio\n"+
		"[2] Chars written: 0\n"+
		"[3] Echoing input now\n"+
		"hi")
}

func TestBootSerialNewlines(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Name = "X"
	cfg.Drivers = cfg.Drivers[:1]
	cfg.CRLF = true
	cfg.CRToLF = true
	out := &syncBuffer{}
	b, err := New(cfg, strings.NewReader("\ra"), out, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	go kernel.Boot(b)

	waitOutput(t, out, "[0] Booting on: X\r\n"+
		"[1] Drivers loaded:\r\n"+
		"      1. uart\r\n"+
		"[2] Chars written: 0\r\n"+
		"[3] Echoing input now\r\n"+
		"a")
}

func TestBootDriverFailure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Drivers[1].Fail = true
	out := &syncBuffer{}
	b, err := New(cfg, strings.NewReader("\nhi"), out, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	go kernel.Boot(b)

	waitOutput(t, out, "Error loading driver: gpio\n")
	time.Sleep(20 * time.Millisecond)
	if got := out.String(); got != "Error loading driver: gpio\n" {
		t.Fatalf("output after halt = %q", got)
	}
}
