package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":                 OK,
		"driver_init_failed": DriverInitFailed,
		"invalid_board":      InvalidBoard,
		"invalid_config":     InvalidConfig,
		"error":              Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	cause := errors.New("boom")
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, OK},
		{"bare code", InvalidBoard, InvalidBoard},
		{"wrapped", &E{C: DriverInitFailed, Op: "InitAll", Msg: "gpio", Err: cause}, DriverInitFailed},
		{"foreign", cause, Error},
	}
	for _, c := range cases {
		if got := Of(c.err); got != c.want {
			t.Errorf("%s: Of = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestEMessageAndUnwrap(t *testing.T) {
	cause := errors.New("clock gate stuck")
	e := &E{C: DriverInitFailed, Op: "InitAll", Msg: "gpio", Err: cause}
	if got, want := e.Error(), "driver_init_failed: gpio"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(e, cause) {
		t.Fatalf("errors.Is should reach the cause")
	}
	if got := (&E{C: InvalidConfig}).Error(); got != "invalid_config" {
		t.Fatalf("Error() without Msg = %q", got)
	}
}
