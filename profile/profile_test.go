package profile

import (
	"slices"
	"testing"
)

func TestMake_AppliesOptions(t *testing.T) {
	c := Make(WithMode("cpu"), nil, WithPath("/tmp/p"), WithQuiet(true))

	want := Config{Mode: "cpu", Path: "/tmp/p", Quiet: true}
	if c != want {
		t.Errorf("Make() = %+v, want %+v", c, want)
	}
}

func TestConfig_Start_EmptyModeIsNoop(t *testing.T) {
	p := Make(WithPath(t.TempDir())).Start()

	if _, ok := p.(ignore); !ok {
		t.Fatalf("expected no-op profiler, got %T", p)
	}

	p.Stop()
}

func TestConfig_Start_UnknownModeIsNoop(t *testing.T) {
	p := Make(WithMode("bogus"), WithPath(t.TempDir())).Start()

	if _, ok := p.(ignore); !ok {
		t.Fatalf("expected no-op profiler, got %T", p)
	}

	p.Stop()
}

func TestModes_Sorted(t *testing.T) {
	modes := Modes()

	if !slices.IsSorted(modes) {
		t.Errorf("Modes() not sorted: %v", modes)
	}

	if slices.Contains(modes, "quiet") {
		t.Errorf("Modes() lists quiet: %v", modes)
	}
}
