package log

import (
	"bytes"
	"io"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestConfig_WithLevel_SetsLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		expected Level
	}{
		{"trace", LevelTrace, LevelTrace},
		{"debug", LevelDebug, LevelDebug},
		{"info", LevelInfo, LevelInfo},
		{"warn", LevelWarn, LevelWarn},
		{"error", LevelError, LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config{}
			opt := WithLevel(tt.level)
			result := opt(c)

			if result.level != tt.expected {
				t.Errorf("expected level %v, got %v", tt.expected, result.level)
			}
		})
	}
}

func TestConfig_WithCaller_SetsCaller(t *testing.T) {
	tests := []struct {
		name     string
		enable   bool
		expected bool
	}{
		{"enabled", true, true},
		{"disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config{}
			opt := WithCaller(tt.enable)
			result := opt(c)

			if result.caller != tt.expected {
				t.Errorf("expected caller %v, got %v", tt.expected, result.caller)
			}
		})
	}
}

func TestConfig_WithFormat_SetsFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		expected Format
	}{
		{"json", FormatJSON, FormatJSON},
		{"text", FormatText, FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config{}
			opt := WithFormat(tt.format)
			result := opt(c)

			if result.format != tt.expected {
				t.Errorf("expected format %v, got %v", tt.expected, result.format)
			}
		})
	}
}

func TestConfig_WithOutput_NilUsesDiscard(t *testing.T) {
	c := WithOutput(nil)(config{})

	if c.output != io.Discard {
		t.Errorf("expected io.Discard, got %v", c.output)
	}
}

func TestConfig_WithDefaults_ResetsFields(t *testing.T) {
	var buf bytes.Buffer

	c := config{level: LevelError, format: FormatJSON, caller: true}
	c = WithDefaults(&buf)(c)

	if c.level != DefaultLevel {
		t.Errorf("expected level %v, got %v", DefaultLevel, c.level)
	}

	if c.format != DefaultFormat {
		t.Errorf("expected format %v, got %v", DefaultFormat, c.format)
	}

	if c.caller != DefaultCaller {
		t.Errorf("expected caller %v, got %v", DefaultCaller, c.caller)
	}

	if c.pretty != DefaultPretty {
		t.Errorf("expected pretty %v, got %v", DefaultPretty, c.pretty)
	}

	if c.output != &buf {
		t.Error("expected output to be the provided writer")
	}
}

func TestApply_SkipsNilOptions(t *testing.T) {
	c := apply(config{}, nil, WithLevel(LevelWarn), nil)

	if c.level != LevelWarn {
		t.Errorf("expected level %v, got %v", LevelWarn, c.level)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{" debug ", LevelDebug},
		{"info", LevelInfo},
		{"WARN", LevelWarn},
		{"error", LevelError},
		{"error+2", LevelError + 2},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{"yaml", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevels_RoundTrip(t *testing.T) {
	names := slices.Collect(Levels())

	want := []string{"trace", "debug", "info", "warn", "error"}
	if !slices.Equal(names, want) {
		t.Fatalf("Levels() = %v, want %v", names, want)
	}

	for _, name := range names {
		if got := ParseLevel(name).String(); got != name {
			t.Errorf("ParseLevel(%q).String() = %q", name, got)
		}
	}
}

func TestFormats_RoundTrip(t *testing.T) {
	for name := range Formats() {
		if got := ParseFormat(name).String(); got != name {
			t.Errorf("ParseFormat(%q).String() = %q", name, got)
		}
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	ts := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		layout   string
		expected string
	}{
		{"named kitchen", "kitchen", "3:04PM"},
		{"named mixed case", "Kitchen", "3:04PM"},
		{"named date time", "date-time", "2024-03-09 15:04:05"},
		{"custom", "2006/01/02", "2024/03/09"},
		{"none", "none", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := makeFormatTimeFunc(tt.layout)(ts); got != tt.expected {
				t.Errorf("format(%q) = %q, want %q", tt.layout, got, tt.expected)
			}
		})
	}
}

func TestConfig_Handler_NoTimestamp(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithTimeLayout("none"), WithPretty(false))
	logger.Info("quiet")

	if strings.Contains(buf.String(), "time=") {
		t.Errorf("expected no timestamp, got: %s", buf.String())
	}
}
