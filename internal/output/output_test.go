package output

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"
)

func TestOutputJSONMode(t *testing.T) {
	var buf bytes.Buffer
	f := New(WithFormat(FormatJSON), WithWriter(&buf))

	err := f.Output(map[string]int{"count": 3}, func(io.Writer) error {
		t.Fatal("text function must not run in JSON mode")
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]int
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if got["count"] != 3 {
		t.Errorf("unexpected payload %v", got)
	}
}

func TestOutputTextMode(t *testing.T) {
	var buf bytes.Buffer
	f := New(WithWriter(&buf))

	err := f.Output(nil, func(w io.Writer) error {
		_, werr := io.WriteString(w, "hello")
		return werr
	})
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hello" {
		t.Errorf("unexpected text output %q", buf.String())
	}
}

func TestDetectFormatEnvOverride(t *testing.T) {
	t.Setenv("ORCHTOP_OUTPUT_FORMAT", "json")
	if DetectFormat(false) != FormatJSON {
		t.Error("env var should force JSON")
	}

	t.Setenv("ORCHTOP_OUTPUT_FORMAT", "text")
	if DetectFormat(false) != FormatText {
		t.Error("env var should force text")
	}
}

func TestDetectFormatFlagWins(t *testing.T) {
	t.Setenv("ORCHTOP_OUTPUT_FORMAT", "text")
	if DetectFormat(true) != FormatJSON {
		t.Error("the --json flag beats the environment")
	}
}
