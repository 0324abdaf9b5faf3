package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func testPrompter(input string) (*prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return newPrompter(strings.NewReader(input), &out, DefaultConfig().Prompts), &out
}

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{"yes\n", true, false},
		{"y\n", true, false},
		{"YES\n", true, false},
		{"no\n", false, false},
		{"n\n", false, false},
		{"No\n", false, false},
		{"  yes  \n", true, false},
		{"maybe\n", false, true},
		{"1\n", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input)+"_input", func(t *testing.T) {
			p, _ := testPrompter(tt.input)
			got, err := p.askYesNo("Continue? (yes/no)", "answer")
			if tt.wantErr {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("got err %v, want ParseError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("askYesNo failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAskInt(t *testing.T) {
	p, out := testPrompter("42\n")
	got, err := p.askInt("Weight (0-100)", "blend weight")
	if err != nil {
		t.Fatalf("askInt failed: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
	if !strings.Contains(out.String(), "Weight (0-100): ") {
		t.Errorf("prompt label missing from output %q", out.String())
	}
}

func TestAskInt_NotAnInteger(t *testing.T) {
	for _, input := range []string{"abc\n", "4.5\n", "1 2\n", "\n"} {
		p, _ := testPrompter(input)
		_, err := p.askInt("Weight", "blend weight")
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("input %q: got err %v, want ParseError", input, err)
			continue
		}
		if parseErr.Field != "blend weight" {
			t.Errorf("input %q: field %q, want %q", input, parseErr.Field, "blend weight")
		}
	}
}

func TestAskInts(t *testing.T) {
	p, _ := testPrompter("255 0 255\n")
	got, err := p.askInts("Color", "transparency color", 3)
	if err != nil {
		t.Fatalf("askInts failed: %v", err)
	}
	if got[0] != 255 || got[1] != 0 || got[2] != 255 {
		t.Errorf("got %v, want [255 0 255]", got)
	}
}

func TestAskInts_WrongShape(t *testing.T) {
	for _, input := range []string{"1 2\n", "1 2 3 4\n", "1 two 3\n", "\n"} {
		p, _ := testPrompter(input)
		if _, err := p.askInts("Color", "transparency color", 3); err == nil {
			t.Errorf("input %q: expected error", input)
		}
	}
}

func TestReadPath(t *testing.T) {
	p, _ := testPrompter("images/base.png\n")
	got, err := p.readPath("Base image path", "base image path")
	if err != nil {
		t.Fatalf("readPath failed: %v", err)
	}
	if got != "images/base.png" {
		t.Errorf("got %q, want %q", got, "images/base.png")
	}

	p, _ = testPrompter("\n")
	if _, err := p.readPath("Base image path", "base image path"); err == nil {
		t.Error("empty path should fail")
	}
}

func TestPrompter_EndOfInput(t *testing.T) {
	// No retry loop: running out of answers mid-sequence is fatal.
	p, _ := testPrompter("first\n")
	if _, err := p.readLine("One", "first"); err != nil {
		t.Fatalf("first readLine failed: %v", err)
	}
	_, err := p.readLine("Two", "second")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got err %v, want ParseError at end of input", err)
	}
}

func TestReadColorKey(t *testing.T) {
	p, _ := testPrompter("10 20 30\n")
	r, g, b, err := p.ReadColorKey()
	if err != nil {
		t.Fatalf("ReadColorKey failed: %v", err)
	}
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("got (%d,%d,%d), want (10,20,30)", r, g, b)
	}
}
