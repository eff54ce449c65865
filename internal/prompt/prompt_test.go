package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestChoose(t *testing.T) {
	options := []string{"alpha.tar.gz", "beta.zip", "gamma.gz"}

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{"first option", "1\n", 0, nil},
		{"last option", "3\n", 2, nil},
		{"empty defaults to first", "\n", 0, nil},
		{"whitespace only defaults to first", "   \n", 0, nil},
		{"eof without newline", "2", 1, nil},
		{"zero is out of range", "0\n", 0, ErrInvalidSelection},
		{"beyond range", "4\n", 0, ErrInvalidSelection},
		{"negative", "-1\n", 0, ErrInvalidSelection},
		{"not a number", "beta\n", 0, ErrInvalidSelection},
		{"trailing garbage", "2x\n", 0, ErrInvalidSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Choose("Pick an asset", options)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Choose() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Choose() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Choose() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestChoose_MenuRendering(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("2\n"), &out)

	if _, err := p.Choose("Pick an asset", []string{"first", "second"}); err != nil {
		t.Fatalf("Choose() error = %v", err)
	}

	rendered := out.String()
	for _, want := range []string{
		"Pick an asset:",
		"  1) first",
		"  2) second",
		"Selection [1]: ",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("menu output missing %q:\n%s", want, rendered)
		}
	}
}

func TestChoose_NoCandidates(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("1\n"), &out)

	if _, err := p.Choose("Pick an asset", nil); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("Choose() error = %v, want ErrNoCandidates", err)
	}
	if out.Len() != 0 {
		t.Errorf("no menu should be printed for an empty option list, got %q", out.String())
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"yes", "y\n", false, true},
		{"yes word", "yes\n", false, true},
		{"uppercase yes", "Y\n", false, true},
		{"no", "n\n", true, false},
		{"empty takes default true", "\n", true, true},
		{"empty takes default false", "\n", false, false},
		{"garbage is no", "maybe\n", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Confirm("Proceed?", tt.def)
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
		})
	}
}
