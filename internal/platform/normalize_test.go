package platform

import "testing"

func TestNormalizeArch(t *testing.T) {
	tests := []struct {
		arch string
		want string
	}{
		{"amd64", "amd64"},
		{"x86_64", "amd64"},
		{"x64", "amd64"},
		{"arm64", "arm64"},
		{"aarch64", "arm64"},
		{"riscv64", "riscv64"}, // unrecognized values pass through
		{"386", "386"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.arch, func(t *testing.T) {
			if got := normalizeArch(tt.arch); got != tt.want {
				t.Errorf("normalizeArch(%q) = %q, want %q", tt.arch, got, tt.want)
			}
		})
	}
}

func TestNormalizePlatform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ubuntu", "ubuntu"},
		{"  Arch \n", "arch"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizePlatform(tt.in); got != tt.want {
			t.Errorf("normalizePlatform(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMapFamily(t *testing.T) {
	tests := []struct {
		family string
		want   string
	}{
		{"debian", FamilyDebian},
		{"Ubuntu", FamilyDebian},
		{"rhel", FamilyRHEL},
		{"centos", FamilyRHEL},
		{"fedora", FamilyFedora},
		{"manjaro", FamilyArch},
		{"alpine", FamilyAlpine},
		{"slackware", FamilyUnknown},
		{"", FamilyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			if got := mapFamily(tt.family); got != tt.want {
				t.Errorf("mapFamily(%q) = %q, want %q", tt.family, got, tt.want)
			}
		})
	}
}
