package platform

import (
	"context"
	"runtime"
	"testing"
)

func TestDetect(t *testing.T) {
	detector := NewDetector()

	info, err := detector.Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if info.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", info.OS, runtime.GOOS)
	}
	if info.ArchRaw != runtime.GOARCH {
		t.Errorf("ArchRaw = %q, want %q", info.ArchRaw, runtime.GOARCH)
	}
	if info.Arch != normalizeArch(runtime.GOARCH) {
		t.Errorf("Arch = %q, want %q", info.Arch, normalizeArch(runtime.GOARCH))
	}
}

func TestGetDistro(t *testing.T) {
	tests := []struct {
		name    string
		info    Info
		wantNil bool
	}{
		{
			name:    "linux_with_distro",
			info:    Info{OS: "linux", Platform: "ubuntu", Family: FamilyDebian, Version: "22.04"},
			wantNil: false,
		},
		{
			name:    "linux_without_distro",
			info:    Info{OS: "linux"},
			wantNil: true,
		},
		{
			name:    "darwin",
			info:    Info{OS: "darwin", Platform: "ignored"},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distro := tt.info.GetDistro()
			if tt.wantNil {
				if distro != nil {
					t.Errorf("expected nil distro, got %+v", distro)
				}
				return
			}
			if distro == nil {
				t.Fatal("expected distro, got nil")
			}
			if distro.ID != tt.info.Platform || distro.Family != tt.info.Family {
				t.Errorf("distro mismatch: %+v", distro)
			}
		})
	}
}
