package app

import (
	"errors"
	"reflect"
	"testing"
)

func fakeLookPath(available ...string) func(string) (string, error) {
	set := make(map[string]bool, len(available))
	for _, name := range available {
		set[name] = true
	}
	return func(name string) (string, error) {
		if set[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
}

func TestDetectClipboardInternal(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		available []string
		want      []string
		wantOK    bool
	}{
		{"mac pbcopy", "darwin", []string{"pbcopy"}, []string{"/usr/bin/pbcopy"}, true},
		{"wayland preferred over x11", "linux", []string{"xclip", "wl-copy"}, []string{"/usr/bin/wl-copy"}, true},
		{"xclip targets clipboard", "linux", []string{"xclip"}, []string{"/usr/bin/xclip", "-selection", "clipboard"}, true},
		{"xsel reads stdin", "linux", []string{"xsel"}, []string{"/usr/bin/xsel", "--clipboard", "--input"}, true},
		{"wsl clip.exe", "linux", []string{"clip.exe"}, []string{"/usr/bin/clip.exe"}, true},
		{"windows powershell", "windows", []string{"pwsh"}, []string{"/usr/bin/pwsh", "-NoLogo", "-NoProfile", "-Command", "$input | Set-Clipboard"}, true},
		{"nothing available", "linux", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := detectClipboardInternal(tt.goos, fakeLookPath(tt.available...))
			if ok != tt.wantOK || !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v (%v), want %v (%v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
