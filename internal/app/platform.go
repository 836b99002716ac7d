package app

import (
	"os/exec"
	"runtime"
	"strings"
)

var commandBuilder = exec.Command

func detectClipboard() ([]string, bool) {
	return detectClipboardInternal(runtime.GOOS, exec.LookPath)
}

// detectClipboardInternal finds a command that copies its stdin to the
// system clipboard.
func detectClipboardInternal(goos string, lookPath func(string) (string, error)) ([]string, bool) {
	resolve := func(name string) (string, bool) {
		path, err := lookPath(name)
		return path, err == nil && path != ""
	}

	if strings.EqualFold(goos, "windows") {
		for _, candidate := range []string{"clip.exe", "clip"} {
			if path, ok := resolve(candidate); ok {
				return []string{path}, true
			}
		}
		for _, ps := range []string{"powershell", "powershell.exe", "pwsh"} {
			if path, ok := resolve(ps); ok {
				return []string{path, "-NoLogo", "-NoProfile", "-Command", "$input | Set-Clipboard"}, true
			}
		}
	}

	candidates := []struct {
		name string
		args []string
	}{
		{name: "pbcopy"},
		{name: "wl-copy"},
		{name: "xclip", args: []string{"-selection", "clipboard"}},
		{name: "xsel", args: []string{"--clipboard", "--input"}},
		{name: "clip.exe"}, // WSL
	}
	for _, candidate := range candidates {
		if path, ok := resolve(candidate.name); ok {
			return append([]string{path}, candidate.args...), true
		}
	}

	return nil, false
}
