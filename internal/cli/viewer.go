package cli

import (
	"os/exec"
	"runtime"
)

// viewerCommand returns the command that opens path with the system viewer.
func viewerCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	default:
		return "xdg-open", []string{path}
	}
}

// openInViewer starts the system viewer and does not wait for it to exit.
func openInViewer(path string) error {
	name, args := viewerCommand(runtime.GOOS, path)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}
