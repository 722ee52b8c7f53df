package cli

import (
	"slices"
	"testing"
)

func TestViewerCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"linux", "xdg-open", []string{"g.png"}},
		{"freebsd", "xdg-open", []string{"g.png"}},
		{"darwin", "open", []string{"g.png"}},
		{"windows", "cmd", []string{"/c", "start", "", "g.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args := viewerCommand(tt.goos, "g.png")
			if name != tt.wantName || !slices.Equal(args, tt.wantArgs) {
				t.Errorf("viewerCommand(%s) = %s %v, want %s %v", tt.goos, name, args, tt.wantName, tt.wantArgs)
			}
		})
	}
}
