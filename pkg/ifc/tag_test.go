package ifc

import (
	"slices"
	"testing"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"24", "#24"},
		{"#24", "#24"},
		{"  24\n", "#24"},
		{" #7 ", "#7"},
		{"abc", "#abc"},
		{"", "#"},
	}
	for _, tt := range tests {
		if got := NormalizeTag(tt.input); got != tt.want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsTag(t *testing.T) {
	valid := []string{"#1", "#24", "#000"}
	invalid := []string{"", "#", "24", "#2a", "# 2", "##2"}
	for _, s := range valid {
		if !IsTag(s) {
			t.Errorf("IsTag(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsTag(s) {
			t.Errorf("IsTag(%q) = true, want false", s)
		}
	}
}

func TestCompareTags(t *testing.T) {
	tags := []string{"#10", "bogus", "#2", "#1", "#100"}
	slices.SortFunc(tags, CompareTags)
	want := []string{"#1", "#2", "#10", "#100", "bogus"}
	if !slices.Equal(tags, want) {
		t.Errorf("sorted = %v, want %v", tags, want)
	}
}

func TestHasIFCExtension(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"model.ifc", true},
		{"/tmp/MODEL.IFC", true},
		{"model.Ifc", true},
		{"model.ifcxml", false},
		{"model.ifc.bak", false},
		{"model", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := HasIFCExtension(tt.path); got != tt.want {
			t.Errorf("HasIFCExtension(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
