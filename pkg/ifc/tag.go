package ifc

import (
	"cmp"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Extension is the file extension of IFC STEP files.
const Extension = ".ifc"

var tagRE = regexp.MustCompile(`^#\d+$`)

// IsTag reports whether s has the form "#<digits>".
func IsTag(s string) bool { return tagRE.MatchString(s) }

// NormalizeTag turns user input such as "24", "#24" or " 24 " into a tag.
// Input that is not a number is returned with a "#" prefix and will simply
// not match any record.
func NormalizeTag(input string) string {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "#")
	return "#" + s
}

// TagNumber returns the numeric part of a tag.
func TagNumber(tag string) (int, bool) {
	if !IsTag(tag) {
		return 0, false
	}
	n, err := strconv.Atoi(tag[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// CompareTags orders tags numerically. Tags that are not well formed sort
// after well formed ones, lexically.
func CompareTags(a, b string) int {
	na, oka := TagNumber(a)
	nb, okb := TagNumber(b)
	switch {
	case oka && okb:
		return cmp.Compare(na, nb)
	case oka:
		return -1
	case okb:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// HasIFCExtension reports whether path ends in ".ifc", ignoring case.
func HasIFCExtension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}
