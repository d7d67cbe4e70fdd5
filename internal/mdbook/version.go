package mdbook

import (
	"strconv"
	"strings"
)

// Version is the mdBook release this preprocessor tracks.
const Version = "0.4.40"

// Compatible reports whether a host mdbook_version can drive this
// preprocessor: same major and minor as Version and at least its patch
// level. A pre-release host never satisfies a release requirement, and
// unparseable versions count as incompatible.
func Compatible(host string) bool {
	if preRelease(host) {
		return false
	}
	h, ok := parseVersionParts(normalizeVersion(host))
	if !ok {
		return false
	}
	t, _ := parseVersionParts(Version)
	for len(h) < len(t) {
		h = append(h, 0)
	}
	return h[0] == t[0] && h[1] == t[1] && h[2] >= t[2]
}

// preRelease reports a version carrying a pre-release tag, like
// 0.4.40-rc.1. Build metadata after a + has no ordering weight and is not
// a pre-release.
func preRelease(v string) bool {
	v = strings.TrimSpace(v)
	v, _, _ = strings.Cut(v, "+")
	return strings.Contains(v, "-")
}

// normalizeVersion strips a v prefix and any pre-release or build suffix.
func normalizeVersion(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexFunc(v, func(r rune) bool { return !(r >= '0' && r <= '9') && r != '.' }); i >= 0 {
		v = v[:i]
	}
	return v
}

func parseVersionParts(v string) ([]int, bool) {
	if v == "" {
		return nil, false
	}
	pieces := strings.Split(v, ".")
	parts := make([]int, len(pieces))
	for i, piece := range pieces {
		if piece == "" {
			return nil, false
		}
		n, err := strconv.Atoi(piece)
		if err != nil {
			return nil, false
		}
		parts[i] = n
	}
	return parts, true
}
