package mdbook

import "testing"

func TestCompatible(t *testing.T) {
	cases := []struct {
		host string
		want bool
	}{
		{"0.4.40", true},
		{"0.4.44", true},
		{"0.4.40+build.7", true},
		{"v0.4.41", true},
		{"0.4.39", false},
		{"0.4.40-rc.1", false},
		{"0.4.41-rc.1", false},
		{"0.4", false},
		{"0.5.1", false},
		{"0.3.7", false},
		{"1.0.0", false},
		{"garbage", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := Compatible(tc.host); got != tc.want {
			t.Errorf("Compatible(%q) = %v, want %v", tc.host, got, tc.want)
		}
	}
}

func TestNormalizeVersion(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0.4.40", "0.4.40"},
		{"v0.4.40", "0.4.40"},
		{" 0.4.40 ", "0.4.40"},
		{"0.4.40-rc.1", "0.4.40"},
		{"0.4.40+build", "0.4.40"},
		{"nonsense", ""},
	}
	for _, tc := range cases {
		if got := normalizeVersion(tc.in); got != tc.want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
