package version

import "testing"

func TestString(t *testing.T) {
	defer func(v, c, b string) { Version, GitCommit, BuildTime = v, c, b }(Version, GitCommit, BuildTime)

	Version, GitCommit, BuildTime = "1.2.3", "unknown", "unknown"
	if got, want := String(), "v1.2.3"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	GitCommit, BuildTime = "abc123", "2025-01-02"
	if got, want := String(), "v1.2.3 (commit abc123, built 2025-01-02)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
