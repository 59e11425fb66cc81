package wmf

import "testing"

func TestFitURL(t *testing.T) {
	cases := []struct {
		url   string
		limit int
		want  string
	}{
		{"http://x", 20, "http://x"},
		{"https://example.com/path", 17, "example.com/path"},
		{"https://example.com/very/long/path", 10, "https://e…"},
		{"no-scheme-but-far-too-long", 8, "no-sche…"},
	}
	for _, tc := range cases {
		if got := fitURL(tc.url, tc.limit); got != tc.want {
			t.Fatalf("fitURL(%q, %d) = %q, want %q", tc.url, tc.limit, got, tc.want)
		}
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	if got := truncateWithEllipsis("abcdef", 4); got != "abc…" {
		t.Fatalf("got %q", got)
	}
	if got := truncateWithEllipsis("abc", 10); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := truncateWithEllipsis("abc", 1); got != "…" {
		t.Fatalf("got %q", got)
	}
	if got := truncateWithEllipsis("abc", 0); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestDetectOSC8SupportHonorsOverride(t *testing.T) {
	t.Setenv("OSC8", "0")
	t.Setenv("WT_SESSION", "1")
	if DetectOSC8Support() {
		t.Fatalf("OSC8=0 should force hyperlinks off")
	}
}

func TestDetectOSC8SupportVTE(t *testing.T) {
	for _, env := range []string{"OSC8", "DOMTERM", "WT_SESSION", "TERM_PROGRAM", "TERM"} {
		t.Setenv(env, "")
	}
	t.Setenv("VTE_VERSION", "6003")
	if !DetectOSC8Support() {
		t.Fatalf("VTE_VERSION 6003 should support hyperlinks")
	}
	t.Setenv("VTE_VERSION", "4000")
	if DetectOSC8Support() {
		t.Fatalf("VTE_VERSION 4000 should not support hyperlinks")
	}
}
