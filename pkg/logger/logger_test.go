package logger

import "testing"

func TestSanitizeKVsRedactsSensitiveKeys(t *testing.T) {
	in := []interface{}{"path", "/login", "password", "hunter2", "Backend_Cookie", "abc", "dangling"}
	out := sanitizeKVs(in)

	want := []interface{}{"path", "/login", "password", "[REDACTED]", "Backend_Cookie", "[REDACTED]", "dangling"}
	if len(out) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(out), len(want), out)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}
