package issue

import "testing"

func TestFingerprint(t *testing.T) {
	// SHA-1("hello") = aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d
	if got := Fingerprint("hello"); got != "aaf4c61d" {
		t.Errorf("expected aaf4c61d, got %q", got)
	}

	if len(Fingerprint("anything at all")) != 8 {
		t.Error("fingerprint must be 8 chars")
	}

	if Fingerprint("a") == Fingerprint("b") {
		t.Error("distinct messages collided")
	}

	if Fingerprint("stable") != Fingerprint("stable") {
		t.Error("fingerprint is not deterministic")
	}
}
