package docsync

import (
	"errors"
	"testing"
)

func TestValidateVersionAccepts(t *testing.T) {
	for _, v := range []string{"4.2.0", "0.0.1", "10.20.30", "5.0.1"} {
		if err := ValidateVersion(v); err != nil {
			t.Fatalf("ValidateVersion(%q): %v", v, err)
		}
	}
}

func TestValidateVersionRejects(t *testing.T) {
	for _, v := range []string{"4.2", "v4.2.0", "4.2.0-beta", "", "4.2.0.1", "4..0", "four.two.zero"} {
		err := ValidateVersion(v)
		if !errors.Is(err, ErrInvalidVersion) {
			t.Fatalf("ValidateVersion(%q) = %v, want ErrInvalidVersion", v, err)
		}
	}
}
