package identity

import (
	"strings"
	"testing"
)

func TestStorageKey(t *testing.T) {
	tests := []struct {
		name string
		id   Identity
		want string
	}{
		{"named user", ForUser("s.chen"), "physiz_student_s.chen"},
		{"anonymous falls back to legacy key", Anonymous(), "physiz_confidence"},
		{"blank user is anonymous", ForUser("   "), "physiz_confidence"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.StorageKey(); got != tt.want {
				t.Errorf("StorageKey = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewGuest(t *testing.T) {
	a, b := NewGuest(), NewGuest()
	if !a.IsGuest() {
		t.Error("guest identity not marked as guest")
	}
	if !strings.HasPrefix(a.User, "guest-") {
		t.Errorf("guest user = %q", a.User)
	}
	if a.User == b.User {
		t.Error("two guests share an id")
	}
	if !strings.HasPrefix(a.StorageKey(), "physiz_student_guest-") {
		t.Errorf("guest key = %q", a.StorageKey())
	}
}

func TestForUserMethod(t *testing.T) {
	if m := ForUser("x").Method; m != MethodSchool {
		t.Errorf("Method = %q, want %q", m, MethodSchool)
	}
	if m := Anonymous().Method; m != MethodAnonymous {
		t.Errorf("Method = %q, want %q", m, MethodAnonymous)
	}
}
