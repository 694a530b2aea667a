package utils

import "testing"

func TestIDSetNoDuplicates(t *testing.T) {
	s := NewIDSet()

	added := s.Add("dQw4w9WgXcQ")
	if !added {
		t.Error("first Add should return true")
	}

	added = s.Add("dQw4w9WgXcQ")
	if added {
		t.Error("second Add of same ID should return false")
	}

	if s.Size() != 1 {
		t.Errorf("size: got %d, want 1", s.Size())
	}
}

func TestIDSetContains(t *testing.T) {
	s := NewIDSet()
	s.Add("abc123")

	if !s.Contains("abc123") {
		t.Error("Contains should return true for an added ID")
	}
	if s.Contains("xyz789") {
		t.Error("Contains should return false for an unknown ID")
	}
}
