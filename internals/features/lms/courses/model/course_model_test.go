package model

import "testing"

func TestFindLessonIndex(t *testing.T) {
	lessons := []LessonModel{
		{ID: "a", Title: "Intro", Number: "1"},
		{ID: "b", Title: "Processes", Number: "2"},
		{ID: "c", Title: "Scheduling", Number: "3"},
	}

	if idx := FindLessonIndex(lessons, "b"); idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if idx := FindLessonIndex(lessons, "missing"); idx != -1 {
		t.Fatalf("expected -1 for unknown id, got %d", idx)
	}
	if idx := FindLessonIndex(nil, "a"); idx != -1 {
		t.Fatalf("expected -1 for empty list, got %d", idx)
	}
}

func TestNewLessonIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewLessonID()
		if id == "" || seen[id] {
			t.Fatalf("duplicate or empty lesson id %q", id)
		}
		seen[id] = true
	}
}
