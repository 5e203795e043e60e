package service_test

import (
	"testing"
	"trivia_quiz_backend/internal/service"
)

func countOccurrences(options []string, value string) int {
	n := 0
	for _, opt := range options {
		if opt == value {
			n++
		}
	}
	return n
}

func TestSampleOptions(t *testing.T) {
	t.Run("LargePool", func(t *testing.T) {
		pool := []string{"London", "Berlin", "Madrid", "Rome", "Vienna"}

		for i := 0; i < 50; i++ {
			options := service.SampleOptions("Paris", pool)

			if len(options) != 4 {
				t.Fatalf("expected 4 options, got %d", len(options))
			}
			if countOccurrences(options, "Paris") != 1 {
				t.Fatalf("expected the correct answer exactly once, got options %v", options)
			}
		}
	})

	t.Run("ExactPool", func(t *testing.T) {
		options := service.SampleOptions("Paris", []string{"London", "Berlin", "Madrid"})

		if len(options) != 4 {
			t.Fatalf("expected 4 options, got %d", len(options))
		}
		for _, want := range []string{"Paris", "London", "Berlin", "Madrid"} {
			if countOccurrences(options, want) != 1 {
				t.Errorf("expected %q exactly once, got %v", want, options)
			}
		}
	})

	t.Run("SmallPoolRepeats", func(t *testing.T) {
		options := service.SampleOptions("Paris", []string{"London"})

		if len(options) != 4 {
			t.Fatalf("expected 4 options, got %d", len(options))
		}
		if countOccurrences(options, "Paris") != 1 {
			t.Fatalf("expected the correct answer exactly once, got %v", options)
		}
		if countOccurrences(options, "London") != 3 {
			t.Errorf("expected the only wrong answer to fill the remaining slots, got %v", options)
		}
	})

	t.Run("EmptyPoolUsesFiller", func(t *testing.T) {
		options := service.SampleOptions("Paris", nil)

		if len(options) != 4 {
			t.Fatalf("expected 4 options, got %d", len(options))
		}
		if countOccurrences(options, "Paris") != 1 {
			t.Fatalf("expected the correct answer exactly once, got %v", options)
		}
		filler := 0
		for _, opt := range options {
			if opt != "Paris" {
				filler++
				if opt == "" {
					t.Errorf("filler option must not be empty")
				}
			}
		}
		if filler != 3 {
			t.Errorf("expected 3 filler options, got %d", filler)
		}
	})

	t.Run("InputUntouched", func(t *testing.T) {
		pool := []string{"London", "Berlin", "Madrid", "Rome"}
		service.SampleOptions("Paris", pool)

		want := map[string]bool{"London": true, "Berlin": true, "Madrid": true, "Rome": true}
		for _, p := range pool {
			if !want[p] {
				t.Fatalf("input pool was modified: %v", pool)
			}
		}
	})
}
