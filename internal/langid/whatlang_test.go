// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package langid

import (
	"errors"
	"testing"
)

func TestWhatlang_SpanishAndEnglish(t *testing.T) {
	w := NewWhatlang()

	code, err := w.Identify("El ministerio de educación presentó los resultados de la evaluación nacional a todas las familias de la región.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "es" {
		t.Errorf("got %q, want %q", code, "es")
	}

	code, err = w.Identify("The ministry of education presented the national evaluation results to every family in the region yesterday.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "en" {
		t.Errorf("got %q, want %q", code, "en")
	}
}

func TestWhatlang_DegenerateInput(t *testing.T) {
	w := NewWhatlang()

	for _, input := range []string{"", "   ", "\t\n"} {
		if _, err := w.Identify(input); !errors.Is(err, ErrDetectionFailed) {
			t.Errorf("Identify(%q): got err %v, want ErrDetectionFailed", input, err)
		}
	}
}

func TestWhatlang_Deterministic(t *testing.T) {
	w := NewWhatlang()
	text := "Yaunchuk nugka muunta chichame augmatbau aidau batsamajakú ainawai."

	first, err := w.Identify(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		got, err := w.Identify(text)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != first {
			t.Errorf("detection not stable: %q then %q", first, got)
		}
	}
}
