package models

import "testing"

func TestSelectionDoubleToggleIsIdentity(t *testing.T) {
	cases := [][]string{
		nil,
		{"Lógica"},
		{"Conjuntos", "Lógica"},
	}
	for _, initial := range cases {
		for _, topic := range []string{"Lógica", "Funciones"} {
			s := NewSelection(initial...)
			before := s.Mirror()
			beforeLen := s.Len()

			s.Toggle(topic)
			s.Toggle(topic)

			if s.Mirror() != before || s.Len() != beforeLen {
				t.Fatalf("initial=%v topic=%q: mirror %q -> %q", initial, topic, before, s.Mirror())
			}
		}
	}
}

func TestSelectionMirror(t *testing.T) {
	var s Selection
	if s.Mirror() != "" {
		t.Fatalf("empty selection mirror = %q", s.Mirror())
	}
	if !s.Toggle("Lógica") || !s.Toggle("Conjuntos") {
		t.Fatal("toggle on absent topic should select it")
	}
	if got := s.Mirror(); got != "Conjuntos, Lógica" {
		t.Fatalf("mirror = %q", got)
	}
	if s.Toggle("Lógica") {
		t.Fatal("toggle on present topic should deselect it")
	}
	if !s.Contains("Conjuntos") || s.Contains("Lógica") {
		t.Fatalf("unexpected membership: %v", s.Sorted())
	}
}
