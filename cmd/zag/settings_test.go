package main

import (
	"os"
	"testing"

	"zag/internal/project"
)

func TestUseColorForcedModes(t *testing.T) {
	s := &settings{color: project.ColorAlways}
	if !s.useColor(os.Stderr) {
		t.Error("always mode must enable color without a terminal")
	}
	s.color = project.ColorNever
	if s.useColor(os.Stderr) {
		t.Error("never mode must disable color even on a terminal")
	}
}
