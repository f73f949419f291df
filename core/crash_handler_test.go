package core

import "testing"

type countingScreen struct{ fini int }

func (s *countingScreen) Fini() { s.fini++ }

func TestHandleCrashNilIsNoop(t *testing.T) {
	s := &countingScreen{}
	RegisterScreen(s)
	defer RegisterScreen(nil)

	HandleCrash(nil)
	if s.fini != 0 {
		t.Errorf("Fini called %d times for a nil panic value", s.fini)
	}
}

func TestGoRunsFunction(t *testing.T) {
	done := make(chan int, 1)
	Go(func() { done <- 42 })
	if v := <-done; v != 42 {
		t.Errorf("got %d, want 42", v)
	}
}
