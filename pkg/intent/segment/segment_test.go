package segment

import (
	"reflect"
	"testing"
)

func TestSplitBasic(t *testing.T) {
	got := Split("Hello world. How are you? Fine!")
	want := []string{"Hello world.", "How are you?", "Fine!"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSplitNoTerminator(t *testing.T) {
	got := Split("no terminator here")
	if len(got) != 1 || got[0] != "no terminator here" {
		t.Errorf("Unterminated text is one sentence, got %v", got)
	}
}

func TestSplitEmpty(t *testing.T) {
	if got := Split(""); len(got) != 0 {
		t.Errorf("Empty text yields no sentences, got %v", got)
	}
	if got := Split("   \n "); len(got) != 0 {
		t.Errorf("Whitespace-only text yields no sentences, got %v", got)
	}
}

func TestSplitDecimalNotBoundary(t *testing.T) {
	got := Split("It costs 12.50 today.")
	if len(got) != 1 || got[0] != "It costs 12.50 today." {
		t.Errorf("A decimal point is not a boundary, got %v", got)
	}
}

func TestSplitDomainNotBoundary(t *testing.T) {
	got := Split("Visit example.com now.")
	if len(got) != 1 {
		t.Errorf("A dot inside a domain is not a boundary, got %v", got)
	}
}

func TestSplitTerminatorRun(t *testing.T) {
	got := Split("What?! Really...")
	want := []string{"What?!", "Really..."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
