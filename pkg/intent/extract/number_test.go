package extract

import "testing"

func TestNumbersDecimal(t *testing.T) {
	entities := Numbers("price is 12.50 dollars")

	if len(entities) != 1 {
		t.Fatalf("Expected 1 number, got %v", entities)
	}
	e := entities[0]
	if e.Type != Number || e.Value != "12.50" || e.Start != 9 || e.End != 14 {
		t.Errorf("Unexpected entity: %+v", e)
	}
}

func TestNumbersSentencePeriod(t *testing.T) {
	if entities := Numbers("end of sentence. Next"); len(entities) != 0 {
		t.Errorf("A sentence-final period is not a number, got %v", entities)
	}
}

func TestNumbersMultiple(t *testing.T) {
	entities := Numbers("3 apples cost 4.50")
	if len(entities) != 2 {
		t.Fatalf("Expected 2 numbers, got %v", entities)
	}
	if entities[0].Value != "3" || entities[1].Value != "4.50" {
		t.Errorf("Unexpected values: %v", entities)
	}
}

func TestNumbersSecondDotStops(t *testing.T) {
	entities := Numbers("version 3.14.15 released")
	if len(entities) != 2 || entities[0].Value != "3.14" || entities[1].Value != "15" {
		t.Errorf("Only one decimal point per number, got %v", entities)
	}
}

func TestNumbersLeadingDot(t *testing.T) {
	// A dot with no digit before it never joins the candidate.
	entities := Numbers("about .5 percent")
	if len(entities) != 1 || entities[0].Value != "5" || entities[0].Start != 7 {
		t.Errorf("Expected bare 5, got %v", entities)
	}
}

func TestNumbersLeadingZerosPreserved(t *testing.T) {
	// Canonicalization is the normalize stage's job, not the extractor's.
	entities := Numbers("code 007 here")
	if len(entities) != 1 || entities[0].Value != "007" {
		t.Errorf("Extractor must report the raw substring, got %v", entities)
	}
}
