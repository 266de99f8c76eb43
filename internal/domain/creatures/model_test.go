package creatures

import (
	"testing"
	"time"
)

func TestDateOnly(t *testing.T) {
	in := time.Date(2020, 2, 27, 15, 30, 0, 0, time.UTC)
	if got, want := DateOnly(in), time.Date(2020, 2, 27, 0, 0, 0, 0, time.UTC); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if !DateOnly(time.Time{}).IsZero() {
		t.Fatal("zero must stay zero")
	}
}
