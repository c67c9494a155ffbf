package expiry

import (
	"errors"
	"testing"
	"time"
)

func TestFormatDateZeroPadded(t *testing.T) {
	d := time.Date(2025, 3, 7, 15, 4, 5, 0, time.Local)
	if got := FormatDate(d); got != "2025-03-07" {
		t.Errorf("expected 2025-03-07, got %s", got)
	}
}

func TestResolveExplicitDate(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)

	got, err := Resolve("2025-03-01", "", now)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if FormatDate(got) != "2025-03-01" {
		t.Errorf("expected 2025-03-01, got %s", FormatDate(got))
	}
}

func TestResolveExplicitDateWinsOverDays(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)

	got, err := Resolve("2025-03-01", "5", now)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if FormatDate(got) != "2025-03-01" {
		t.Errorf("explicit date should win over days, got %s", FormatDate(got))
	}
}

func TestResolveDaysToStore(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)

	got, err := Resolve("", "5", now)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if FormatDate(got) != "2025-06-15" {
		t.Errorf("expected 2025-06-15, got %s", FormatDate(got))
	}
}

func TestResolveDaysAcrossMonthEnd(t *testing.T) {
	now := time.Date(2025, 1, 30, 12, 0, 0, 0, time.Local)

	got, err := Resolve("", "3", now)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if FormatDate(got) != "2025-02-02" {
		t.Errorf("expected 2025-02-02, got %s", FormatDate(got))
	}
}

func TestResolveInvalidDays(t *testing.T) {
	now := time.Now()

	for _, days := range []string{"0", "-1", "abc"} {
		_, err := Resolve("", days, now)
		if !errors.Is(err, ErrInvalidDays) {
			t.Errorf("days=%q: expected ErrInvalidDays, got %v", days, err)
		}
	}
}

func TestResolveMissingInput(t *testing.T) {
	_, err := Resolve("", "", time.Now())
	if !errors.Is(err, ErrMissingInput) {
		t.Errorf("expected ErrMissingInput, got %v", err)
	}
}

func TestResolveUnparseableExplicitDate(t *testing.T) {
	_, err := Resolve("soon", "", time.Now())
	if err == nil {
		t.Error("expected error for unparseable explicit date")
	}
	if errors.Is(err, ErrInvalidDays) || errors.Is(err, ErrMissingInput) {
		t.Errorf("expected a parse error, got %v", err)
	}
}
