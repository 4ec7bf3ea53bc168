package service_test

import (
	"testing"
	"time"

	"github.com/j1me/burntrack/internal/service"
)

func TestParseDayAcceptsISODates(t *testing.T) {
	t.Parallel()
	day, err := service.ParseDay("2026-08-27")
	if err != nil {
		t.Fatalf("parse day: %v", err)
	}
	if service.FormatDay(day) != "2026-08-27" {
		t.Fatalf("expected round-trip, got %s", service.FormatDay(day))
	}
}

func TestParseDayRejectsOtherLayouts(t *testing.T) {
	t.Parallel()
	for _, bad := range []string{"27-08-2026", "2026/08/27", "Aug 27 2026", "2026-13-01"} {
		if _, err := service.ParseDay(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestIsFutureDay(t *testing.T) {
	t.Parallel()
	today := service.Today()
	if future, err := service.IsFutureDay(today); err != nil || future {
		t.Fatalf("today must not be future (future=%v err=%v)", future, err)
	}
	yesterday := service.FormatDay(time.Now().AddDate(0, 0, -1))
	if future, err := service.IsFutureDay(yesterday); err != nil || future {
		t.Fatalf("yesterday must not be future (future=%v err=%v)", future, err)
	}
	tomorrow := service.FormatDay(time.Now().AddDate(0, 0, 1))
	if future, err := service.IsFutureDay(tomorrow); err != nil || !future {
		t.Fatalf("tomorrow must be future (future=%v err=%v)", future, err)
	}
}
