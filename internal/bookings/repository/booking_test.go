package repository

import (
	"context"
	"testing"
	"time"

	"tably/pkg/model"
)

func dt(t *testing.T, s string) model.LocalDateTime {
	t.Helper()
	parsed, err := model.ParseLocalDateTime(s)
	if err != nil {
		t.Fatalf("ParseLocalDateTime(%q): %v", s, err)
	}
	return parsed
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(model.LayoutDate, s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return parsed
}

func TestListByDate_InsertionOrder(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	repo.Add(ctx, model.NewBooking("Alice", 4, dt(t, "2024-05-01T12:00:00"), 2*time.Hour))
	repo.Add(ctx, model.NewBooking("Bob", 2, dt(t, "2024-05-02T10:00:00"), 2*time.Hour))
	repo.Add(ctx, model.NewBooking("Dina", 2, dt(t, "2024-05-01T18:59:00"), 2*time.Hour))

	got := repo.ListByDate(ctx, date(t, "2024-05-01"))
	if len(got) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(got))
	}
	if got[0].CustomerName != "Alice" || got[1].CustomerName != "Dina" {
		t.Errorf("expected insertion order [Alice, Dina], got [%s, %s]", got[0].CustomerName, got[1].CustomerName)
	}
}

func TestListByDate_EmptyResult(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	got := repo.ListByDate(ctx, date(t, "2024-05-01"))
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no bookings, got %d", len(got))
	}
}

func TestOverlapping_HalfOpenSemantics(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	// [09:00, 11:00) and [11:00, 13:00)
	repo.Add(ctx, model.NewBooking("early", 2, dt(t, "2024-05-01T09:00:00"), 2*time.Hour))
	repo.Add(ctx, model.NewBooking("late", 2, dt(t, "2024-05-01T11:00:00"), 2*time.Hour))

	tests := []struct {
		name  string
		start string
		want  []string
	}{
		{"touching is not overlap", "2024-05-01T07:00:00", nil},
		{"covers first only", "2024-05-01T08:00:00", []string{"early"}},
		{"one minute into first", "2024-05-01T10:59:00", []string{"early", "late"}},
		{"aligned with second", "2024-05-01T11:00:00", []string{"late"}},
		{"after both", "2024-05-01T13:00:00", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := dt(t, tt.start)
			got := repo.Overlapping(ctx, start, start.AddDuration(2*time.Hour))
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d bookings, got %d", len(tt.want), len(got))
			}
			for i, name := range tt.want {
				if got[i].CustomerName != name {
					t.Errorf("booking %d = %s, want %s", i, got[i].CustomerName, name)
				}
			}
		})
	}
}

func TestCount(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	if got := repo.Count(ctx); got != 0 {
		t.Errorf("Count = %d, want 0", got)
	}
	repo.Add(ctx, model.NewBooking("Alice", 4, dt(t, "2024-05-01T12:00:00"), 2*time.Hour))
	if got := repo.Count(ctx); got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}
}
