package rate

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantYear  int
		wantMonth time.Month
		wantDay   int
		wantZero  bool
	}{
		{
			name:      "single digit day",
			text:      "1 January 2024",
			wantYear:  2024,
			wantMonth: time.January,
			wantDay:   1,
		},
		{
			name:      "double digit day",
			text:      "31 March 2024",
			wantYear:  2024,
			wantMonth: time.March,
			wantDay:   31,
		},
		{
			name:      "mid-month date",
			text:      "15 February 2024",
			wantYear:  2024,
			wantMonth: time.February,
			wantDay:   15,
		},
		{
			name:      "surrounding whitespace",
			text:      "  30 June 2024 ",
			wantYear:  2024,
			wantMonth: time.June,
			wantDay:   30,
		},
		{
			name:     "abbreviated month rejected",
			text:     "1 Jan 2024",
			wantZero: true,
		},
		{
			name:     "unknown month name",
			text:     "1 Smarch 2024",
			wantZero: true,
		},
		{
			name:     "month before day",
			text:     "January 1 2024",
			wantZero: true,
		},
		{
			name:     "day out of range",
			text:     "32 January 2024",
			wantZero: true,
		},
		{
			name:     "empty string",
			text:     "",
			wantZero: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.text)

			if tt.wantZero {
				if !got.IsZero() {
					t.Errorf("ParseDate(%q) = %v, want zero time", tt.text, got)
				}
				return
			}

			if got.IsZero() {
				t.Fatalf("ParseDate(%q) returned zero time", tt.text)
			}
			if got.Year() != tt.wantYear || got.Month() != tt.wantMonth || got.Day() != tt.wantDay {
				t.Errorf("ParseDate(%q) = %v, want %d %v %d", tt.text, got, tt.wantDay, tt.wantMonth, tt.wantYear)
			}
		})
	}
}

func TestDateOf(t *testing.T) {
	in := time.Date(2024, time.February, 15, 13, 45, 30, 999, time.UTC)
	got := DateOf(in)

	want := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOf(%v) = %v, want %v", in, got, want)
	}
}

func TestPeriodContains(t *testing.T) {
	p := Period{
		FromDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"first day inclusive", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), true},
		{"last day inclusive", time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), true},
		{"middle of period", time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC), true},
		{"day before start", time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), false},
		{"day after end", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.day); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}
