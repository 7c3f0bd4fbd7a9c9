package model

import (
	"testing"
	"time"
)

func TestValidType(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{TypeLost, true},
		{TypeFound, true},
		{"Lost", false},
		{"stolen", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidType(tt.value); got != tt.expected {
			t.Errorf("ValidType(%q) = %v, want %v", tt.value, got, tt.expected)
		}
	}
}

func TestValidStatus(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{StatusUnclaimed, true},
		{StatusClaimed, true},
		{"bogus", false},
		{"CLAIMED", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidStatus(tt.value); got != tt.expected {
			t.Errorf("ValidStatus(%q) = %v, want %v", tt.value, got, tt.expected)
		}
	}
}

func TestFormatDates(t *testing.T) {
	created := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)
	item := Item{
		CreatedAt: created,
		Messages:  []Message{{ID: 1, CreatedAt: created}},
	}
	item.FormatDates()

	if item.Date != "3/5/2024" {
		t.Errorf("expected item date '3/5/2024', got %q", item.Date)
	}
	if item.Messages[0].Date != "3/5/2024, 2:07:09 PM" {
		t.Errorf("expected message date '3/5/2024, 2:07:09 PM', got %q", item.Messages[0].Date)
	}
}
