package models

import "testing"

func TestPostIsTrending(t *testing.T) {
	tests := []struct {
		name  string
		likes int
		want  bool
	}{
		{"below threshold", TrendingThreshold - 1, false},
		{"at threshold", TrendingThreshold, true},
		{"above threshold", TrendingThreshold + 10, true},
		{"no likes", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Post{LikesCount: tt.likes}
			if got := p.IsTrending(); got != tt.want {
				t.Errorf("IsTrending() with %d likes = %v, want %v", tt.likes, got, tt.want)
			}
		})
	}
}

func TestEventInSlider(t *testing.T) {
	tests := []struct {
		status EventStatus
		want   bool
	}{
		{EventUpcoming, true},
		{EventOngoing, true},
		{EventCompleted, false},
	}

	for _, tt := range tests {
		e := &Event{Status: tt.status}
		if got := e.InSlider(); got != tt.want {
			t.Errorf("InSlider() with status %q = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestValidEventStatus(t *testing.T) {
	for _, status := range []EventStatus{EventUpcoming, EventOngoing, EventCompleted} {
		if !ValidEventStatus(status) {
			t.Errorf("expected %q to be a valid event status", status)
		}
	}
	if ValidEventStatus("cancelled") {
		t.Error("expected 'cancelled' to be an invalid event status")
	}
}

func TestValidTicketPriority(t *testing.T) {
	for _, priority := range []TicketPriority{TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent} {
		if !ValidTicketPriority(priority) {
			t.Errorf("expected %q to be a valid ticket priority", priority)
		}
	}
	if ValidTicketPriority("critical") {
		t.Error("expected 'critical' to be an invalid ticket priority")
	}
}

func TestValidUpdatePriority(t *testing.T) {
	for _, priority := range []UpdatePriority{UpdatePriorityLow, UpdatePriorityMedium, UpdatePriorityHigh, UpdatePriorityCritical} {
		if !ValidUpdatePriority(priority) {
			t.Errorf("expected %q to be a valid update priority", priority)
		}
	}
	if ValidUpdatePriority("urgent") {
		t.Error("expected 'urgent' to be an invalid update priority")
	}
}
