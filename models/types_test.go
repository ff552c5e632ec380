package models

import "testing"

func TestStateNext(t *testing.T) {
	tests := []struct {
		name string
		in   State
		want State
	}{
		{"unknown to on", StateUnknown, StateAffirmative},
		{"on to off", StateAffirmative, StateNegative},
		{"off to unknown", StateNegative, StateUnknown},
		{"unrecognized to unknown", State("maybe"), StateUnknown},
		{"empty to unknown", State(""), StateUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Next(); got != tt.want {
				t.Errorf("%q.Next() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStateNormalize(t *testing.T) {
	tests := []struct {
		in   State
		want State
	}{
		{StateUnknown, StateUnknown},
		{StateAffirmative, StateAffirmative},
		{StateNegative, StateNegative},
		{State("maybe"), StateUnknown},
		{State("ON"), StateUnknown},
		{State(""), StateUnknown},
	}

	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("%q.Normalize() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatrixGet(t *testing.T) {
	m := Matrix{
		"o1": {"p1": StateAffirmative, "p2": State("maybe")},
		"o2": nil,
	}

	tests := []struct {
		name          string
		matrix        Matrix
		optionID      string
		participantID string
		want          State
	}{
		{"set cell", m, "o1", "p1", StateAffirmative},
		{"unrecognized cell", m, "o1", "p2", StateUnknown},
		{"missing cell", m, "o1", "p3", StateUnknown},
		{"missing row", m, "o3", "p1", StateUnknown},
		{"nil row", m, "o2", "p1", StateUnknown},
		{"nil matrix", nil, "o1", "p1", StateUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.matrix.Get(tt.optionID, tt.participantID); got != tt.want {
				t.Errorf("Get(%q, %q) = %q, want %q", tt.optionID, tt.participantID, got, tt.want)
			}
		})
	}
}
