package model

import "testing"

func TestPanelStatus_Valid(t *testing.T) {
	tests := []struct {
		status   PanelStatus
		expected bool
	}{
		{StatusArm, true},
		{StatusDisarm, true},
		{PanelStatus(""), false},
		{PanelStatus("online"), false},
		{PanelStatus("arm"), false},
	}

	for _, test := range tests {
		result := test.status.Valid()
		if result != test.expected {
			t.Errorf("PanelStatus(%s).Valid() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestPanelStatus_IsArmed(t *testing.T) {
	if !StatusArm.IsArmed() {
		t.Error("StatusArm.IsArmed() should be true")
	}
	if StatusDisarm.IsArmed() {
		t.Error("StatusDisarm.IsArmed() should be false")
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw      string
		expected *PanelStatus
	}{
		{"ARM", &[]PanelStatus{StatusArm}[0]},
		{"DISARM", &[]PanelStatus{StatusDisarm}[0]},
		{"", nil},
		{"offline", nil},
	}

	for _, test := range tests {
		result := ParseStatus(test.raw)
		if test.expected == nil {
			if result != nil {
				t.Errorf("ParseStatus(%q) = %v, expected nil", test.raw, *result)
			}
			continue
		}
		if result == nil {
			t.Errorf("ParseStatus(%q) = nil, expected %s", test.raw, *test.expected)
			continue
		}
		if *result != *test.expected {
			t.Errorf("ParseStatus(%q) = %s, expected %s", test.raw, *result, *test.expected)
		}
	}
}
