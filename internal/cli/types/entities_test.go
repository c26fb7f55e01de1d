package types

import "testing"

func TestSeverityRankOrdering(t *testing.T) {
	ordered := []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Rank() >= ordered[i].Rank() {
			t.Errorf("%s should rank below %s", ordered[i-1], ordered[i])
		}
	}
	if Severity("catastrophic").Rank() != -1 {
		t.Error("unknown severity should rank -1")
	}
}

func TestSeverityValid(t *testing.T) {
	tests := []struct {
		s    Severity
		want bool
	}{
		{SeverityLow, true},
		{SeverityCritical, true},
		{Severity(""), false},
		{Severity("HIGH"), false},
	}
	for _, tt := range tests {
		if got := tt.s.Valid(); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestUrgencySharesSeverityOrdering(t *testing.T) {
	if UrgencyMedium.Rank() != SeverityMedium.Rank() {
		t.Error("urgency and severity scales should share ranks")
	}
	if !UrgencyCritical.Valid() || Urgency("urgent").Valid() {
		t.Error("urgency validity should follow the severity scale")
	}
}

func TestDetectionZScore(t *testing.T) {
	z := 3.4
	a := Anomaly{DetectedBy: MethodZScore, ZScore: &z}
	stats, ok := a.Detection()
	if !ok {
		t.Fatal("z-score anomaly should carry detection stats")
	}
	if stats.Method != MethodZScore {
		t.Errorf("method = %q, want %q", stats.Method, MethodZScore)
	}
	if stats.ZScore != 3.4 {
		t.Errorf("z-score = %v, want 3.4", stats.ZScore)
	}
}

func TestDetectionIQR(t *testing.T) {
	a := Anomaly{
		DetectedBy: MethodIQR,
		IQRBounds:  &IQRBounds{Lower: 120.5, Upper: 340.0},
	}
	stats, ok := a.Detection()
	if !ok {
		t.Fatal("IQR anomaly should carry detection stats")
	}
	if stats.Method != MethodIQR {
		t.Errorf("method = %q, want %q", stats.Method, MethodIQR)
	}
	if stats.Bounds.Lower != 120.5 || stats.Bounds.Upper != 340.0 {
		t.Errorf("bounds = %+v, want 120.5/340.0", stats.Bounds)
	}
}

func TestDetectionAbsent(t *testing.T) {
	a := Anomaly{DetectedBy: MethodManual}
	if _, ok := a.Detection(); ok {
		t.Error("manual anomaly without stats should report ok=false")
	}
}
