package hwplane

import "testing"

func TestPlaneClassString(t *testing.T) {
	tests := []struct {
		class PlaneClass
		want  string
	}{
		{PlaneSprite, "Sprite"},
		{PlaneOverlay, "Overlay"},
		{PlanePrimary, "Primary"},
		{PlaneClass(3), "PlaneClass(3)"},
		{PlaneClass(-1), "PlaneClass(-1)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.class.String(); got != tt.want {
				t.Errorf("PlaneClass(%d).String() = %q, want %q", int(tt.class), got, tt.want)
			}
		})
	}
}

func TestPlaneClassValues(t *testing.T) {
	// Values are shared with the plane-assignment component.
	if PlaneSprite != 0 || PlaneOverlay != 1 || PlanePrimary != 2 {
		t.Errorf("plane class values = %d/%d/%d, want 0/1/2", PlaneSprite, PlaneOverlay, PlanePrimary)
	}
	for _, c := range []PlaneClass{PlaneSprite, PlaneOverlay, PlanePrimary} {
		if !c.Valid() {
			t.Errorf("%v.Valid() = false", c)
		}
	}
	for _, c := range []PlaneClass{-1, 3, 42} {
		if c.Valid() {
			t.Errorf("PlaneClass(%d).Valid() = true", int(c))
		}
	}
}

func TestParsePlaneClass(t *testing.T) {
	tests := []struct {
		in      string
		want    PlaneClass
		wantErr bool
	}{
		{"primary", PlanePrimary, false},
		{"SPRITE", PlaneSprite, false},
		{"Overlay", PlaneOverlay, false},
		{"cursor", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlaneClass(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePlaneClass(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParsePlaneClass(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
