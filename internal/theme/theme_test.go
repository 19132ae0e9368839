package theme

import "testing"

func TestStoreToggle(t *testing.T) {
	s := NewStore("")
	if s.Mode() != Light {
		t.Fatalf("Expected default light, got %s", s.Mode())
	}

	var got []Mode
	s.OnChange(func(m Mode) { got = append(got, m) })

	if m := s.Toggle(); m != Dark {
		t.Errorf("Expected dark, got %s", m)
	}
	if m := s.Toggle(); m != Light {
		t.Errorf("Expected light, got %s", m)
	}
	if len(got) != 2 {
		t.Errorf("Expected 2 notifications, got %d", len(got))
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("DARK"); err != nil || m != Dark {
		t.Errorf("Expected dark, got %s (%v)", m, err)
	}
	if _, err := ParseMode("sepia"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}

func TestNewUsesModePalette(t *testing.T) {
	if New(Dark).Palette != DarkPalette {
		t.Error("Expected dark palette")
	}
	if New(Light).Palette != LightPalette {
		t.Error("Expected light palette")
	}
}
