package assets

import "testing"

func TestFontManagerCachesFaces(t *testing.T) {
	m, err := NewFontManager()
	if err != nil {
		t.Fatalf("NewFontManager: %v", err)
	}
	a, err := m.Face(14)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	b, _ := m.Face(14)
	if a != b {
		t.Errorf("same size returned different faces")
	}
	c, _ := m.Face(32)
	if c == a {
		t.Errorf("different sizes share a face")
	}
	if a.Metrics().Height <= 0 {
		t.Errorf("face has no height")
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
