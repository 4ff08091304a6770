// internal/assets/fonts.go
package assets

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// FontManager кеширует начертания по размеру
type FontManager struct {
	mu    sync.Mutex
	tt    *opentype.Font
	faces map[float64]font.Face
}

func NewFontManager() (*FontManager, error) {
	tt, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FontManager{tt: tt, faces: make(map[float64]font.Face)}, nil
}

// Face возвращает начертание заданного кегля, создавая его при первом запросе
func (m *FontManager) Face(size float64) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %.0fpt: %w", size, err)
	}
	m.faces[size] = face
	return face, nil
}

// Close освобождает все начертания
func (m *FontManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for size, face := range m.faces {
		if err := face.Close(); err != nil {
			return fmt.Errorf("close face %.0fpt: %w", size, err)
		}
		delete(m.faces, size)
	}
	return nil
}
