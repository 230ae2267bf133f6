// internal/assets/sheet_manager.go
package assets

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"go-gravitar/internal/component"
)

// SheetManager keeps the loaded sprite sheets by id.
type SheetManager struct {
	sheets map[string]*SpriteSheet
	log    *zap.Logger
}

func NewSheetManager(log *zap.Logger) *SheetManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &SheetManager{
		sheets: make(map[string]*SpriteSheet),
		log:    log,
	}
}

// Add registers sheet, replacing a previous sheet with the same id.
func (m *SheetManager) Add(sheet *SpriteSheet) {
	if _, ok := m.sheets[sheet.ID()]; ok {
		m.log.Warn("sprite sheet replaced", zap.String("sheet", sheet.ID()))
	}
	m.sheets[sheet.ID()] = sheet
	m.log.Debug("sprite sheet loaded", zap.String("sheet", sheet.ID()), zap.Int("frames", sheet.Len()))
}

func (m *SheetManager) Get(id string) (*SpriteSheet, bool) {
	s, ok := m.sheets[id]
	return s, ok
}

// IDs lists the loaded sheets in lexical order.
func (m *SheetManager) IDs() []string {
	ids := make([]string, 0, len(m.sheets))
	for id := range m.sheets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Sprite returns frame of sheet id. Asking for a sheet that was never loaded
// is a programming error and panics.
func (m *SheetManager) Sprite(id string, frame int) component.Renderable {
	s, ok := m.sheets[id]
	if !ok {
		panic(fmt.Sprintf("assets: unknown sprite sheet %q", id))
	}
	return s.Sprite(frame)
}
