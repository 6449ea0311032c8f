package ai

import (
	"fmt"
	"log/slog"
	"slices"
)

type entry struct {
	id         uint32
	controller Controller
}

// TickManager ticks every registered AI controller in registration order,
// so a fixed seed replays the same match.
type TickManager struct {
	entries []entry
}

// NewTickManager creates an empty manager.
func NewTickManager() *TickManager {
	return &TickManager{}
}

// Register adds controller for entity id, replacing any previous one.
func (m *TickManager) Register(id uint32, controller Controller) {
	m.Unregister(id)
	m.entries = append(m.entries, entry{id: id, controller: controller})

	slog.Debug("AI controller registered",
		"id", id,
		"state", controller.State())
}

// Unregister removes the controller of id.
func (m *TickManager) Unregister(id uint32) {
	i := slices.IndexFunc(m.entries, func(e entry) bool { return e.id == id })
	if i < 0 {
		return
	}
	m.entries = slices.Delete(m.entries, i, i+1)
	slog.Debug("AI controller unregistered", "id", id)
}

// TickAll ticks all registered controllers.
func (m *TickManager) TickAll(dt float64) {
	for _, e := range m.entries {
		e.controller.Tick(dt)
	}
}

// Count returns the number of registered controllers.
func (m *TickManager) Count() int {
	return len(m.entries)
}

// GetController returns the controller of id.
func (m *TickManager) GetController(id uint32) (Controller, error) {
	for _, e := range m.entries {
		if e.id == id {
			return e.controller, nil
		}
	}
	return nil, fmt.Errorf("controller not found for id %d", id)
}
