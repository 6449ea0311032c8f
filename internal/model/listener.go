package model

import "github.com/udisondev/arenacore/internal/formula"

// Listener receives combat notifications.
//
// Calls are synchronous and happen after the state change is committed.
// There is no ordering guarantee between different notification kinds
// within one tick.
type Listener interface {
	HealthChanged(e *Entity, current, max float64)
	EnergyChanged(e *Entity, current, max float64)
	GoldChanged(e *Entity, gold int)
	LevelUp(e *Entity, level int)
	Damaged(e *Entity, source *Entity, amount float64, typ formula.DamageType)
	Died(e *Entity)
	DiedWithKiller(e *Entity, killer *Entity)
	InventoryChanged(e *Entity)
	ItemPurchased(e *Entity, item *Item)
	AbilityActivated(e *Entity, slot int)
}

// NopListener implements Listener with empty methods.
// Embed it to handle only the events you care about.
type NopListener struct{}

func (NopListener) HealthChanged(*Entity, float64, float64)               {}
func (NopListener) EnergyChanged(*Entity, float64, float64)               {}
func (NopListener) GoldChanged(*Entity, int)                              {}
func (NopListener) LevelUp(*Entity, int)                                  {}
func (NopListener) Damaged(*Entity, *Entity, float64, formula.DamageType) {}
func (NopListener) Died(*Entity)                                          {}
func (NopListener) DiedWithKiller(*Entity, *Entity)                       {}
func (NopListener) InventoryChanged(*Entity)                              {}
func (NopListener) ItemPurchased(*Entity, *Item)                          {}
func (NopListener) AbilityActivated(*Entity, int)                         {}

// ListenerID is the handle returned by Listeners.Add.
type ListenerID int

type listenerEntry struct {
	id ListenerID
	l  Listener
}

// Listeners - список подписчиков одной сущности.
// Вызовы идут в порядке регистрации. Подписчик может отписаться
// прямо из обработчика: текущая рассылка использует снимок списка.
type Listeners struct {
	next    ListenerID
	entries []listenerEntry
}

// Add registers l and returns a handle for Remove.
func (ls *Listeners) Add(l Listener) ListenerID {
	ls.next++
	ls.entries = append(ls.entries, listenerEntry{id: ls.next, l: l})
	return ls.next
}

// Remove unregisters the listener. Returns false for unknown handles.
func (ls *Listeners) Remove(id ListenerID) bool {
	for i, e := range ls.entries {
		if e.id != id {
			continue
		}
		// copy-on-write: snapshots held by an in-flight notify stay intact
		next := make([]listenerEntry, 0, len(ls.entries)-1)
		next = append(next, ls.entries[:i]...)
		next = append(next, ls.entries[i+1:]...)
		ls.entries = next
		return true
	}
	return false
}

// Len returns the number of registered listeners.
func (ls *Listeners) Len() int {
	return len(ls.entries)
}

func (ls *Listeners) notify(fn func(Listener)) {
	for _, e := range ls.entries {
		fn(e.l)
	}
}
