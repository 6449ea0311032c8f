package model

import "log/slog"

// Kind classifies entities for targeting rules and rewards.
type Kind int8

const (
	KindHero Kind = iota
	KindMinion
	KindMonster
	KindTurret
	KindCrystal
)

func (k Kind) String() string {
	switch k {
	case KindHero:
		return "hero"
	case KindMinion:
		return "minion"
	case KindMonster:
		return "monster"
	case KindTurret:
		return "turret"
	case KindCrystal:
		return "crystal"
	default:
		return "unknown"
	}
}

// Team of an entity. Neutral is used by jungle monsters.
type Team int8

const (
	TeamBlue Team = iota
	TeamRed
	TeamNeutral
)

func (t Team) String() string {
	switch t {
	case TeamBlue:
		return "blue"
	case TeamRed:
		return "red"
	case TeamNeutral:
		return "neutral"
	default:
		return "unknown"
	}
}

// Opponent returns the other lane team. Neutral has no opponent.
func (t Team) Opponent() Team {
	switch t {
	case TeamBlue:
		return TeamRed
	case TeamRed:
		return TeamBlue
	default:
		return TeamNeutral
	}
}

// Entity - любая сущность на арене: герой, миньон, монстр, турель, кристалл.
// Владеет своим StatBlock и списком подписчиков на уведомления.
type Entity struct {
	id       uint32
	name     string
	kind     Kind
	team     Team
	position Vec3
	stats    *StatBlock
	events   Listeners
	removed  bool

	// Data holds the orchestrator driving this entity (hero controller,
	// minion, turret) so queries can reach it without type registries.
	Data any
}

// NewEntity creates an entity and attaches stats to it.
func NewEntity(id uint32, name string, kind Kind, team Team, pos Vec3, stats *StatBlock) *Entity {
	e := &Entity{
		id:       id,
		name:     name,
		kind:     kind,
		team:     team,
		position: pos,
		stats:    stats,
	}
	stats.owner = e
	return e
}

// ID возвращает уникальный ID (immutable после создания).
func (e *Entity) ID() uint32     { return e.id }
func (e *Entity) Name() string   { return e.name }
func (e *Entity) Kind() Kind     { return e.kind }
func (e *Entity) Team() Team     { return e.team }
func (e *Entity) Position() Vec3 { return e.position }

// SetPosition teleports the entity.
func (e *Entity) SetPosition(p Vec3) { e.position = p }

// Stats returns the owned StatBlock.
func (e *Entity) Stats() *StatBlock { return e.stats }

// Listeners returns the notification hub for this entity.
func (e *Entity) Listeners() *Listeners { return &e.events }

// IsAlive reports whether the entity can act and be targeted.
func (e *Entity) IsAlive() bool {
	return e != nil && !e.removed && e.stats.IsAlive()
}

// Remove marks the entity as gone from the world. References held by
// others become invalid targets.
func (e *Entity) Remove() { e.removed = true }

func (e *Entity) Removed() bool { return e.removed }

// IsEnemyOf reports whether the two entities are on different teams.
// Neutral monsters are enemies of both lane teams.
func (e *Entity) IsEnemyOf(o *Entity) bool {
	if e == nil || o == nil {
		return false
	}
	return e.team != o.team
}

// CanBeTargetedBy reports whether attacker may hit e right now.
func (e *Entity) CanBeTargetedBy(attacker *Entity) bool {
	return e.IsAlive() && attacker != nil && e.IsEnemyOf(attacker)
}

// DistanceTo returns the distance between two entities.
func (e *Entity) DistanceTo(o *Entity) float64 {
	return e.position.Distance(o.position)
}

// NotifyInventoryChanged fires the inventory-changed notification.
func (e *Entity) NotifyInventoryChanged() {
	e.events.notify(func(l Listener) { l.InventoryChanged(e) })
}

// NotifyItemPurchased fires the item-purchased notification.
func (e *Entity) NotifyItemPurchased(item *Item) {
	e.events.notify(func(l Listener) { l.ItemPurchased(e, item) })
}

// NotifyAbilityActivated fires the ability-activated notification.
func (e *Entity) NotifyAbilityActivated(slot int) {
	e.events.notify(func(l Listener) { l.AbilityActivated(e, slot) })
}

// LogValue implements slog.LogValuer.
func (e *Entity) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}
	return slog.GroupValue(
		slog.Any("id", e.id),
		slog.String("name", e.name),
		slog.String("team", e.team.String()),
	)
}
