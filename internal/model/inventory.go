package model

import (
	"fmt"
	"log/slog"
	"math"
)

const (
	// MaxInventorySlots - ёмкость инвентаря героя.
	MaxInventorySlots = 6

	// SellRefundPercent is the share of the cost returned by SellItem.
	SellRefundPercent = 0.7

	MaxCooldownReduction = 0.4
	MaxCritChance        = 1.0
)

// stats pushed into the owner's StatBlock as flat bonuses after every recompute.
// Weapon power and attack speed are not pushed: the orchestrator adds them
// itself when composing basic attacks and attack cadence. Max energy has
// no StatType and goes through SetMaxEnergyBonus.
var syncedItemStats = []struct {
	stat StatType
	get  func(ItemStats) float64
}{
	{StatMaxHealth, func(s ItemStats) float64 { return s.MaxHealth }},
	{StatArmor, func(s ItemStats) float64 { return s.Armor }},
	{StatShield, func(s ItemStats) float64 { return s.Shield }},
	{StatCrystalPower, func(s ItemStats) float64 { return s.CrystalPower }},
}

// Inventory - до шести экипированных предметов героя и сумма их бонусов.
//
// Сумма пересчитывается целиком при каждом изменении: обнулить, затем
// сложить заново. Никаких инкрементальных вычитаний при удалении.
type Inventory struct {
	owner *Entity
	items []*Item
	total ItemStats
}

// NewInventory создаёт пустой инвентарь для сущности.
func NewInventory(owner *Entity) *Inventory {
	return &Inventory{
		owner: owner,
		items: make([]*Item, 0, MaxInventorySlots),
	}
}

// Items возвращает копию списка предметов (slot = индекс).
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Item returns the item in slot, nil if empty or out of range.
func (inv *Inventory) Item(slot int) *Item {
	if slot < 0 || slot >= len(inv.items) {
		return nil
	}
	return inv.items[slot]
}

func (inv *Inventory) Count() int { return len(inv.items) }

func (inv *Inventory) IsFull() bool { return len(inv.items) >= MaxInventorySlots }

// Bonuses returns the capped totals of all equipped items.
func (inv *Inventory) Bonuses() ItemStats { return inv.total }

// AddItem экипирует предмет без оплаты.
//
// Returns:
//   - false если инвентарь полон или item == nil
func (inv *Inventory) AddItem(item *Item) bool {
	if item == nil || inv.IsFull() {
		return false
	}
	inv.items = append(inv.items, item)
	inv.recompute()
	inv.owner.NotifyInventoryChanged()
	return true
}

// TryPurchase покупает предмет за золото владельца.
//
// Проверяет место до списания золота, поэтому при отказе ничего не меняется.
func (inv *Inventory) TryPurchase(item *Item) bool {
	if item == nil || inv.IsFull() {
		return false
	}
	if !inv.owner.Stats().SpendGold(item.Cost) {
		return false
	}

	inv.items = append(inv.items, item)
	inv.recompute()

	slog.Debug("item purchased",
		"entity", inv.owner.Name(),
		"item", item.Name,
		"cost", item.Cost)

	inv.owner.NotifyItemPurchased(item)
	inv.owner.NotifyInventoryChanged()
	return true
}

// RemoveItem снимает предмет из слота и возвращает floor(cost × refund) золота.
//
// Parameters:
//   - slot: индекс предмета
//   - refundPercent: доля стоимости, 0..1
//
// Returns:
//   - снятый предмет
//   - error если слот пуст
func (inv *Inventory) RemoveItem(slot int, refundPercent float64) (*Item, error) {
	if slot < 0 || slot >= len(inv.items) {
		return nil, fmt.Errorf("inventory slot %d: out of range (have %d items)", slot, len(inv.items))
	}

	item := inv.items[slot]
	inv.items = append(inv.items[:slot], inv.items[slot+1:]...)
	inv.recompute()

	refundPercent = math.Max(0, math.Min(1, refundPercent))
	if refund := int(math.Floor(float64(item.Cost) * refundPercent)); refund > 0 {
		inv.owner.Stats().AddGold(refund)
	}

	inv.owner.NotifyInventoryChanged()
	return item, nil
}

// SellItem is RemoveItem with the standard shop refund.
func (inv *Inventory) SellItem(slot int) (*Item, error) {
	return inv.RemoveItem(slot, SellRefundPercent)
}

func (inv *Inventory) recompute() {
	var total ItemStats
	for _, it := range inv.items {
		total = total.Add(it.Stats)
	}
	total.CooldownReduction = math.Min(total.CooldownReduction, MaxCooldownReduction)
	total.CritChance = math.Min(total.CritChance, MaxCritChance)
	inv.total = total

	stats := inv.owner.Stats()
	for _, s := range syncedItemStats {
		id := "item:" + s.stat.String()
		if v := s.get(total); v != 0 {
			stats.AddFlatBonus(id, s.stat, v)
		} else {
			stats.RemoveFlatBonus(id)
		}
	}
	stats.SetMaxEnergyBonus(total.MaxEnergy)
}
