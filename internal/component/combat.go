// internal/component/combat.go
package component

// Health — компонент здоровья
type Health struct {
	Value float64
	Max   float64
}

// TakeDamage reduces health, clamping at zero. It reports whether this hit
// was the lethal one.
func (h *Health) TakeDamage(amount float64) bool {
	if h.Value <= 0 {
		return false
	}
	h.Value -= amount
	if h.Value <= 0 {
		h.Value = 0
		return true
	}
	return false
}

// Alive — здоровье больше нуля
func (h *Health) Alive() bool {
	return h.Value > 0
}

// Fraction — доля оставшегося здоровья для полоски
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Value / h.Max
}

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	FireRate     float64 // Скорострельность (выстрелов в секунду)
	FireCooldown float64 // Оставшееся время до следующего выстрела
	Range        float64 // Радиус действия (в пикселях)
}

// FireInterval — пауза между выстрелами в секундах
func (c *Combat) FireInterval() float64 {
	if c.FireRate <= 0 {
		return 0
	}
	return 1.0 / c.FireRate
}
