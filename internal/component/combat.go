package component

// Health - компонент здоровья
type Health struct {
	Value int
	Max   int
}

// Ratio returns Value/Max, or 0 for a zero Max.
func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Value) / float64(h.Max)
}

// Combat - компонент для башен, управляющий атакой
type Combat struct {
	Damage          int
	FireRate        float64 // Скорострельность (выстрелов в секунду)
	Range           float64 // Радиус действия в пикселях
	ProjectileSpeed float64 // Пикселей в секунду
	LastShot        float64 // Игровое время последнего выстрела
	HasFired        bool
}

// Ready reports whether the cooldown has elapsed at game time now.
// A non-positive fire rate never fires.
func (c *Combat) Ready(now float64) bool {
	if c.FireRate <= 0 {
		return false
	}
	if !c.HasFired {
		return true
	}
	return now-c.LastShot >= 1.0/c.FireRate
}
