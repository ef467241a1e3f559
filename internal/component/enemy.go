package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	TierID   string // ID тира из таблицы уровня, пусто для значений по умолчанию
	Reward   int    // Деньги за убийство
	Alive    bool
	Escaped  bool // Дошёл до конца пути
	Rewarded bool // Награда уже начислена
}
