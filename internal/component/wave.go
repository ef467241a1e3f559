package component

// Wave - состояние планировщика волн для текущего уровня.
type Wave struct {
	Number           int
	TargetWaves      int
	EnemiesPerWave   int
	SpawnedInWave    int
	SpawnTimer       float64
	SpawnInterval    float64
	Lambda           float64 // Интенсивность потока прибытия (λ)
	SpeedMultiplier  float64
	HealthMultiplier float64
	Active           bool
	Cleared          bool // Все волны уровня пройдены
}

// Economy - деньги и жизни игрока на уровне.
type Economy struct {
	Money   int
	Lives   int
	Kills   int
	Escapes int
	Earned  int
	Spent   int
}
