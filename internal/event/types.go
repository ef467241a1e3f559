// internal/event/types.go
package event

import "github.com/Pipe0105/TD-Modelamiento/internal/types"

const (
	WaveStarted     EventType = "WaveStarted"     // Началась новая волна
	WaveEnded       EventType = "WaveEnded"       // Волна закончилась
	LevelCleared    EventType = "LevelCleared"    // Все волны уровня пройдены
	EnemySpawned    EventType = "EnemySpawned"    // Враг появился
	EnemyKilled     EventType = "EnemyKilled"     // Враг убит башней
	EnemyEscaped    EventType = "EnemyEscaped"    // Враг дошёл до конца пути
	LivesDepleted   EventType = "LivesDepleted"   // Жизни закончились
	TowerPlaced     EventType = "TowerPlaced"     // Башня построена
	TowerUpgraded   EventType = "TowerUpgraded"   // Башня улучшена
	ProjectileFired EventType = "ProjectileFired" // Башня выстрелила
)

// EnemyData - данные для событий врагов
type EnemyData struct {
	ID     types.EntityID
	Reward int
}

// WaveData - данные для событий волн
type WaveData struct {
	Number int
}

// TowerData - данные для событий башен
type TowerData struct {
	ID   types.EntityID
	Stat string
}
