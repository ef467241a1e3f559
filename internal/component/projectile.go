// internal/component/projectile.go
package component

import "github.com/Pipe0105/TD-Modelamiento/internal/types"

// Projectile представляет летящий самонаводящийся снаряд.
type Projectile struct {
	OwnerID  types.EntityID
	TargetID types.EntityID
	Speed    float64
	Damage   int
	Alive    bool
}
