package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Boundary   = donburi.NewTag().SetName("Boundary")
)

// Projectile owner tags
const (
	OwnerPlayer = "player"
	OwnerEnemy  = "enemy"
)
