package components

import "github.com/yohamta/donburi"

type ProjectileData struct {
	Owner    string // tags.OwnerPlayer or tags.OwnerEnemy
	Damage   int
	Age      int
	Lifetime int
	Active   bool

	// Overflow marks instances constructed past the pool's hard cap; they
	// are discarded on release instead of returning to the free list.
	Overflow bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// ProjectilePoolData is the session singleton backing pooled projectile
// allocation: a free list of inactive entries plus a construction counter
// against the hard cap.
type ProjectilePoolData struct {
	Free    []*donburi.Entry
	Created int
	HardCap int
}

var ProjectilePool = donburi.NewComponentType[ProjectilePoolData]()
