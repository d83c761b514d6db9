package config

// EnemyStateID identifies a state in the enemy lifecycle machine.
type EnemyStateID int

const (
	EnemySpawning EnemyStateID = iota
	EnemyActive
	EnemyAttacking
	EnemyDamaged
	EnemyDying
	EnemyDead
)

var enemyStateNames = map[EnemyStateID]string{
	EnemySpawning:  "spawning",
	EnemyActive:    "active",
	EnemyAttacking: "attacking",
	EnemyDamaged:   "damaged",
	EnemyDying:     "dying",
	EnemyDead:      "dead",
}

func (s EnemyStateID) String() string {
	if name, ok := enemyStateNames[s]; ok {
		return name
	}
	return "unknown"
}
