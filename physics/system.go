package physics

import (
	"fmt"
	"log"
	"math"
)

// Layer classifies an entity's collision group. Two layers only produce
// events when declared collidable via SetLayerCollision.
type Layer uint32

// Handler is invoked for every detected collision between its layer pair,
// before default resolution. Setting ev.Handled suppresses the default
// separation for that event.
type Handler func(ev *CollisionEvent)

// Collider is the collision system's view of one entity: a layer-tagged box
// plus static/trigger flags. The owning gameplay system mutates the entity;
// the collider holds a derived AABB snapshot refreshed through MoveCollider.
type Collider struct {
	ID      EntityID
	Box     AABB
	Layer   Layer
	Static  bool
	Trigger bool

	// Data is an opaque back-reference for callers (e.g. an ECS entry).
	Data any

	// gridBox is the AABB last synced into the spatial grid. It lags Box by
	// up to a quarter cell; see MoveCollider.
	gridBox AABB
}

// ColliderOptions configures entity registration.
type ColliderOptions struct {
	Layer   Layer
	Static  bool
	Trigger bool
	Data    any
}

// Config holds CollisionSystem construction parameters.
type Config struct {
	// CellSize is the spatial grid cell edge length. Must be positive.
	CellSize float64

	// WorldBounds clamps grid cell coordinates. Must have positive extents.
	WorldBounds AABB

	// MaxCollisionsPerFrame caps the pairs processed per detection pass.
	// Zero selects DefaultMaxCollisionsPerFrame.
	MaxCollisionsPerFrame int
}

// DefaultMaxCollisionsPerFrame bounds worst-case frame time under
// adversarial entity density; pairs beyond the cap are dropped for the
// frame with a single warning.
const DefaultMaxCollisionsPerFrame = 1000

type layerPair struct {
	lo, hi Layer
}

func makeLayerPair(a, b Layer) layerPair {
	if a > b {
		a, b = b, a
	}
	return layerPair{lo: a, hi: b}
}

type entityPair struct {
	lo, hi EntityID
}

func makeEntityPair(a, b EntityID) entityPair {
	if a > b {
		a, b = b, a
	}
	return entityPair{lo: a, hi: b}
}

// CollisionSystem owns the per-frame collision pipeline: registration,
// layer matrix, broad-phase grid query, narrow-phase AABB test, event
// dispatch and default separation resolution. Not safe for concurrent use;
// the game loop drives it from a single goroutine.
type CollisionSystem struct {
	cfg       Config
	grid      *SpatialHashGrid
	colliders map[EntityID]*Collider
	matrix    map[layerPair]struct{}
	handlers  map[layerPair]Handler
	frame     uint64
}

// NewCollisionSystem validates the configuration and builds an empty system.
// Construction either fully succeeds or returns an error; the system is
// never left partially initialized.
func NewCollisionSystem(cfg Config) (*CollisionSystem, error) {
	if cfg.CellSize <= 0 {
		return nil, fmt.Errorf("physics: cell size must be positive, got %v", cfg.CellSize)
	}
	if !cfg.WorldBounds.Valid() || cfg.WorldBounds.W <= 0 || cfg.WorldBounds.H <= 0 {
		return nil, fmt.Errorf("physics: world bounds must have positive extents, got %+v", cfg.WorldBounds)
	}
	if cfg.MaxCollisionsPerFrame < 0 {
		return nil, fmt.Errorf("physics: max collisions per frame must be >= 0, got %d", cfg.MaxCollisionsPerFrame)
	}
	if cfg.MaxCollisionsPerFrame == 0 {
		cfg.MaxCollisionsPerFrame = DefaultMaxCollisionsPerFrame
	}
	grid, err := NewSpatialHashGrid(cfg.CellSize, cfg.WorldBounds)
	if err != nil {
		return nil, err
	}
	return &CollisionSystem{
		cfg:       cfg,
		grid:      grid,
		colliders: make(map[EntityID]*Collider),
		matrix:    make(map[layerPair]struct{}),
		handlers:  make(map[layerPair]Handler),
	}, nil
}

// WorldBounds returns the configured world box.
func (s *CollisionSystem) WorldBounds() AABB { return s.cfg.WorldBounds }

// Register adds an entity to the system and the spatial grid. Malformed
// registrations (zero id, duplicate id, non-finite box) are rejected with a
// logged error and no state change; the caller receives nil.
func (s *CollisionSystem) Register(id EntityID, box AABB, opts ColliderOptions) *Collider {
	if id == 0 {
		log.Printf("physics: rejecting collider registration without an id")
		return nil
	}
	if !box.Valid() {
		log.Printf("physics: rejecting collider %d with non-finite box %+v", id, box)
		return nil
	}
	if _, exists := s.colliders[id]; exists {
		log.Printf("physics: collider %d already registered", id)
		return nil
	}
	c := &Collider{
		ID:      id,
		Box:     box,
		Layer:   opts.Layer,
		Static:  opts.Static,
		Trigger: opts.Trigger,
		Data:    opts.Data,
		gridBox: box,
	}
	s.colliders[id] = c
	s.grid.Insert(id, box)
	return c
}

// Unregister removes the entity from the system and the grid. No-op for
// unknown ids.
func (s *CollisionSystem) Unregister(id EntityID) {
	if _, ok := s.colliders[id]; !ok {
		return
	}
	delete(s.colliders, id)
	s.grid.Remove(id)
}

// Get returns the collider registered under id, nil if absent.
func (s *CollisionSystem) Get(id EntityID) *Collider {
	return s.colliders[id]
}

// Len returns the number of registered colliders.
func (s *CollisionSystem) Len() int { return len(s.colliders) }

// SetLayerCollision declares a symmetric collision relationship between two
// layers. Pairs never declared produce no events.
func (s *CollisionSystem) SetLayerCollision(a, b Layer) {
	s.matrix[makeLayerPair(a, b)] = struct{}{}
}

// LayersCollide reports whether the pair has been declared collidable.
func (s *CollisionSystem) LayersCollide(a, b Layer) bool {
	_, ok := s.matrix[makeLayerPair(a, b)]
	return ok
}

// RegisterHandler associates a callback with an unordered layer pair. At
// most one handler per pair; a second registration replaces the first.
func (s *CollisionSystem) RegisterHandler(a, b Layer, h Handler) {
	s.handlers[makeLayerPair(a, b)] = h
}

// MoveCollider updates the collider's box snapshot and re-syncs the grid
// when the box has drifted more than a quarter cell from its last synced
// position. The threshold bounds grid churn from sub-pixel movement without
// compromising broad-phase correctness at cell granularity.
func (s *CollisionSystem) MoveCollider(c *Collider, box AABB) {
	if !box.Valid() {
		log.Printf("physics: ignoring non-finite move for collider %d", c.ID)
		return
	}
	c.Box = box
	threshold := s.cfg.CellSize / 4
	if math.Abs(box.X-c.gridBox.X) > threshold ||
		math.Abs(box.Y-c.gridBox.Y) > threshold ||
		math.Abs(box.W-c.gridBox.W) > threshold ||
		math.Abs(box.H-c.gridBox.H) > threshold {
		s.grid.Update(c.ID, box)
		c.gridBox = box
	}
}

// DetectCollisions runs one broad+narrow phase pass over all registered
// colliders and returns the events for the frame, capped at
// MaxCollisionsPerFrame. Pairs beyond the cap are skipped for this frame
// with a single logged warning.
func (s *CollisionSystem) DetectCollisions() []*CollisionEvent {
	s.frame++
	var events []*CollisionEvent
	seen := make(map[entityPair]struct{})
	capped := false

detect:
	for id, a := range s.colliders {
		// Query one cell beyond the box so grid snapshots lagging by the
		// quarter-cell threshold never cause a missed candidate.
		margin := s.cfg.CellSize / 2
		query := AABB{
			X: a.Box.X - margin,
			Y: a.Box.Y - margin,
			W: a.Box.W + 2*margin,
			H: a.Box.H + 2*margin,
		}
		for otherID := range s.grid.Query(query) {
			if otherID == id {
				continue
			}
			pair := makeEntityPair(id, otherID)
			if _, done := seen[pair]; done {
				continue
			}
			seen[pair] = struct{}{}

			b, ok := s.colliders[otherID]
			if !ok {
				continue
			}
			if !s.LayersCollide(a.Layer, b.Layer) {
				continue
			}
			if !a.Box.Intersects(b.Box) {
				continue
			}
			if len(events) >= s.cfg.MaxCollisionsPerFrame {
				capped = true
				break detect
			}
			events = append(events, newCollisionEvent(a, b, s.frame))
		}
	}

	if capped {
		log.Printf("physics: collision cap %d reached on frame %d, dropping remaining pairs",
			s.cfg.MaxCollisionsPerFrame, s.frame)
	}
	return events
}

// ProcessCollisions dispatches each event to its layer-pair handler, then
// applies default separation resolution to events that remain unhandled and
// involve no trigger. A panicking handler is recovered per-event so one bad
// handler cannot abort the rest of the frame.
func (s *CollisionSystem) ProcessCollisions(events []*CollisionEvent) {
	for _, ev := range events {
		if h, ok := s.handlers[makeLayerPair(ev.A.Layer, ev.B.Layer)]; ok {
			s.invokeHandler(h, ev)
		}
		if !ev.Handled && !ev.A.Trigger && !ev.B.Trigger {
			s.separate(ev)
			ev.Handled = true
		}
	}
}

// Step is the per-frame entry point: detect then process, returning the
// frame's events for callers that want to inspect them.
func (s *CollisionSystem) Step() []*CollisionEvent {
	events := s.DetectCollisions()
	s.ProcessCollisions(events)
	return events
}

func (s *CollisionSystem) invokeHandler(h Handler, ev *CollisionEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("physics: collision handler panicked for layers (%d,%d): %v",
				ev.A.Layer, ev.B.Layer, r)
		}
	}()
	h(ev)
}

// separate pushes the two entities apart along the collision normal, half
// the penetration depth each. Static entities never move; when one side is
// static the other takes the full correction.
func (s *CollisionSystem) separate(ev *CollisionEvent) {
	a, b := ev.A, ev.B
	if a.Static && b.Static {
		return
	}
	push := ev.Penetration / 2
	if a.Static || b.Static {
		push = ev.Penetration
	}
	if !a.Static {
		box := a.Box
		box.X -= ev.Normal.X * push
		box.Y -= ev.Normal.Y * push
		s.MoveCollider(a, box)
	}
	if !b.Static {
		box := b.Box
		box.X += ev.Normal.X * push
		box.Y += ev.Normal.Y * push
		s.MoveCollider(b, box)
	}
}

// QueryPoint returns the colliders whose boxes contain the point. Broad
// phase via the grid, inclusive narrow-phase containment test.
func (s *CollisionSystem) QueryPoint(x, y float64) []*Collider {
	var out []*Collider
	probe := AABB{X: x, Y: y, W: 0, H: 0}
	for id := range s.grid.Query(probe) {
		if c, ok := s.colliders[id]; ok && c.Box.ContainsPoint(x, y) {
			out = append(out, c)
		}
	}
	return out
}

// QueryArea returns the colliders whose boxes intersect the given region.
func (s *CollisionSystem) QueryArea(box AABB) []*Collider {
	var out []*Collider
	for id := range s.grid.Query(box) {
		if c, ok := s.colliders[id]; ok && c.Box.Intersects(box) {
			out = append(out, c)
		}
	}
	return out
}
