package scene

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/trevor-e-apple/time-game/engine/game_object"
	"github.com/trevor-e-apple/time-game/engine/sprite"
)

// Scene manages a registry of GameObjects with stable insertion order, advances
// them in parallel each frame, and stages their transforms into a sprite batch.
// Scenes can be hot-swapped via the Active flag to switch between different
// views or levels. Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Count returns the number of persisted GameObjects in the scene's registry.
	// Does not include ephemeral objects.
	//
	// Returns:
	//   - int: count of non-ephemeral GameObjects
	Count() int

	// CountEphemeral returns the number of ephemeral GameObjects currently in
	// the scene. Ephemeral objects are dropped at the end of the frame they
	// were staged in.
	//
	// Returns:
	//   - int: count of ephemeral GameObjects
	CountEphemeral() int

	// Add adds a GameObject to the scene and assigns it the next free ID.
	// Objects are staged in insertion order, so objects sharing a layer draw
	// in the order they were added.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the assigned object ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves a GameObject by ID.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the object, or nil if not found
	Get(id uint64) game_object.GameObject

	// Remove removes a GameObject from the scene by ID. No-op if the ID is
	// not present.
	//
	// Parameters:
	//   - id: the object ID to remove
	Remove(id uint64)

	// Clear removes all GameObjects from the scene.
	Clear()

	// Update advances every enabled GameObject by the given time step. Object
	// updates fan out across the scene's worker pool; each object is touched
	// by exactly one worker per frame. No-op when the scene is inactive.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Update(dt float32)

	// Stage pushes every enabled GameObject into the sprite batch as a
	// textured quad, in insertion order. Ephemeral objects are removed from
	// the scene after staging. No-op when the scene is inactive.
	//
	// Parameters:
	//   - batch: the sprite batch to stage into
	Stage(batch sprite.Batch)
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry map[uint64]game_object.GameObject
	order    []uint64 // insertion order, parallel to registry
	nextID   uint64

	// updatePool manages a bounded set of reusable goroutines for the parallel
	// object update phase. Workers persist across frames, avoiding per-frame
	// goroutine spawn/teardown overhead.
	updatePool    worker.DynamicWorkerPool
	updateWorkers int
}

var _ Scene = &scene{}

// NewScene creates a new Scene with the given name. The scene starts inactive;
// call SetActive before driving it from the frame loop.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:            &sync.RWMutex{},
		name:          name,
		registry:      make(map[uint64]game_object.GameObject),
		nextID:        1,
		updateWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the pool after options so WithUpdateWorkers can override the default.
	s.updatePool = worker.NewDynamicWorkerPool(s.updateWorkers, 256, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, obj := range s.registry {
		if !obj.Ephemeral() {
			count++
		}
	}
	return count
}

func (s *scene) CountEphemeral() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, obj := range s.registry {
		if obj.Ephemeral() {
			count++
		}
	}
	return count
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	obj.SetID(id)
	s.registry[id] = obj
	s.order = append(s.order, id)
	return id
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

func (s *scene) removeLocked(id uint64) {
	if _, ok := s.registry[id]; !ok {
		return
	}
	delete(s.registry, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[uint64]game_object.GameObject)
	s.order = s.order[:0]
}

func (s *scene) Update(dt float32) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.active || len(s.order) == 0 {
		return
	}

	// Fan object updates out across the pool. Workers are reused across frames;
	// a WaitGroup provides per-frame barrier sync since pool.Wait() blocks
	// until workers idle-exit, which is unsuitable for frame-rate workloads.
	var wg sync.WaitGroup
	taskID := 0
	for _, id := range s.order {
		obj := s.registry[id]
		if !obj.Enabled() {
			continue
		}

		wg.Add(1)
		objCap := obj // capture for closure
		s.updatePool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				defer wg.Done()
				objCap.Advance(dt)
				return nil, nil
			},
		})
		taskID++
	}
	wg.Wait()
}

func (s *scene) Stage(batch sprite.Batch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}

	var stagedEphemeral []uint64
	for _, id := range s.order {
		obj := s.registry[id]
		if !obj.Enabled() {
			continue
		}

		x, y := obj.Position()
		sx, sy := obj.Scale()
		batch.Push(sprite.TexturedQuad{
			Position:   [2]float32{x, y},
			Dimensions: [2]float32{sx, sy},
			Rotation:   obj.Rotation(),
			Layer:      obj.Layer(),
		})
		if obj.Ephemeral() {
			stagedEphemeral = append(stagedEphemeral, id)
		}
	}

	for _, id := range stagedEphemeral {
		s.removeLocked(id)
	}
}
