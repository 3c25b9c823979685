package mockgateway

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"smscctl/internal/operator"
)

var (
	// ErrNameTaken is returned when another operator already uses the name.
	ErrNameTaken = errors.New("operator name already exists")
	// ErrNotFound is returned for an unknown operator id.
	ErrNotFound = errors.New("operator not found")
)

// StatusActive is the status every stored operator reports.
const StatusActive = "active"

// Registry is the in-memory operator table behind the stand-in gateway.
type Registry struct {
	mu     sync.Mutex
	nextID int
	ops    []operator.Operator
}

// NewRegistry returns an empty registry; ids start at 1.
func NewRegistry() *Registry {
	return &Registry{nextID: 1}
}

// Seed preloads the two operators the production backend ships with.
func (r *Registry) Seed() {
	_, _ = r.Create(operator.Payload{Name: "Operator 1", Priority: 1, Weight: 100, MaxTPS: 1000})
	_, _ = r.Create(operator.Payload{Name: "Operator 2", Priority: 2, Weight: 50, MaxTPS: 500})
}

// List returns the operators in insertion order.
func (r *Registry) List() []operator.Operator {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]operator.Operator, len(r.ops))
	copy(out, r.ops)
	return out
}

// Create stores a new operator under the next sequential id.
func (r *Registry) Create(p operator.Payload) (operator.Operator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTakenLocked(p.Name, -1) {
		return operator.Operator{}, ErrNameTaken
	}
	op := p.Apply(operator.Operator{
		ID:     operator.ID(strconv.Itoa(r.nextID)),
		Status: StatusActive,
	})
	r.nextID++
	r.ops = append(r.ops, op)
	return op, nil
}

// Update replaces the mutable fields of operator id.
func (r *Registry) Update(id int, p operator.Payload) (operator.Operator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return operator.Operator{}, ErrNotFound
	}
	if r.nameTakenLocked(p.Name, idx) {
		return operator.Operator{}, ErrNameTaken
	}
	r.ops[idx] = p.Apply(r.ops[idx])
	return r.ops[idx], nil
}

// Delete removes operator id.
func (r *Registry) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return ErrNotFound
	}
	r.ops = append(r.ops[:idx], r.ops[idx+1:]...)
	return nil
}

func (r *Registry) indexLocked(id int) int {
	want := operator.ID(strconv.Itoa(id))
	for i, op := range r.ops {
		if op.ID == want {
			return i
		}
	}
	return -1
}

// Names compare case-insensitively after trimming.
func (r *Registry) nameTakenLocked(name string, skip int) bool {
	name = strings.TrimSpace(name)
	for i, op := range r.ops {
		if i != skip && strings.EqualFold(strings.TrimSpace(op.Name), name) {
			return true
		}
	}
	return false
}
