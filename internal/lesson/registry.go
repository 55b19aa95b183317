package lesson

import "fmt"

// Registry holds lessons by name and remembers registration order.
type Registry struct {
	lessons map[string]Lesson
	order   []string
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		lessons: make(map[string]Lesson),
	}
}

// Register adds a lesson, replacing any lesson with the same name in place.
func (r *Registry) Register(l Lesson) {
	if _, exists := r.lessons[l.Name]; !exists {
		r.order = append(r.order, l.Name)
	}
	r.lessons[l.Name] = l
}

// Get retrieves a lesson by name
func (r *Registry) Get(name string) (Lesson, error) {
	l, ok := r.lessons[name]
	if !ok {
		return Lesson{}, fmt.Errorf("lesson not found: %s", name)
	}
	return l, nil
}

// List returns all registered lessons in registration order
func (r *Registry) List() []Lesson {
	out := make([]Lesson, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.lessons[name])
	}
	return out
}

// Select resolves names in the given order. No names selects every lesson.
func (r *Registry) Select(names ...string) ([]Lesson, error) {
	if len(names) == 0 {
		return r.List(), nil
	}
	out := make([]Lesson, 0, len(names))
	for _, name := range names {
		l, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}
