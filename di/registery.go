package di

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrRegistryPanic is returned if a provider constructor panics during Resolve.
var ErrRegistryPanic = errors.New("registry: panic during Resolve")

// UnknownNameError is returned by Resolve when no constructor is registered
// under Name. Known lists the registered names, sorted.
type UnknownNameError struct {
	Name  string
	Known []string
}

// Error implements the error interface.
func (e UnknownNameError) Error() string {
	// Example: di: unknown provider "bitcoin" (known: paypal, stripe)
	return "di: unknown provider " + strconv.Quote(e.Name) + " (known: " + strings.Join(e.Known, ", ") + ")"
}

// NilConstructorError is returned by Resolve when the name was registered
// with a nil constructor.
type NilConstructorError struct{ Name string }

// Error implements the error interface.
func (e NilConstructorError) Error() string {
	// Example: di: nil constructor for provider "stripe"
	return "di: nil constructor for provider " + strconv.Quote(e.Name)
}

// Registry maps names to provider constructors.
//
// It is intentionally:
// - filled once at the composition root
// - read-only afterwards
// - unaware of any relation between its entries
//
// Expected usage:
//
//	gw, err := reg.Resolve(cfg.Gateway)
type Registry[V any] struct {
	ctors map[string]func() V
}

func NewRegistry[V any]() *Registry[V] {
	return &Registry[V]{ctors: map[string]func() V{}}
}

// Provide stores a constructor under a name and returns the registry for chaining.
// Providing the same name twice replaces the earlier constructor.
func (r *Registry[V]) Provide(name string, ctor func() V) *Registry[V] {
	r.ctors[name] = ctor
	return r
}

// Has reports whether a constructor is registered under name.
func (r *Registry[V]) Has(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.ctors[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry[V]) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve builds a fresh provider for name.
//
// It returns UnknownNameError for a missing name, NilConstructorError for a nil
// constructor and an error wrapping ErrRegistryPanic if the constructor panics.
func (r *Registry[V]) Resolve(name string) (val V, err error) {
	ctor, ok := r.lookup(name)
	if !ok {
		return val, UnknownNameError{Name: name, Known: r.Names()}
	}
	if ctor == nil {
		return val, NilConstructorError{Name: name}
	}

	defer func() {
		if rec := recover(); rec != nil {
			var zero V
			val = zero
			err = fmt.Errorf("%w: provider %q: %v", ErrRegistryPanic, name, rec)
		}
	}()

	return ctor(), nil
}

// MustResolve returns the provider or panics with the Resolve error.
// Useful in examples/tests where a missing name should fail fast.
func (r *Registry[V]) MustResolve(name string) V {
	v, err := r.Resolve(name)
	if err != nil {
		panic(err)
	}
	return v
}

func (r *Registry[V]) lookup(name string) (func() V, bool) {
	if r == nil {
		return nil, false
	}
	ctor, ok := r.ctors[name]
	return ctor, ok
}
