package generic

import (
	"fmt"
	"reflect"
	"slices"
)

// Errors returns the chain ending at start, oldest error first and start last.
// The chain is followed through GetPrevious, so it may contain Error
// implementations other than the one returned by New. It returns
// ErrCyclicChain if an error is reached twice, ErrIncomparable if an error
// cannot be tracked, and nil if start is nil.
func Errors(start Error) ([]Error, error) {
	if start == nil {
		return nil, nil
	}
	visited := make(map[Error]struct{})
	var chain []Error
	for current := start; current != nil; current = current.GetPrevious() {
		if !reflect.TypeOf(current).Comparable() {
			return nil, fmt.Errorf("%w: %T", ErrIncomparable, current)
		}
		if _, exists := visited[current]; exists {
			return nil, ErrCyclicChain
		}
		visited[current] = struct{}{}
		chain = append(chain, current)
	}
	slices.Reverse(chain)
	return chain, nil
}

// First returns the oldest error of the chain ending at start, the one without
// previous error.
func First(start Error) (Error, error) {
	chain, err := Errors(start)
	if err != nil || len(chain) == 0 {
		return nil, err
	}
	return chain[0], nil
}
