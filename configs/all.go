package configs

import (
	"fmt"
	"iter"
)

// All yields the value at path from every file setting it, earlier files first.
func All[T any](loader Loader, path string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for value, err := range loader.IterCueValues(path) {
			var v T
			if err != nil {
				yield(v, err)
				return
			}
			if err := value.Decode(&v); err != nil {
				yield(v, fmt.Errorf("decode %s: %w", path, err))
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Merged concatenates the lists at T's path across every file.
func Merged[T interface {
	~[]E
	Configurable
}, E any](loader Loader) (ret T, err error) {
	var zero T
	for list, err := range All[T](loader, zero.ConfigPath()) {
		if err != nil {
			return nil, err
		}
		ret = append(ret, list...)
	}
	return ret, nil
}
