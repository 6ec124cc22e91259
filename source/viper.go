package source

import (
	"sort"

	"github.com/spf13/viper"
)

// Viper adapts a *viper.Viper instance as a root source, so programs that
// already centralize file/env/flag configuration in viper can hang the
// override machinery off it.
type Viper struct {
	v *viper.Viper
}

// FromViper wraps v. A nil v behaves as an empty source.
func FromViper(v *viper.Viper) *Viper {
	return &Viper{v: v}
}

// Lookup resolves key through viper.
func (s *Viper) Lookup(key string) (any, bool) {
	if s == nil || s.v == nil {
		return nil, false
	}
	if !s.v.IsSet(key) {
		return nil, false
	}
	return s.v.Get(key), true
}

// Keys returns viper's known keys in sorted order.
func (s *Viper) Keys() []string {
	if s == nil || s.v == nil {
		return nil
	}
	keys := s.v.AllKeys()
	sort.Strings(keys)
	return keys
}
