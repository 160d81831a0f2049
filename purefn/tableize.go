package purefn

import (
	"fmt"

	"github.com/on-the-ground/memo_ive_go/pure"
)

// ComparableOrStringer is an argument that is either comparable or a fmt.Stringer.
// Stringers are keyed by their String() result, everything else by ==.
type ComparableOrStringer any

func TableizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	opts ...pure.Option,
) func(I1) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1))
		},
		opts,
	)
	return func(i1 I1) O1 {
		return tableized(i1)
	}
}

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	opts ...pure.Option,
) func(I1, I2) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2))
		},
		opts,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

func TableizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3) O1,
	opts ...pure.Option,
) func(I1, I2, I3) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3))
		},
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(i1, i2, i3)
	}
}

func TableizeI4O1[I1, I2, I3, I4 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	opts ...pure.Option,
) func(I1, I2, I3, I4) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
		},
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return tableized(i1, i2, i3, i4)
	}
}

const maxArity = 4

// tableKeys packs up to maxArity arguments into one comparable key.
// Unused slots stay nil. A slot holding an unhashable value panics on lookup.
type tableKeys [maxArity]any

func tableKey(i ComparableOrStringer) any {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}

func keysOf(args []ComparableOrStringer) tableKeys {
	var keys tableKeys
	for i, arg := range args {
		keys[i] = tableKey(arg)
	}
	return keys
}

func tableize[O any](
	pureFn func(...ComparableOrStringer) O,
	opts []pure.Option,
) func(...ComparableOrStringer) O {
	memo := pure.MemoizeBy(
		func(args []ComparableOrStringer) O {
			return pureFn(args...)
		},
		keysOf,
		opts...,
	)
	return func(args ...ComparableOrStringer) O {
		return memo(args)
	}
}
