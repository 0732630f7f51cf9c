// Package enum builds enumerated types at runtime from validated blueprints.
//
// A Builder stores blueprints and builds Enum instances from them. Each Enum
// member is a *Value obtained from a ValueBuilder, which hands out exactly
// one *Value per (enum name, value) pair, so members compare by identity:
//
//	values := enum.NewValueBuilder()
//	builder := enum.NewBuilder(values)
//
//	err := builder.StoreFromArray(map[string]any{
//	    "name": "Compass",
//	    "constant": blueprint.NewConstants(
//	        blueprint.Constant{Name: "NORTH", Value: "n"},
//	        blueprint.Constant{Name: "SOUTH", Value: "s"},
//	    ),
//	})
//
//	compass, err := builder.BuildStored("Compass")
//	north, err := compass.Member("NORTH")
//	north.String() // "n"
//
//	again, _ := builder.BuildStored("Compass")
//	again.MustMember("NORTH") == north // true
//
// # Lifecycle
//
// An enum name moves one way through the states reported by Builder.State:
//
//	unregistered → stored → synthesized → built
//
// Nothing is ever removed. Builders, registries and value caches are plain
// values owned by the caller; there is no package-level state, so tests
// construct fresh ones per case.
//
// # Concurrency
//
// Builder, Registry and ValueBuilder are safe for concurrent use. Storing
// the same name from two goroutines stores it once and reports
// blueprint.ErrDuplicateName to the loser; concurrent first requests for a
// value still yield a single instance.
package enum
