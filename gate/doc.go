// Package gate defines the static catalog of quantum operations: the closed
// enumerations for every operation family (gates, generators, matrix
// operations and their controlled counterparts), the bidirectional name
// tables, wire arities, parameter counts, generator coefficients and the
// row-major matrix builders.
//
// All tables are initialized at package init and never mutated afterwards,
// so they are safe for concurrent read access by construction.
//
// Wire ordering is big-endian: the first wire of an operation maps to the
// most significant bit of the basis-state index.
package gate
