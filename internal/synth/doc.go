// Package synth implements accessor synthesis: given one privacy-marked
// field declaration, it produces a public getter declaration as an
// ordered list of typed code fragments.
//
// Each call is pure and independent: no shared state, no ordering
// dependency between fields in a batch. Exactly one declaration is
// produced per call, plus at most one diagnostic when the target field
// is not privacy-marked. The diagnostic does not suppress the
// declaration; callers get both and decide what to surface.
package synth
