// Package cpmodel is the CP-flavored modeling layer this solver builds on
// top of github.com/nextmv-io/sdk/mip. The spec assumes an underlying CP
// engine offering bounded integer domains, linear (in)equalities, reified
// Boolean implications, element (indexed table lookup), min/max of a
// variable set, and integer multiplication — mip gives us the first two
// natively; this package supplies the rest as linear encodings, the same
// big-M / indicator technique the Order-Fulfillment-with-MIP demo uses for
// its weight-tier selection.
package cpmodel

import (
	"fmt"

	"github.com/nextmv-io/sdk/mip"
)

// Term is one coefficient*variable addend of a linear expression. mip.Bool,
// mip.Int and mip.Float all satisfy mip.Variable, so a single Term type
// covers every variable kind this package touches.
type Term struct {
	Coef float64
	Var  mip.Variable
}

// T is a short constructor for Term, used to keep constraint-building code
// readable when a linear expression has many addends.
func T(coef float64, v mip.Variable) Term {
	return Term{Coef: coef, Var: v}
}

// Builder wraps a mip.Model with a per-prefix label counter.
type Builder struct {
	M      mip.Model
	labels map[string]int
}

// New wraps an existing mip.Model.
func New(m mip.Model) *Builder {
	return &Builder{M: m, labels: make(map[string]int)}
}

// label returns a unique, readable name for a generated variable — purely
// for debugging infeasible models, never inspected by the solver.
func (b *Builder) label(prefix string) string {
	b.labels[prefix]++
	return fmt.Sprintf("%s_%d", prefix, b.labels[prefix])
}

// Linear posts one linear constraint sum(terms) <sense> rhs.
func (b *Builder) Linear(sense mip.Sense, rhs float64, terms ...Term) mip.Constraint {
	c := b.M.NewConstraint(sense, rhs)
	for _, t := range terms {
		c.NewTerm(t.Coef, t.Var)
	}
	return c
}

// boundOf returns a big-M large enough to dominate the given domain width;
// callers pass the tightest width they know so the LP relaxation stays
// reasonably tight.
func boundOf(width int) float64 {
	if width < 1 {
		width = 1
	}
	return float64(width) + 1
}

// ImplyLessOrEqual posts: b=1 -> sum(terms) <= rhs, using a big-M slack
// sized to domainWidth (the maximum possible value of sum(terms)-rhs).
func (b *Builder) ImplyLessOrEqual(cond mip.Bool, rhs float64, domainWidth int, terms ...Term) {
	M := boundOf(domainWidth)
	c := b.M.NewConstraint(mip.LessThanOrEqual, rhs+M)
	for _, t := range terms {
		c.NewTerm(t.Coef, t.Var)
	}
	c.NewTerm(M, cond)
}

// ImplyGreaterOrEqual posts: b=1 -> sum(terms) >= rhs.
func (b *Builder) ImplyGreaterOrEqual(cond mip.Bool, rhs float64, domainWidth int, terms ...Term) {
	M := boundOf(domainWidth)
	c := b.M.NewConstraint(mip.GreaterThanOrEqual, rhs-M)
	for _, t := range terms {
		c.NewTerm(t.Coef, t.Var)
	}
	c.NewTerm(-M, cond)
}

// ImplyEqual posts: b=1 -> sum(terms) == rhs (both directions).
func (b *Builder) ImplyEqual(cond mip.Bool, rhs float64, domainWidth int, terms ...Term) {
	b.ImplyLessOrEqual(cond, rhs, domainWidth, terms...)
	b.ImplyGreaterOrEqual(cond, rhs, domainWidth, terms...)
}

// And reifies the conjunction of bs into a fresh Boolean z such that
// z == 1 iff every element of bs is 1. This is the exact linearization of
// an AND gate: z <= b_i for each i, and z >= sum(b_i) - (n-1). It replaces
// the AddBoolAnd/AddBoolOr pair the Python reference posts by hand at every
// call site (spec §9's "ship a small helper that emits both halves").
func (b *Builder) And(label string, bs ...mip.Bool) mip.Bool {
	z := b.M.NewBool()
	for _, bi := range bs {
		c := b.M.NewConstraint(mip.LessThanOrEqual, 0)
		c.NewTerm(1, z)
		c.NewTerm(-1, bi)
	}
	c := b.M.NewConstraint(mip.GreaterThanOrEqual, float64(1-len(bs)))
	c.NewTerm(1, z)
	for _, bi := range bs {
		c.NewTerm(-1, bi)
	}
	return z
}

// Or reifies the disjunction of bs via De Morgan: ¬(¬b1 ∧ ¬b2 ∧ ...).
func (b *Builder) Or(label string, bs ...mip.Bool) mip.Bool {
	negs := make([]mip.Bool, len(bs))
	for i, bi := range bs {
		negs[i] = b.Neg(bi)
	}
	return b.Neg(b.And(label, negs...))
}

// Not returns the complement of a Boolean as a linear expression term: the
// caller folds `Not(b)` into a larger linear constraint as `1 - b`, adding
// the constant 1 to the right-hand side itself. Unlike Neg it allocates no
// fresh variable.
func Not(b mip.Bool) Term {
	return Term{Coef: -1, Var: b}
}

// EqualInt reifies x == value into a fresh Boolean z over a bounded integer
// variable x with known domain [lo, hi]. Two big-M halves pin z=1 to x==value
// (ImplyEqual); the converse half (z=0 -> x!=value) is encoded with an
// auxiliary side Boolean w picking which direction x strays when unequal —
// the same "three-way" shape CP-SAT compiles NewBoolVar(...).OnlyEnforceIf
// pairs with an added Not-equal disjunction into internally.
func (b *Builder) EqualInt(label string, x mip.Int, value, lo, hi int) mip.Bool {
	return b.EqualExpr(label, hi-lo, float64(value), T(1, x))
}

// EqualExpr reifies sum(terms) == value into a fresh Boolean, width bounding
// the maximum absolute distance sum(terms) can stray from value. EqualInt and
// EqualVars are both special cases of this with a one- or two-term sum.
func (b *Builder) EqualExpr(label string, width int, value float64, terms ...Term) mip.Bool {
	_ = label
	z := b.M.NewBool()
	w := b.M.NewBool()
	M := boundOf(width)

	// z=1 -> sum(terms) == value
	b.ImplyEqual(z, value, width, terms...)

	// z=0, w=1 -> sum(terms) >= value+1 ; z=0, w=0 -> sum(terms) <= value-1.
	// When z=1 both constraints go slack (the M*z term swamps the bound).
	cUpper := b.M.NewConstraint(mip.GreaterThanOrEqual, value+1-M)
	for _, t := range terms {
		cUpper.NewTerm(t.Coef, t.Var)
	}
	cUpper.NewTerm(-M, w)
	cUpper.NewTerm(M, z)

	cLower := b.M.NewConstraint(mip.LessThanOrEqual, value-1)
	for _, t := range terms {
		cLower.NewTerm(t.Coef, t.Var)
	}
	cLower.NewTerm(-M, w)
	cLower.NewTerm(-M, z)

	return z
}

// EqualVars reifies x == y for two bounded integers, each with known domain
// width domainWidth.
func (b *Builder) EqualVars(label string, x, y mip.Int, domainWidth int) mip.Bool {
	return b.EqualExpr(label, 2*domainWidth, 0, T(1, x), T(-1, y))
}

// Neg returns the logical complement of bl as a fresh Boolean bound by
// nb + bl == 1. Used where a negated flag must be passed somewhere that
// expects a mip.Bool rather than the Not(...) linear-expression form.
func (b *Builder) Neg(bl mip.Bool) mip.Bool {
	nb := b.M.NewBool()
	c := b.M.NewConstraint(mip.Equal, 1)
	c.NewTerm(1, nb)
	c.NewTerm(1, bl)
	return nb
}

// Fix pins a Boolean to a constant 0 or 1.
func (b *Builder) Fix(bl mip.Bool, value int) {
	c := b.M.NewConstraint(mip.Equal, float64(value))
	c.NewTerm(1, bl)
}

// FixInt pins an integer variable to a known constant.
func (b *Builder) FixInt(x mip.Int, value int) {
	c := b.M.NewConstraint(mip.Equal, float64(value))
	c.NewTerm(1, x)
}

// Fix0 pins an integer variable to zero — the common case at route/load
// initialization.
func (b *Builder) Fix0(x mip.Int) {
	b.FixInt(x, 0)
}
