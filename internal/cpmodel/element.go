package cpmodel

import "github.com/nextmv-io/sdk/mip"

// ElementInt binds a fresh integer variable to table[index], the table
// being a compile-time-known slice of ints (stop_to_loc, stop deltas,
// flattened travel matrices, ...). It is the CP `element` constraint,
// encoded as: one Boolean z_k per table entry reifying `index == k`
// (EqualInt), exactly one z_k active, and the output pinned to
// sum_k table[k]*z_k.
func (b *Builder) ElementInt(index mip.Int, indexLo, indexHi int, table []int) mip.Int {
	lo, hi := table[0], table[0]
	for _, v := range table {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	out := b.M.NewInt(lo, hi)
	b.BindElementInt(index, indexLo, indexHi, table, out)
	return out
}

// BindElementInt is ElementInt for a caller-supplied output variable,
// used when the output slot was already allocated by the Variable Layer
// (e.g. route_loc[v,t], which element(route[v,t], stop_to_loc) fills in).
func (b *Builder) BindElementInt(index mip.Int, indexLo, indexHi int, table []int, out mip.Int) {
	oneOf := b.M.NewConstraint(mip.Equal, 1)
	sumC := b.M.NewConstraint(mip.Equal, 0)
	sumC.NewTerm(-1, out)

	for k := range table {
		if k < indexLo || k > indexHi {
			continue
		}
		z := b.EqualInt("elem", index, k, indexLo, indexHi)
		oneOf.NewTerm(1, z)
		sumC.NewTerm(float64(table[k]), z)
	}
}

// ElementFlat is element() specialized for the flattened travel-time /
// travel-distance matrices addressed as idx = from*numLoc + to (spec §4.3):
// a reified cell(f,t) = (from==f) AND (to==t) per matrix cell, with the
// output pinned to the weighted sum of active cells. Quadratic in numLoc,
// which the spec's own "variable proliferation" note (§9) accepts at the
// instance sizes this core targets.
func (b *Builder) ElementFlat(from, to mip.Int, numLoc int, flat []int) mip.Int {
	lo, hi := flat[0], flat[0]
	for _, v := range flat {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	out := b.M.NewInt(lo, hi)

	rowPicks := make([]mip.Bool, numLoc)
	for f := 0; f < numLoc; f++ {
		rowPicks[f] = b.EqualInt("row", from, f, 0, numLoc-1)
	}
	colPicks := make([]mip.Bool, numLoc)
	for t := 0; t < numLoc; t++ {
		colPicks[t] = b.EqualInt("col", to, t, 0, numLoc-1)
	}

	sumC := b.M.NewConstraint(mip.Equal, 0)
	sumC.NewTerm(-1, out)
	for f := 0; f < numLoc; f++ {
		for t := 0; t < numLoc; t++ {
			cell := b.And("cell", rowPicks[f], colPicks[t])
			sumC.NewTerm(float64(flat[f*numLoc+t]), cell)
		}
	}
	return out
}

// ElementVar is element() over a table of variables rather than constants
// (spec §4.6's load_at_drop: load_v[v, visit_step[delivery(c)]]). Each
// table[k] is folded in through ProductBool so that only the selected
// entry contributes to the weighted sum.
func (b *Builder) ElementVar(index mip.Int, indexLo, indexHi int, table []mip.Int, tableHi int) mip.Int {
	out := b.M.NewInt(0, tableHi)

	oneOf := b.M.NewConstraint(mip.Equal, 1)
	sumC := b.M.NewConstraint(mip.Equal, 0)
	sumC.NewTerm(-1, out)

	for k := indexLo; k <= indexHi && k < len(table); k++ {
		z := b.EqualInt("elemvar", index, k, indexLo, indexHi)
		oneOf.NewTerm(1, z)
		p := b.ProductBool(table[k], tableHi, z)
		sumC.NewTerm(1, p)
	}
	return out
}

// ProductInt binds a fresh variable to a*y for two non-negative bounded
// integers, via binary decomposition of y: y = sum(bit_k * 2^k), and
// a*y = sum((a*bit_k) * 2^k) with each a*bit_k computed exactly by
// ProductBool. This is the integer*integer case of the reference's
// AddMultiplicationEquality (distance-times-load in the objective's
// per-km-per-kg term), exact rather than a McCormick relaxation since the
// corpus's CP model never accepts rounding error in a cost computation.
func (b *Builder) ProductInt(a mip.Int, aHi int, y mip.Int, yHi int) mip.Int {
	nbits := bitsFor(yHi)
	bits := make([]mip.Bool, nbits)
	sumY := b.M.NewConstraint(mip.Equal, 0)
	sumY.NewTerm(-1, y)
	for k := 0; k < nbits; k++ {
		bits[k] = b.M.NewBool()
		sumY.NewTerm(float64(int(1)<<uint(k)), bits[k])
	}

	out := b.M.NewInt(0, aHi*yHi)
	sumP := b.M.NewConstraint(mip.Equal, 0)
	sumP.NewTerm(-1, out)
	for k := 0; k < nbits; k++ {
		pk := b.ProductBool(a, aHi, bits[k])
		sumP.NewTerm(float64(int(1)<<uint(k)), pk)
	}
	return out
}

func bitsFor(n int) int {
	if n <= 0 {
		return 1
	}
	bits := 0
	for (1 << uint(bits)) <= n {
		bits++
	}
	return bits
}

// InSet reifies "x is one of set" into a fresh Boolean: since x takes
// exactly one value, summing the per-member EqualInt indicators is itself
// a 0/1 quantity, so the reification needs no big-M of its own.
func (b *Builder) InSet(x mip.Int, lo, hi int, set []int) mip.Bool {
	z := b.M.NewBool()
	c := b.M.NewConstraint(mip.Equal, 0)
	c.NewTerm(-1, z)
	for _, v := range set {
		if v < lo || v > hi {
			continue
		}
		c.NewTerm(1, b.EqualInt("inset", x, v, lo, hi))
	}
	return z
}

// GreaterThanConst reifies x > threshold into a fresh Boolean over an
// integer x with known domain [lo, hi]. Unlike EqualInt there is no middle
// case — x is always either <= threshold or >= threshold+1 — so one big-M
// implication per direction suffices, no auxiliary side Boolean needed.
func (b *Builder) GreaterThanConst(x mip.Int, threshold, lo, hi int) mip.Bool {
	z := b.M.NewBool()
	width := hi - lo
	if d := threshold + 1 - lo; d > width {
		width = d
	}
	if d := hi - threshold; d > width {
		width = d
	}
	b.ImplyGreaterOrEqual(z, float64(threshold+1), width, T(1, x))
	b.ImplyLessOrEqual(b.Neg(z), float64(threshold), width, T(1, x))
	return z
}

// MaxOf binds a fresh integer variable to max(vars), encoded as: the
// output dominates every input (y >= x_i for all i) plus an indicator
// selection pinning y to the input that actually attains the max
// (y <= x_i + M*(1-z_i), sum z_i == 1) — the linear form of AddMaxEquality.
func (b *Builder) MaxOf(lo, hi int, vars ...mip.Int) mip.Int {
	y := b.M.NewInt(lo, hi)
	width := hi - lo
	M := boundOf(width)

	picks := make([]mip.Bool, len(vars))
	oneOf := b.M.NewConstraint(mip.Equal, 1)
	for i, v := range vars {
		dom := b.M.NewConstraint(mip.GreaterThanOrEqual, 0)
		dom.NewTerm(1, y)
		dom.NewTerm(-1, v)

		z := b.M.NewBool()
		picks[i] = z
		oneOf.NewTerm(1, z)

		upper := b.M.NewConstraint(mip.LessThanOrEqual, M)
		upper.NewTerm(1, y)
		upper.NewTerm(-1, v)
		upper.NewTerm(M, z)
	}
	return y
}

// MinOf is the mirror of MaxOf: y <= x_i for all i, plus an indicator
// selection pinning y to the attaining minimum.
func (b *Builder) MinOf(lo, hi int, vars ...mip.Int) mip.Int {
	y := b.M.NewInt(lo, hi)
	width := hi - lo
	M := boundOf(width)

	picks := make([]mip.Bool, len(vars))
	oneOf := b.M.NewConstraint(mip.Equal, 1)
	for i, v := range vars {
		dom := b.M.NewConstraint(mip.LessThanOrEqual, 0)
		dom.NewTerm(1, y)
		dom.NewTerm(-1, v)

		z := b.M.NewBool()
		picks[i] = z
		oneOf.NewTerm(1, z)

		lower := b.M.NewConstraint(mip.GreaterThanOrEqual, -M)
		lower.NewTerm(1, y)
		lower.NewTerm(-1, v)
		lower.NewTerm(-M, z)
	}
	return y
}

// ProductBool binds a fresh variable to a*b for an integer a in [0, hi]
// and a Boolean b — the McCormick envelope for "integer times indicator",
// the common case of AddMultiplicationEquality(term, [value, flag]) in the
// Python reference's late-penalty and distance-cost computations.
func (b *Builder) ProductBool(a mip.Int, hiA int, bl mip.Bool) mip.Int {
	p := b.M.NewInt(0, hiA)
	M := boundOf(hiA)

	c1 := b.M.NewConstraint(mip.LessThanOrEqual, 0)
	c1.NewTerm(1, p)
	c1.NewTerm(-1, a)

	c2 := b.M.NewConstraint(mip.GreaterThanOrEqual, -M)
	c2.NewTerm(1, p)
	c2.NewTerm(-1, a)
	c2.NewTerm(-M, bl)

	c3 := b.M.NewConstraint(mip.LessThanOrEqual, 0)
	c3.NewTerm(1, p)
	c3.NewTerm(-M, bl)

	return p
}
