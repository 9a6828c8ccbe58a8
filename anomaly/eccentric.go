// SPDX-License-Identifier: MIT

package anomaly

// Eccentric solves Kepler's equation E − ecc·sin E = M for the eccentric
// anomaly and returns E ∈ [0, 2π).
//
// Stage 1 (Reduce):   M → (mr, s) with mr ∈ [0, π].
// Stage 2 (Starter):  closed-form estimate on the reduced branch.
// Stage 3 (Refine):   one fixed fifth-order correction.
// Stage 4 (Unreduce): back to [0, 2π) using s.
//
// Preconditions (unchecked): M finite, 0 ≤ ecc < 1.
// Complexity: O(1), constant cost for every input.
func Eccentric(M, ecc float64) float64 {
	mr, s := Reduce(M)
	er := Refine(mr, ecc, Starter(mr, ecc))

	return Unreduce(er, s)
}

// Solve returns E together with (cos f, sin f) for one element, using tol for
// the apoapsis guard in TrueAnomaly.
func Solve(M, ecc, tol float64) (E, cosf, sinf float64) {
	E = Eccentric(M, ecc)
	cosf, sinf = TrueAnomaly(E, ecc, tol)

	return E, cosf, sinf
}
