// Package anomaly is the scalar numerical core of the Kepler solver: it maps a
// mean anomaly M and an eccentricity ecc ∈ [0, 1) to the eccentric anomaly E
// and the true-anomaly pair (cos f, sin f).
//
// 🚀 What is solved?
//
//	Kepler's equation  E − ecc·sin E = M  (mod 2π).
//
// ✨ How:
//   - Reduce:    M → (mr, s), mr ∈ [0, π], s ∈ {+1, −1} via an exact IEEE remainder.
//   - Starter:   Markley (1995) closed-form cubic estimate E0(mr, ecc).
//   - Refine:    one fifth-order Householder-type correction (Nijenhuis 1991).
//   - Unreduce:  E = er or 2π − er, folded into [0, 2π).
//   - TrueAnomaly: half-angle tangent identity with an apoapsis guard mask.
//
// There is no convergence loop anywhere: every call costs one cube root, one
// square root and one Sincos for E, plus one Sincos for (cos f, sin f),
// independently of the input.
//
// ⚙️ Usage:
//
//	E := anomaly.Eccentric(M, ecc)
//	cosf, sinf := anomaly.TrueAnomaly(E, ecc, anomaly.DefaultTolerance)
//
// Precision:
//
//	Results are accurate to a few ULP of the conditioning of the problem,
//	|dE/dM| = 1/(1 − ecc·cos E). In the corner ecc → 1⁻, mr → 0 the answer
//	stays finite but carries the amplified rounding of M; that is a precision
//	limit, not an error.
//
// All functions are pure and safe for concurrent use. Input validation
// (ecc ∈ [0, 1), finite M) is the caller's job; see package batch.
package anomaly
