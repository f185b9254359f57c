package bitmatrix

// GeneratorOf constructs the systematic generator matrix G = [I_k | P] for a
// parity-check matrix H of shape (m, n) with n > m and k = n - m, where
// P = Aᵀ·(Bᵀ)⁻¹, A = H[:, 0:k], B = H[:, k:n].
//
// Stage 1 (Validate): n > m, so k = n-m > 0.
// Stage 2 (Split): A = H.Columns(0,k), B = H.Columns(k,n).
// Stage 3 (Reduce): Gauss–Jordan B to identity, mirroring onto A; if B is
// singular, fail with ErrNonSystematic. The mirrored result is B⁻¹·A, whose
// transpose is P = Aᵀ·(Bᵀ)⁻¹.
// Stage 4 (Assemble): G = HorizConcat(I_k, P).
// Complexity: O(m^2*k + m^3).
func GeneratorOf(H *Matrix) (*Matrix, error) {
	m, n := H.r, H.c
	if n <= m {
		return nil, matrixErrorf("GeneratorOf", ErrInvalidShape, "H is %dx%d, need n>m", m, n)
	}
	k := n - m

	A, err := H.Columns(0, k)
	if err != nil {
		return nil, err
	}
	B, err := H.Columns(k, n)
	if err != nil {
		return nil, err
	}

	workB := B.Clone()
	workA := A.Clone()
	full := gaussJordan(workB, workA)

	id, _ := Identity(m)
	if !full || !workB.Equal(id) {
		return nil, matrixErrorf("GeneratorOf", ErrNonSystematic, "right block of H is singular")
	}

	P := workA.Transpose() // (B⁻¹A)ᵀ = Aᵀ(Bᵀ)⁻¹

	ik, err := Identity(k)
	if err != nil {
		return nil, err
	}
	return HorizConcat(ik, P)
}
