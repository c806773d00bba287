package math3d

import (
	"math"
	"testing"
)

func TestRotateZQuarterTurn(t *testing.T) {
	got := RotateZ(-math.Pi / 2).MulTransposeVec3(V3(1, 0, 0))
	if !vecNear(got, V3(0, 1, 0), 1e-12) {
		t.Errorf("RotateZ(90°)·x = %v, want (0,1,0)", got)
	}
}

func TestRotateXYZOrder(t *testing.T) {
	rx, ry, rz := 0.3, -0.7, 1.1
	m := RotateXYZ(rx, ry, rz)

	// Expected closed form of Rz*Ry*Rx, written row by row.
	cx, sx := math.Cos(rx), math.Sin(rx)
	cy, sy := math.Cos(ry), math.Sin(ry)
	cz, sz := math.Cos(rz), math.Sin(rz)
	want := [3][3]float64{
		{cz * cy, cz*sy*sx - sz*cx, cz*sy*cx + sz*sx},
		{sz * cy, sz*sy*sx + cz*cx, sz*sy*cx - cz*sx},
		{-sy, cy * sx, cy * cx},
	}

	for row := range 3 {
		for col := range 3 {
			if got := m[row+col*3]; math.Abs(got-want[row][col]) > 1e-12 {
				t.Errorf("m[%d][%d] = %v, want %v", row, col, got, want[row][col])
			}
		}
	}
}

func TestMulTransposeInvertsRotation(t *testing.T) {
	m := RotateXYZ(0.4, 1.2, -2.1)
	v := V3(1.5, -2, 0.25)

	// Rotating by m is the transpose product of m's transpose.
	mt := Mat3{m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8]}
	back := m.MulTransposeVec3(mt.MulTransposeVec3(v))
	if !vecNear(back, v, 1e-12) {
		t.Errorf("Rᵀ(Rv) = %v, want %v", back, v)
	}
	if l := m.MulTransposeVec3(v).Len(); math.Abs(l-v.Len()) > 1e-12 {
		t.Errorf("|Rᵀv| = %v, want %v", l, v.Len())
	}
}

func TestMulComposesRotations(t *testing.T) {
	got := RotateY(0.2).Mul(RotateY(0.5))
	want := RotateY(0.7)
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Ry(0.2)·Ry(0.5)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
