package math3d

import (
	"testing"
)

func BenchmarkMat3Mul(b *testing.B) {
	m1 := RotateX(0.3)
	m2 := RotateY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkRotateXYZ(b *testing.B) {
	for b.Loop() {
		_ = RotateXYZ(0.3, 0.6, 0.1)
	}
}

func BenchmarkMat3MulTransposeVec3(b *testing.B) {
	m := RotateXYZ(0.3, 0.6, 0.1)
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = m.MulTransposeVec3(v)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVec3Dot(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Dot(v2)
	}
}

func BenchmarkVec3AddScaled(b *testing.B) {
	ro := V3(0, 0, -6)
	rd := V3(0, 0, 1)

	for b.Loop() {
		_ = ro.AddScaled(rd, 2.5)
	}
}
