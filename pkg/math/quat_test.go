package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)
	if math.Abs(length-1.0) > 1e-9 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Z axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 0, Z: 1}, math.Pi/2)

	expectedW := math.Cos(math.Pi / 4)
	expectedZ := math.Sin(math.Pi / 4)

	if math.Abs(q.W-expectedW) > 1e-9 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(q.Z-expectedZ) > 1e-9 {
		t.Errorf("QuatFromAxisAngle Z: expected %v, got %v", expectedZ, q.Z)
	}

	got := q.Rotate(Vec3{1, 0, 0})
	if !got.ApproxEqual(Vec3{0, 1, 0}, 1e-9) {
		t.Errorf("Rotate((1,0,0)) = %v, want (0 1 0)", got)
	}
}

func TestQuatFromTwoVectors(t *testing.T) {
	tests := []struct {
		name string
		u, v Vec3
	}{
		{"same", Up, Up},
		{"tilted", Up, Vec3{1, 0, 1}.Normalize()},
		{"sideways", Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"unnormalized", Vec3{0, 0, 2}, Vec3{0, 3, 3}},
		{"opposite", Up, Vec3{0, 0, -1}},
		{"opposite x", Vec3{1, 0, 0}, Vec3{-1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromTwoVectors(tt.u, tt.v)
			got := q.Rotate(tt.u.Normalize())
			want := tt.v.Normalize()
			if !got.ApproxEqual(want, 1e-9) {
				t.Errorf("QuatFromTwoVectors(%v, %v) rotates u to %v, want %v", tt.u, tt.v, got, want)
			}
		})
	}
}

func TestQuatMulConjugate(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, 0.7)
	p := q.Mul(q.Conjugate())
	if math.Abs(p.W-1) > 1e-12 || math.Abs(p.X)+math.Abs(p.Y)+math.Abs(p.Z) > 1e-12 {
		t.Errorf("q * conj(q) = %+v, want identity", p)
	}
}
