package shape

import (
	"math"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv, err := a.Invert()
	if err != nil {
		t.Fatal(err)
	}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(aInv).Transform(a), px, epsilon)
	assertNear(t, py.Transform(aInv).Transform(a), py, epsilon)
	assertNear(t, pxy.Transform(aInv).Transform(a), pxy, epsilon)
	assertNear(t, px.Transform(a).Transform(aInv), px, epsilon)
	assertNear(t, py.Transform(a).Transform(aInv), py, epsilon)
	assertNear(t, pxy.Transform(a).Transform(aInv), pxy, epsilon)
}

func TestAffineInvertDegenerate(t *testing.T) {
	if _, err := Scale(0, 1).Invert(); err != ErrDegenerateTransform {
		t.Fatalf("got %v, expected ErrDegenerateTransform", err)
	}
	if _, err := Scale(1, 0).Invert(); err != ErrDegenerateTransform {
		t.Fatalf("got %v, expected ErrDegenerateTransform", err)
	}
}

func TestAffineRotateAbout(t *testing.T) {
	const epsilon = 1e-9
	aff := RotateAbout(math.Pi, Pt(5, 5))
	assertNear(t, Pt(5, 5).Transform(aff), Pt(5, 5), epsilon)
	assertNear(t, Pt(6, 5).Transform(aff), Pt(4, 5), epsilon)
	assertNear(t, Pt(5, 7).Transform(aff), Pt(5, 3), epsilon)
}

func TestTransformRectBoundingBox(t *testing.T) {
	got := Translate(Vec(10, 20)).TransformRectBoundingBox(NewRect(0, 0, 4, 2))
	diff(t, NewRect(10, 20, 4, 2), got, approx(1e-9))

	rot := Rotate(math.Pi / 2).TransformRectBoundingBox(NewRect(0, 0, 4, 2))
	diff(t, NewRect(-2, 0, 2, 4), rot, approx(1e-9))
}
