package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func TestNew(t *testing.T) {
	a := New("guy")

	if a.Label != "guy" || a.State != Idle || a.Angle != 0 {
		t.Fatalf("unexpected actor %+v", a)
	}
	if a.Model != mgl32.Ident4() {
		t.Fatalf("model = %v, want identity", a.Model)
	}
	if a.Position != (mgl32.Vec3{}) || a.Updated() {
		t.Fatalf("fresh actor should sit at the origin, not updated")
	}
}

func TestComposeModelMatrixOrder(t *testing.T) {
	p := mgl32.Vec3{1, 2, 3}
	s := mgl32.Vec3{2, 2, 2}
	theta := float32(math.Pi / 2)

	m := ComposeModelMatrix(p, s, theta)

	// RotateY(90°) takes +X to -Z, scaling doubles it, then it is moved to p
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	want := mgl32.Vec3{1, 2, 1}
	if !got.ApproxEqualThreshold(want, eps) {
		t.Fatalf("vertex -> %v, want %v", got, want)
	}

	expected := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(2, 2, 2)).Mul4(mgl32.HomogRotate3DY(theta))
	if !m.ApproxEqualThreshold(expected, eps) {
		t.Fatalf("model = %v, want %v", m, expected)
	}

	// Any other order lands elsewhere
	wrong := mgl32.HomogRotate3DY(theta).Mul4(mgl32.Scale3D(2, 2, 2)).Mul4(mgl32.Translate3D(1, 2, 3))
	if wrong.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3().ApproxEqualThreshold(want, eps) {
		t.Fatal("reversed composition should not match")
	}
}

func TestLookAtSelfIsZeroAngle(t *testing.T) {
	a := New("self")
	a.Position = mgl32.Vec3{4, 1, -2}

	a.LookAt(a.Position, mgl32.Vec3{1, 1, 1})

	if a.Angle != 0 {
		t.Fatalf("angle = %v, want 0", a.Angle)
	}
	for i, v := range a.Model {
		if math.IsNaN(float64(v)) {
			t.Fatalf("model[%d] is NaN", i)
		}
	}
}

func TestLookAtOperandOrder(t *testing.T) {
	a := New("a")
	a.Position = mgl32.Vec3{1, 0, 0}

	a.LookAt(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})

	// atan2(1-0, 0-0) = +pi/2
	if !mgl32.FloatEqualThreshold(a.Angle, math.Pi/2, eps) {
		t.Fatalf("angle = %v, want pi/2", a.Angle)
	}
	if !a.Updated() {
		t.Fatal("LookAt should mark the actor updated")
	}
	want := ComposeModelMatrix(a.Position, mgl32.Vec3{1, 1, 1}, a.Angle)
	if !a.Model.ApproxEqualThreshold(want, eps) {
		t.Fatalf("model = %v, want %v", a.Model, want)
	}
}

func TestLookAtFacesTarget(t *testing.T) {
	a := New("a")
	a.Position = mgl32.Vec3{3, 0, -4}
	target := mgl32.Vec3{0, 0, 3}

	a.LookAt(target, mgl32.Vec3{1, 1, 1})

	// The quad's +Z normal, rotated into world space, points away from the
	// target along the horizontal actor-minus-target direction
	normal := mgl32.HomogRotate3DY(a.Angle).Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3()
	away := a.Position.Sub(target)
	away[1] = 0
	if !normal.ApproxEqualThreshold(away.Normalize(), eps) {
		t.Fatalf("normal = %v, want %v", normal, away.Normalize())
	}
}

func TestDifferentPositionsDifferentAngles(t *testing.T) {
	camera := mgl32.Vec3{0, 0, 3}

	a := New("a")
	a.Position = mgl32.Vec3{1, 0, 1}
	b := New("b")
	b.Position = mgl32.Vec3{-2, 0, 5}

	a.LookAt(camera, mgl32.Vec3{1, 1, 1})
	b.LookAt(camera, mgl32.Vec3{1, 1, 1})

	if mgl32.FloatEqualThreshold(a.Angle, b.Angle, eps) {
		t.Fatalf("angles should differ, both %v", a.Angle)
	}
}

func TestUpdateFreshActorIsNoop(t *testing.T) {
	a := New("fresh")
	a.Update()
	if a.Model != mgl32.Ident4() {
		t.Fatalf("model = %v, want identity", a.Model)
	}
}

func TestUpdateAfterMoveTo(t *testing.T) {
	a := New("mover")
	a.MoveTo(mgl32.Vec3{2, 0, -1})
	a.Update()

	got := a.Model.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	if !got.ApproxEqualThreshold(mgl32.Vec3{2, 0, -1}, eps) {
		t.Fatalf("origin -> %v", got)
	}

	// Steady state: repeated updates do not translate again
	before := a.Model
	a.Update()
	a.Update()
	if !a.Model.ApproxEqualThreshold(before, eps) {
		t.Fatal("Update is not idempotent")
	}
}

func TestUpdateKeepsLookAtOrientation(t *testing.T) {
	a := New("a")
	a.Position = mgl32.Vec3{1, 0, 1}
	scale := mgl32.Vec3{0.5, 2, 0.5}
	a.LookAt(mgl32.Vec3{0, 0, 3}, scale)
	after := a.Model

	a.Update()
	if !a.Model.ApproxEqualThreshold(after, eps) {
		t.Fatalf("Update changed LookAt result: %v -> %v", after, a.Model)
	}
}

func TestUpdateBatch(t *testing.T) {
	a := New("a")
	b := New("b")
	a.MoveTo(mgl32.Vec3{1, 0, 0})
	b.MoveTo(mgl32.Vec3{0, 0, 1})

	UpdateBatch([]*Actor{&a, nil, &b})

	if got := a.Model.Col(3).Vec3(); !got.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, eps) {
		t.Fatalf("a translation = %v", got)
	}
	if got := b.Model.Col(3).Vec3(); !got.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, eps) {
		t.Fatalf("b translation = %v", got)
	}
}

func TestUpdateBatchEmpty(t *testing.T) {
	UpdateBatch(nil)
	UpdateBatch([]*Actor{})

	a := New("a")
	a.MoveTo(mgl32.Vec3{1, 1, 1})
	UpdateBatch([]*Actor{nil, &a})
	if a.Model != mgl32.Ident4() {
		t.Fatal("list starting with nil should not be processed")
	}
}
