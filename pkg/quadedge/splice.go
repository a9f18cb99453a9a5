package quadedge

// Splice is the fundamental topological hinge. Splicing two edges
// sharing an origin splits that origin-ring; splicing edges at different
// origins joins them — and simultaneously performs the dual operation on
// the face-rings.
func Splice(a, b *Edge) {
	dualA := a.Onext().Rot()
	dualB := b.Onext().Rot()

	aNext := a.Onext()
	bNext := b.Onext()
	dualANext := dualA.Onext()
	dualBNext := dualB.Onext()

	a.setNext(bNext)
	b.setNext(aNext)
	dualA.setNext(dualBNext)
	dualB.setNext(dualANext)
}

// Connect requires dest(a) != origin(b) and that a, b share a left face.
// It allocates a new edge e, splices it in after a's face and before b,
// labels its endpoints dest(a) -> origin(b), and stamps a fresh
// face-labelling vertex on the newly separated left region (using
// faceLabel, or a's prior left-face label if faceLabel == -1).
func Connect(a, b *Edge, faceLabel int) (*Edge, error) {
	if a.Dest() == b.Origin() {
		return nil, &InvalidStateError{Reason: "Connect requires dest(a) != origin(b)"}
	}
	e := MakeEdge()
	Splice(e, a.Fnext())
	Splice(e.Twin(), b)
	e.SetEndpoints(a.Dest(), b.Origin(), a.InvRot().Origin(), a.InvRot().Origin())

	var newFace *Vertex
	var err error
	if faceLabel != -1 {
		newFace, err = NewVertex(faceLabel)
	} else {
		newFace, err = NewVertex(e.LeftFace().Label())
	}
	if err != nil {
		return nil, err
	}
	e.labelFace(newFace)
	return e, nil
}

// DeleteEdge re-labels every half-edge on e's current left face to e's
// right-face label, then splices e out of its two origin-rings.
// Effectively merges the left and right faces across e.
func DeleteEdge(e *Edge) {
	rightFace := e.Rot().Origin()
	for curr := e; ; curr = curr.Fnext() {
		curr.InvRot().SetEndpoints(rightFace, nil, nil, nil)
		if curr.Fnext() == e {
			break
		}
	}
	Splice(e, e.Oprev())
	Splice(e.Twin(), e.Twin().Oprev())
}

// MergeTwins glues two independent half-edges a, b that identify the
// same geometric edge traversed oppositely (produced transiently during
// Subdivision construction from a face list) into one quad-edge, by
// re-wiring the four onext pointers of the enclosing face-rings and
// re-assigning the twin/invrot slots of a's parent to reference b's
// twin/invrot. Returns an arbitrary edge that still exists after the
// merge (a, whose quad-edge now holds b in its twin slot and b's invrot
// in its rot slot).
func MergeTwins(a, b *Edge) *Edge {
	a.Fnext().setNext(b)
	b.Fnext().setNext(a)

	bTwinOnext := b.Twin().Onext()
	aTwinOnext := a.Twin().Onext()
	a.Twin().Fnext().setNext(bTwinOnext)
	b.Twin().Fnext().setNext(aTwinOnext)

	bRotOnext := b.Rot().Onext()
	aRotOnext := a.Rot().Onext()
	a.Rot().Oprev().setNext(bRotOnext)
	b.Rot().Oprev().setNext(aRotOnext)

	bInvRot := b.InvRot()
	a.setTwin(b)
	a.InvRot().setTwin(bInvRot)

	return a
}

// RotateInEnclosing is used only for Delaunay flips. It requires that e
// has two real (non-exterior) faces. It disconnects e from its origin
// rings and re-splices to the fnext of each side, relabelling endpoints
// so the result is the other diagonal of the quadrilateral formed by the
// two incident triangles, preserving left/right face labels.
func RotateInEnclosing(e *Edge) (*Edge, error) {
	leftFace := e.InvRot().Origin()
	rightFace := e.Rot().Origin()
	if leftFace.Label() == 0 || rightFace.Label() == 0 {
		return nil, &InvalidStateError{Reason: "RotateInEnclosing requires two real faces, not a boundary edge"}
	}
	a := e.Oprev()
	b := e.Twin().Oprev()
	Splice(e, a)
	Splice(e.Twin(), b)
	Splice(e, a.Fnext())
	Splice(e.Twin(), b.Fnext())
	e.SetEndpoints(a.Dest(), b.Dest(), leftFace, rightFace)
	a.InvRot().SetEndpoints(leftFace, nil, nil, nil)
	b.InvRot().SetEndpoints(rightFace, nil, nil, nil)
	return e, nil
}
