package graph

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/paperboard/paperboard/pkg/geometry"
)

func buildLayoutFixture(t *testing.T) *Graph {
	t.Helper()
	g := New()
	for _, id := range []string{"a", "b", "c"} {
		if err := g.AddElement(NewElement(id)); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.SetElementPosition("a", geometry.Vector{X: 10, Y: 20}); err != nil {
		t.Fatal(err)
	}
	if err := g.SetElementState("b", State{"expanded": true}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddLink(NewLink("ab", "knows", "a", "b")); err != nil {
		t.Fatal(err)
	}
	if err := g.AddLink(NewLink("bc", "likes", "b", "c")); err != nil {
		t.Fatal(err)
	}
	if err := g.SetLinkVertices("ab", []geometry.Vector{{X: 5, Y: 5}}); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestLayoutRoundTrip(t *testing.T) {
	g := buildLayoutFixture(t)

	data, err := MarshalLayout(g)
	if err != nil {
		t.Fatalf("MarshalLayout: %v", err)
	}

	decoded, err := ReadLayout(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadLayout: %v", err)
	}

	if decoded.ElementCount() != g.ElementCount() {
		t.Errorf("element count = %d, want %d", decoded.ElementCount(), g.ElementCount())
	}
	if decoded.LinkCount() != g.LinkCount() {
		t.Errorf("link count = %d, want %d", decoded.LinkCount(), g.LinkCount())
	}

	// Re-serializing without edits must be byte-identical.
	again, err := MarshalLayout(decoded)
	if err != nil {
		t.Fatalf("MarshalLayout(decoded): %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("round trip is not stable:\nfirst:  %s\nsecond: %s", data, again)
	}

	if err := decoded.Validate(); err != nil {
		t.Errorf("Validate(decoded): %v", err)
	}
}

func TestLayoutRoundTripPreservesStructure(t *testing.T) {
	g := buildLayoutFixture(t)
	decoded, err := ToGraph(FromGraph(g))
	if err != nil {
		t.Fatalf("ToGraph: %v", err)
	}

	a, ok := decoded.Element("a")
	if !ok {
		t.Fatal("element a missing after round trip")
	}
	if !a.Position().Equal(geometry.Vector{X: 10, Y: 20}) {
		t.Errorf("position = %v, want {10 20}", a.Position())
	}

	ab, ok := decoded.Link("ab")
	if !ok {
		t.Fatal("link ab missing after round trip")
	}
	if ab.TypeID() != "knows" || ab.SourceID() != "a" || ab.TargetID() != "b" {
		t.Errorf("link ab = (%s, %s, %s)", ab.TypeID(), ab.SourceID(), ab.TargetID())
	}
	if len(ab.Vertices()) != 1 || !ab.Vertices()[0].Equal(geometry.Vector{X: 5, Y: 5}) {
		t.Errorf("vertices = %v, want [{5 5}]", ab.Vertices())
	}

	if !reflect.DeepEqual(decoded.ZOrder(), g.ZOrder()) {
		t.Errorf("z-order = %v, want %v", decoded.ZOrder(), g.ZOrder())
	}

	b, _ := decoded.Element("b")
	if v, ok := b.State()["expanded"]; !ok || v != true {
		t.Errorf("state bag = %v, want expanded=true", b.State())
	}
}

func TestLayoutFileIO(t *testing.T) {
	g := buildLayoutFixture(t)
	path := t.TempDir() + "/layout.json"

	if err := WriteLayoutFile(g, path); err != nil {
		t.Fatalf("WriteLayoutFile: %v", err)
	}
	decoded, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile: %v", err)
	}
	if decoded.ElementCount() != 3 || decoded.LinkCount() != 2 {
		t.Errorf("decoded %d elements, %d links; want 3, 2", decoded.ElementCount(), decoded.LinkCount())
	}
}

func TestReadLayoutRejectsMalformed(t *testing.T) {
	if _, err := ReadLayout(bytes.NewReader([]byte("{"))); err == nil {
		t.Error("truncated JSON should fail")
	}

	dangling := []byte(`{"elements":[{"id":"a","position":{"x":0,"y":0}}],` +
		`"links":[{"id":"l","typeId":"t","sourceId":"a","targetId":"ghost"}]}`)
	if _, err := ReadLayout(bytes.NewReader(dangling)); err == nil {
		t.Error("layout with a dangling endpoint should fail validation")
	}
}
