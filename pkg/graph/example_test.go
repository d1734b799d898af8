package graph_test

import (
	"fmt"

	"github.com/paperboard/paperboard/pkg/graph"
)

func ExampleGraph() {
	g := graph.New()
	_ = g.AddElement(graph.NewElement("alice"))
	_ = g.AddElement(graph.NewElement("bob"))
	_ = g.AddLink(graph.NewLink("k1", "knows", "alice", "bob"))

	fmt.Println("Elements:", g.ElementCount())
	fmt.Println("Links:", g.LinkCount())
	for _, l := range g.ElementLinks("alice") {
		fmt.Printf("Incident: %s -> %s\n", l.SourceID(), l.TargetID())
	}
	// Output:
	// Elements: 2
	// Links: 1
	// Incident: alice -> bob
}

func ExampleGraph_Subscribe() {
	g := graph.New()
	unsubscribe := g.Subscribe(func(ev graph.Event) {
		fmt.Println("Event:", ev.Kind)
	})
	defer unsubscribe()

	_ = g.AddElement(graph.NewElement("alice"))
	_ = g.RemoveElement("alice")
	// Output:
	// Event: element-added
	// Event: element-removed
}

func ExampleGraph_FindLink() {
	g := graph.New()
	_ = g.AddElement(graph.NewElement("alice"))
	_ = g.AddElement(graph.NewElement("bob"))
	_ = g.AddLink(graph.NewLink("k1", "knows", "alice", "bob"))

	if _, ok := g.FindLink("knows", "alice", "bob"); ok {
		fmt.Println("duplicate would be rejected")
	}
	// Output:
	// duplicate would be rejected
}
