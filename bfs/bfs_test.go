package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/epigraph/bfs"
	"github.com/katalvlaran/epigraph/core"
)

// contactGraph builds nodes 0..5:
//
//	0 -0.9- 1 -0.3- 2 -0.9- 3,  0 -0.5- 5,  4 isolated.
func contactGraph(t *testing.T) *core.Graph[int] {
	t.Helper()
	nodes := make([]core.Node[int], 6)
	for i := range nodes {
		nodes[i] = core.NewNode(i)
	}
	g := core.NewGraph(nodes)
	for _, e := range []struct {
		a, b int
		w    float64
	}{{0, 1, 0.9}, {1, 2, 0.3}, {2, 3, 0.9}, {0, 5, 0.5}} {
		edge, err := core.NewEdge(core.NewNode(e.a), core.NewNode(e.b), e.w)
		if err != nil {
			t.Fatalf("NewEdge: %v", err)
		}
		if err = g.AddEdge(edge); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS[int](nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := contactGraph(t)
	if _, err := bfs.BFS(g, 42); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth[int](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMinWeight[int](1.5)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("MinWeight>1: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_OrderDepthParent checks layering and parent links.
func TestBFS_OrderDepthParent(t *testing.T) {
	res, err := bfs.BFS(contactGraph(t), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 5, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := map[int]int{0: 0, 1: 1, 5: 1, 2: 2, 3: 3}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if want := map[int]int{1: 0, 5: 0, 2: 1, 3: 2}; !reflect.DeepEqual(res.Parent, want) {
		t.Errorf("Parent = %v; want %v", res.Parent, want)
	}
	if res.Start != 0 {
		t.Errorf("Start = %d; want 0", res.Start)
	}

	path, err := res.PathTo(3)
	if err != nil {
		t.Fatalf("PathTo(3): %v", err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(3) = %v; want %v", path, want)
	}
	if path, _ = res.PathTo(0); !reflect.DeepEqual(path, []int{0}) {
		t.Errorf("PathTo(0) = %v; want [0]", path)
	}
	if _, err = res.PathTo(4); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(4): want ErrNoPath, got %v", err)
	}
}

// TestBFS_MinWeight drops weak contacts.
func TestBFS_MinWeight(t *testing.T) {
	res, err := bfs.BFS(contactGraph(t), 0, bfs.WithMinWeight[int](0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 5}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_MaxDepthAndFilter covers depth limiting and neighbor filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := contactGraph(t)

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth[int](1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 5}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth=1 Order = %v; want %v", res.Order, want)
	}

	res, err = bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 5 }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks verifies hook ordering and OnVisit abort.
func TestBFS_Hooks(t *testing.T) {
	g := contactGraph(t)
	var enq, deq []int
	_, err := bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(id int, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id int, _ int) { deq = append(deq, id) }),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 1, 5, 2, 3}
	if !reflect.DeepEqual(enq, want) || !reflect.DeepEqual(deq, want) {
		t.Errorf("enqueue=%v dequeue=%v; want %v", enq, deq, want)
	}

	stop := errors.New("stop")
	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id int, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want stop error, got %v", err)
	}
	if want := []int{0, 1, 5, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order at abort = %v; want %v", res.Order, want)
	}
}

// TestBFS_ContextCancel aborts before the first visit.
func TestBFS_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(contactGraph(t), 0, bfs.WithContext[int](ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestComponents groups nodes into connected parts.
func TestComponents(t *testing.T) {
	g := contactGraph(t)

	comps, err := bfs.Components(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := [][]int{{0, 1, 2, 3, 5}, {4}}; !reflect.DeepEqual(comps, want) {
		t.Errorf("Components = %v; want %v", comps, want)
	}

	comps, err = bfs.Components(g, bfs.WithMinWeight[int](0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := [][]int{{0, 1, 5}, {2, 3}, {4}}; !reflect.DeepEqual(comps, want) {
		t.Errorf("Components(MinWeight=0.5) = %v; want %v", comps, want)
	}

	hist, err := bfs.SizeHistogram(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := map[int]int{5: 1, 1: 1}; !reflect.DeepEqual(hist, want) {
		t.Errorf("SizeHistogram = %v; want %v", hist, want)
	}

	if _, err = bfs.Components[int](nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
}
