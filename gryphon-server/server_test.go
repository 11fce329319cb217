package main

import (
	"context"
	"encoding/json"
	"github.com/vertexlabs/gryphon/bfs"
	"github.com/vertexlabs/gryphon/device"
	"github.com/vertexlabs/gryphon/engine"
	pb "github.com/vertexlabs/gryphon/proto"
	"reflect"
	"testing"
)

func newTestServer() *Server {
	return &Server{
		entityCache: NewEntityCache(),
		dev:         device.New(1 << 30),
	}
}

func buildGraph(t *testing.T, s *Server, guid string, offsets []int32, cols []int32, weights []float64) {
	t.Helper()
	reply, err := s.BuildGraph(context.Background(), &pb.BuildGraphRequest{
		Guid:       guid,
		RowOffsets: offsets,
		ColIndices: cols,
		Weights:    weights,
	})
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}
	if reply.Result.Code != pb.ResultCode_OK {
		t.Fatalf("BuildGraph result: %v", reply.Result)
	}
}

func computeOp(t *testing.T, s *Server, opInst OperationInstance) *pb.Result {
	t.Helper()
	b, err := json.Marshal(opInst)
	if err != nil {
		t.Fatal(err)
	}
	reply, err := s.Compute(context.Background(), &pb.ComputeRequest{Operation: string(b)})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	return reply.Result
}

func getNodeValues(t *testing.T, s *Server, guid string) *pb.GetNodeValuesReply {
	t.Helper()
	reply, err := s.GetNodeValues(context.Background(), &pb.GetNodeValuesRequest{Guid: guid})
	if err != nil {
		t.Fatalf("GetNodeValues(%v) failed: %v", guid, err)
	}
	return reply
}

func getScalarInto(t *testing.T, s *Server, guid string, dst interface{}) {
	t.Helper()
	reply, err := s.GetScalar(context.Background(), &pb.GetScalarRequest{Guid: guid})
	if err != nil {
		t.Fatalf("GetScalar(%v) failed: %v", guid, err)
	}
	sc := Scalar(reply.Scalar)
	if err := sc.LoadTo(dst); err != nil {
		t.Fatalf("Failed to decode scalar %v: %v", guid, err)
	}
}

func TestBuildGraphAndBFS(t *testing.T) {
	s := newTestServer()
	// A directed path 0->1->2->3 and an isolated vertex.
	buildGraph(t, s, "g", []int32{0, 1, 2, 3, 3, 3}, []int32{1, 2, 3}, nil)
	result := computeOp(t, s, OperationInstance{
		GUID:    "op1",
		Inputs:  map[string]GUID{"graph": "g"},
		Outputs: map[string]GUID{"levels": "l", "predecessors": "p", "stats": "st"},
		Operation: OperationDescription{
			Class: "com.vertexlabs.gryphon.operations.BFS",
			Data:  map[string]interface{}{"source": 0, "directed": true},
		},
	})
	if result.Code != pb.ResultCode_OK {
		t.Fatalf("BFS failed: %v", result)
	}
	levels := getNodeValues(t, s, "l")
	if levels.TypeName != "IntAttribute" {
		t.Errorf("Unexpected level type: %v", levels.TypeName)
	}
	if !reflect.DeepEqual(levels.IntValues, []int32{0, 1, 2, 3, bfs.Infinity}) {
		t.Errorf("Bad levels: %v", levels.IntValues)
	}
	if !reflect.DeepEqual(levels.Defined, []bool{true, true, true, true, false}) {
		t.Errorf("Bad level defined flags: %v", levels.Defined)
	}
	predecessors := getNodeValues(t, s, "p")
	if !reflect.DeepEqual(predecessors.IntValues, []int32{-1, 0, 1, 2, -1}) {
		t.Errorf("Bad predecessors: %v", predecessors.IntValues)
	}
	if !reflect.DeepEqual(predecessors.Defined, []bool{false, true, true, true, false}) {
		t.Errorf("Bad predecessor defined flags: %v", predecessors.Defined)
	}
	var stats engine.Stats
	getScalarInto(t, s, "st", &stats)
	if stats.Iterations != 4 || stats.EdgesScanned != 3 {
		t.Errorf("Implausible stats: %+v", stats)
	}
}

func TestBFSUndirectedByDefault(t *testing.T) {
	s := newTestServer()
	buildGraph(t, s, "g", []int32{0, 1, 2, 3, 3, 3}, []int32{1, 2, 3}, nil)
	result := computeOp(t, s, OperationInstance{
		GUID:    "op1",
		Inputs:  map[string]GUID{"graph": "g"},
		Outputs: map[string]GUID{"levels": "l", "predecessors": "p", "stats": "st"},
		Operation: OperationDescription{
			Class: "com.vertexlabs.gryphon.operations.BFS",
			Data:  map[string]interface{}{"source": 3},
		},
	})
	if result.Code != pb.ResultCode_OK {
		t.Fatalf("BFS failed: %v", result)
	}
	levels := getNodeValues(t, s, "l")
	if !reflect.DeepEqual(levels.IntValues, []int32{3, 2, 1, 0, bfs.Infinity}) {
		t.Errorf("Bad levels: %v", levels.IntValues)
	}
}

func TestSSSPValueTypes(t *testing.T) {
	s := newTestServer()
	// 0->1 and 1->2 are cheaper together than the direct 0->2 edge.
	buildGraph(t, s, "g", []int32{0, 2, 3, 4, 4}, []int32{1, 2, 2, 3}, []float64{1, 4, 1, 1})
	result := computeOp(t, s, OperationInstance{
		GUID:    "op1",
		Inputs:  map[string]GUID{"graph": "g"},
		Outputs: map[string]GUID{"distances": "d", "predecessors": "p", "stats": "st"},
		Operation: OperationDescription{
			Class: "com.vertexlabs.gryphon.operations.SSSP",
			Data:  map[string]interface{}{"source": 0, "directed": true, "delta": 2},
		},
	})
	if result.Code != pb.ResultCode_OK {
		t.Fatalf("SSSP failed: %v", result)
	}
	distances := getNodeValues(t, s, "d")
	if distances.TypeName != "DoubleAttribute" {
		t.Errorf("Unexpected distance type: %v", distances.TypeName)
	}
	if !reflect.DeepEqual(distances.DoubleValues, []float64{0, 1, 2, 3}) {
		t.Errorf("Bad distances: %v", distances.DoubleValues)
	}
	predecessors := getNodeValues(t, s, "p")
	if !reflect.DeepEqual(predecessors.IntValues, []int32{-1, 0, 1, 2}) {
		t.Errorf("Bad predecessors: %v", predecessors.IntValues)
	}

	result = computeOp(t, s, OperationInstance{
		GUID:    "op2",
		Inputs:  map[string]GUID{"graph": "g"},
		Outputs: map[string]GUID{"distances": "di", "predecessors": "pi", "stats": "sti"},
		Operation: OperationDescription{
			Class: "com.vertexlabs.gryphon.operations.SSSP",
			Data:  map[string]interface{}{"source": 0, "directed": true, "value_type": "int"},
		},
	})
	if result.Code != pb.ResultCode_OK {
		t.Fatalf("int SSSP failed: %v", result)
	}
	distances = getNodeValues(t, s, "di")
	if distances.TypeName != "IntAttribute" {
		t.Errorf("Unexpected distance type: %v", distances.TypeName)
	}
	if !reflect.DeepEqual(distances.IntValues, []int32{0, 1, 2, 3}) {
		t.Errorf("Bad int distances: %v", distances.IntValues)
	}
}

func TestConnectedComponents(t *testing.T) {
	s := newTestServer()
	// Two directed triangles and an isolated vertex. The labeling ignores
	// edge direction.
	buildGraph(t, s, "g",
		[]int32{0, 1, 2, 3, 4, 5, 6, 6},
		[]int32{1, 2, 0, 4, 5, 3}, nil)
	result := computeOp(t, s, OperationInstance{
		GUID:    "op1",
		Inputs:  map[string]GUID{"graph": "g"},
		Outputs: map[string]GUID{"components": "c", "sizes": "sz", "stats": "st"},
		Operation: OperationDescription{
			Class: "com.vertexlabs.gryphon.operations.ConnectedComponents",
			Data:  map[string]interface{}{},
		},
	})
	if result.Code != pb.ResultCode_OK {
		t.Fatalf("ConnectedComponents failed: %v", result)
	}
	components := getNodeValues(t, s, "c")
	if !reflect.DeepEqual(components.IntValues, []int32{0, 0, 0, 3, 3, 3, 6}) {
		t.Errorf("Bad components: %v", components.IntValues)
	}
	var sizes struct {
		Roots  []int32 `json:"roots"`
		Counts []int64 `json:"counts"`
	}
	getScalarInto(t, s, "sz", &sizes)
	if !reflect.DeepEqual(sizes.Roots, []int32{0, 3, 6}) {
		t.Errorf("Bad component roots: %v", sizes.Roots)
	}
	if !reflect.DeepEqual(sizes.Counts, []int64{3, 3, 1}) {
		t.Errorf("Bad component counts: %v", sizes.Counts)
	}
}

func TestBetweennessCentrality(t *testing.T) {
	s := newTestServer()
	// A diamond: 0->1->3, 0->2->3. Both middle vertices carry half the
	// dependency of the single 0-3 pair.
	buildGraph(t, s, "g", []int32{0, 2, 3, 4, 4}, []int32{1, 2, 3, 3}, nil)
	result := computeOp(t, s, OperationInstance{
		GUID:    "op1",
		Inputs:  map[string]GUID{"graph": "g"},
		Outputs: map[string]GUID{"centrality": "bc", "stats": "st"},
		Operation: OperationDescription{
			Class: "com.vertexlabs.gryphon.operations.BetweennessCentrality",
			Data:  map[string]interface{}{"source": 0, "directed": true},
		},
	})
	if result.Code != pb.ResultCode_OK {
		t.Fatalf("BetweennessCentrality failed: %v", result)
	}
	centrality := getNodeValues(t, s, "bc")
	if !reflect.DeepEqual(centrality.DoubleValues, []float64{0, 0.5, 0.5, 0}) {
		t.Errorf("Bad centrality: %v", centrality.DoubleValues)
	}
}

func TestCountVertices(t *testing.T) {
	s := newTestServer()
	buildGraph(t, s, "g", []int32{0, 1, 2, 3, 3, 3}, []int32{1, 2, 3}, nil)
	result := computeOp(t, s, OperationInstance{
		GUID:    "op1",
		Inputs:  map[string]GUID{"graph": "g"},
		Outputs: map[string]GUID{"count": "c"},
		Operation: OperationDescription{
			Class: "com.vertexlabs.gryphon.operations.CountVertices",
			Data:  map[string]interface{}{},
		},
	})
	if result.Code != pb.ResultCode_OK {
		t.Fatalf("CountVertices failed: %v", result)
	}
	var count int
	getScalarInto(t, s, "c", &count)
	if count != 5 {
		t.Errorf("Expected 5 vertices, got %v", count)
	}
}

func TestReverseAndSymmetrize(t *testing.T) {
	s := newTestServer()
	buildGraph(t, s, "g", []int32{0, 1, 2, 3, 3, 3}, []int32{1, 2, 3}, nil)
	result := computeOp(t, s, OperationInstance{
		GUID:    "op1",
		Inputs:  map[string]GUID{"graph": "g"},
		Outputs: map[string]GUID{"reversed": "r"},
		Operation: OperationDescription{
			Class: "com.vertexlabs.gryphon.operations.ReverseEdges",
			Data:  map[string]interface{}{},
		},
	})
	if result.Code != pb.ResultCode_OK {
		t.Fatalf("ReverseEdges failed: %v", result)
	}
	// BFS on the reversed path reaches everything from the former sink.
	result = computeOp(t, s, OperationInstance{
		GUID:    "op2",
		Inputs:  map[string]GUID{"graph": "r"},
		Outputs: map[string]GUID{"levels": "l", "stats": "st"},
		Operation: OperationDescription{
			Class: "com.vertexlabs.gryphon.operations.BFS",
			Data:  map[string]interface{}{"source": 3, "directed": true, "mark_paths": false},
		},
	})
	if result.Code != pb.ResultCode_OK {
		t.Fatalf("BFS on reversed graph failed: %v", result)
	}
	levels := getNodeValues(t, s, "l")
	if !reflect.DeepEqual(levels.IntValues, []int32{3, 2, 1, 0, bfs.Infinity}) {
		t.Errorf("Bad levels on reversed graph: %v", levels.IntValues)
	}

	result = computeOp(t, s, OperationInstance{
		GUID:    "op3",
		Inputs:  map[string]GUID{"graph": "g"},
		Outputs: map[string]GUID{"symmetric": "sym"},
		Operation: OperationDescription{
			Class: "com.vertexlabs.gryphon.operations.AddReversedEdges",
			Data:  map[string]interface{}{},
		},
	})
	if result.Code != pb.ResultCode_OK {
		t.Fatalf("AddReversedEdges failed: %v", result)
	}
	sym, err := s.getGraph("sym")
	if err != nil {
		t.Fatal(err)
	}
	if sym.CSR.NumEdges() != 6 {
		t.Errorf("Expected 6 edges after symmetrizing, got %v", sym.CSR.NumEdges())
	}
}

func TestResultCodes(t *testing.T) {
	s := newTestServer()

	// Offsets must be nondecreasing.
	reply, err := s.BuildGraph(context.Background(), &pb.BuildGraphRequest{
		Guid:       "bad",
		RowOffsets: []int32{0, 2, 1},
		ColIndices: []int32{0, 0},
	})
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}
	if reply.Result.Code != pb.ResultCode_MALFORMED_GRAPH || reply.Result.Stage != "init" {
		t.Errorf("Expected MALFORMED_GRAPH at init, got %v", reply.Result)
	}

	buildGraph(t, s, "g", []int32{0, 1, 2, 3, 3, 3}, []int32{1, 2, 3}, nil)

	result := computeOp(t, s, OperationInstance{
		GUID:      "op1",
		Operation: OperationDescription{Class: "com.vertexlabs.gryphon.operations.Nonexistent"},
	})
	if result.Code != pb.ResultCode_INTERNAL {
		t.Errorf("Expected INTERNAL for unknown operation, got %v", result)
	}

	result = computeOp(t, s, OperationInstance{
		GUID:    "op2",
		Inputs:  map[string]GUID{"graph": "missing"},
		Outputs: map[string]GUID{"levels": "l", "predecessors": "p", "stats": "st"},
		Operation: OperationDescription{
			Class: "com.vertexlabs.gryphon.operations.BFS",
			Data:  map[string]interface{}{"source": 0},
		},
	})
	if result.Code != pb.ResultCode_NOT_READY || result.Stage != "init" {
		t.Errorf("Expected NOT_READY at init for a missing input, got %v", result)
	}

	result = computeOp(t, s, OperationInstance{
		GUID:    "op3",
		Inputs:  map[string]GUID{"graph": "g"},
		Outputs: map[string]GUID{"distances": "d", "predecessors": "p", "stats": "st"},
		Operation: OperationDescription{
			Class: "com.vertexlabs.gryphon.operations.SSSP",
			Data:  map[string]interface{}{"source": 0, "value_type": "complex"},
		},
	})
	if result.Code != pb.ResultCode_UNSUPPORTED_TYPE || result.Stage != "init" {
		t.Errorf("Expected UNSUPPORTED_TYPE at init, got %v", result)
	}
	if result.Message == "" {
		t.Errorf("Expected a message for the unsupported type")
	}

	// A source outside the graph is a usage error, not a taxonomy case.
	result = computeOp(t, s, OperationInstance{
		GUID:    "op4",
		Inputs:  map[string]GUID{"graph": "g"},
		Outputs: map[string]GUID{"levels": "l", "predecessors": "p", "stats": "st"},
		Operation: OperationDescription{
			Class: "com.vertexlabs.gryphon.operations.BFS",
			Data:  map[string]interface{}{"source": 99},
		},
	})
	if result.Code != pb.ResultCode_INTERNAL {
		t.Errorf("Expected INTERNAL for an out-of-range source, got %v", result)
	}

	// Unparsable operation JSON.
	creply, err := s.Compute(context.Background(), &pb.ComputeRequest{Operation: "{"})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if creply.Result.Code != pb.ResultCode_INTERNAL {
		t.Errorf("Expected INTERNAL for bad JSON, got %v", creply.Result)
	}
}

func TestOperationPanicIsRecovered(t *testing.T) {
	s := newTestServer()
	greeting, err := ScalarFrom("not a graph")
	if err != nil {
		t.Fatal(err)
	}
	s.entityCache.Set("sc", &greeting)
	// BFS will panic in its input getter; the server must survive and
	// report a failure.
	result := computeOp(t, s, OperationInstance{
		GUID:    "op1",
		Inputs:  map[string]GUID{"graph": "sc"},
		Outputs: map[string]GUID{"levels": "l", "predecessors": "p", "stats": "st"},
		Operation: OperationDescription{
			Class: "com.vertexlabs.gryphon.operations.BFS",
			Data:  map[string]interface{}{"source": 0},
		},
	})
	if result.Code != pb.ResultCode_INTERNAL {
		t.Errorf("Expected INTERNAL after an operation panic, got %v", result)
	}
	if result.Message == "" {
		t.Errorf("Expected a panic message")
	}
}

func TestCanCompute(t *testing.T) {
	s := newTestServer()
	cases := []struct {
		class string
		data  map[string]interface{}
		want  bool
	}{
		{"com.vertexlabs.gryphon.operations.BFS", nil, true},
		{"com.vertexlabs.gryphon.operations.Nonexistent", nil, false},
		{"com.vertexlabs.gryphon.operations.SSSP", map[string]interface{}{"value_type": "double"}, true},
		{"com.vertexlabs.gryphon.operations.SSSP", map[string]interface{}{"value_type": "complex"}, false},
	}
	for _, c := range cases {
		b, err := json.Marshal(OperationInstance{
			GUID:      "op",
			Operation: OperationDescription{Class: c.class, Data: c.data},
		})
		if err != nil {
			t.Fatal(err)
		}
		reply, err := s.CanCompute(context.Background(), &pb.CanComputeRequest{Operation: string(b)})
		if err != nil {
			t.Fatalf("CanCompute failed: %v", err)
		}
		if reply.CanCompute != c.want {
			t.Errorf("CanCompute(%v, %v) = %v, want %v", c.class, c.data, reply.CanCompute, c.want)
		}
	}
}

func TestHasInMemoryAndClear(t *testing.T) {
	s := newTestServer()
	buildGraph(t, s, "g", []int32{0, 1, 2, 3, 3, 3}, []int32{1, 2, 3}, nil)
	reply, err := s.HasInMemory(context.Background(), &pb.HasInMemoryRequest{Guid: "g"})
	if err != nil {
		t.Fatal(err)
	}
	if !reply.HasInMemory {
		t.Errorf("Expected the graph to be cached")
	}
	s.entityCache.Clear()
	reply, err = s.HasInMemory(context.Background(), &pb.HasInMemoryRequest{Guid: "g"})
	if err != nil {
		t.Fatal(err)
	}
	if reply.HasInMemory {
		t.Errorf("Expected the cache to be empty after clearing")
	}
}
