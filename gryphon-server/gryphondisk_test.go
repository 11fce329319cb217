package main

import (
	"context"
	"github.com/vertexlabs/gryphon/device"
	"github.com/vertexlabs/gryphon/graph"
	pb "github.com/vertexlabs/gryphon/proto"
	"io/ioutil"
	"log"
	"os"
	"reflect"
	"testing"
)

func TestEntityIO(t *testing.T) {
	dir, err := ioutil.TempDir("", "example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	weighted, err := graph.Build([]int32{0, 1, 2, 4, 4}, []graph.VertexID{1, 0, 0, 1}, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	unweighted, err := graph.Build([]int32{0, 2, 3, 3}, []graph.VertexID{1, 2, 0}, nil)
	if err != nil {
		t.Fatal(err)
	}

	data := map[string]Entity{}
	data["WeightedGraph"] = &Graph{CSR: weighted}
	data["UnweightedGraph"] = &Graph{CSR: unweighted}
	data["IntAttribute"] = &IntAttribute{
		Values:  []int32{5, 0, 7, 0},
		Defined: []bool{true, false, true, false},
	}
	data["LongAttribute"] = &LongAttribute{
		Values:  []int64{1, 2, 3, 4},
		Defined: []bool{true, true, true, true},
	}
	data["FloatAttribute"] = &FloatAttribute{
		Values:  []float32{1.5, 0, 2.25, 0},
		Defined: []bool{true, false, true, false},
	}
	data["DoubleAttribute"] = &DoubleAttribute{
		Values:  []float64{20.3, 18.2, 50.3, 2.0},
		Defined: []bool{true, true, true, true},
	}

	for g, entity := range data {
		// We use readable "guids" but it doesn't really matter
		guid := GUID(g)
		err = saveToOrderedDisk(entity, dir, guid)
		if err != nil {
			t.Errorf("Error while saving %v: %v", guid, err)
		}
		loaded, err := loadFromOrderedDisk(dir, guid)
		if err != nil {
			t.Errorf("Error while loading %v: %v", guid, err)
		}
		if !reflect.DeepEqual(entity, loaded) {
			t.Errorf("Entities (saved) %v and %v (reloaded) differ", entity, loaded)
		}
	}
}

func TestScalarIO(t *testing.T) {
	dir, err := ioutil.TempDir("", "example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	scalarValues := make(map[string]interface{})
	scalarValues["ScalarString"] = "Hello world! 😀 "
	scalarValues["ScalarInt"] = int(42)
	scalarValues["ScalarSlice"] = []int{1, 2, 3, 4}

	for g, value := range scalarValues {
		entity, err := ScalarFrom(&value)
		if err != nil {
			t.Error(err)
		}
		guid := GUID(g)
		err = saveToOrderedDisk(&entity, dir, guid)
		if err != nil {
			t.Errorf("Error while saving %v: %v", guid, err)
		}
		loadedEntity, err := loadFromOrderedDisk(dir, guid)
		if err != nil {
			t.Errorf("Error while loading %v: %v", guid, err)
		}
		loadedScalar, ok := loadedEntity.(*Scalar)
		if !ok {
			t.Errorf("Loaded entity %v is not a scalar", guid)
			continue
		}
		if !reflect.DeepEqual(entity, *loadedScalar) {
			t.Errorf("Scalars (saved) %v and %v (reloaded) differ", entity, *loadedScalar)
		}
	}
}

func newDiskTestServer(t *testing.T) *Server {
	dataDir, err := ioutil.TempDir("", "ordered")
	if err != nil {
		log.Fatal(err)
	}
	unorderedDataDir, err := ioutil.TempDir("", "unordered")
	if err != nil {
		log.Fatal(err)
	}
	t.Cleanup(func() {
		os.RemoveAll(dataDir)
		os.RemoveAll(unorderedDataDir)
	})
	return &Server{
		entityCache:      NewEntityCache(),
		dataDir:          dataDir,
		unorderedDataDir: unorderedDataDir,
		dev:              device.New(1 << 30),
	}
}

func TestUnorderedEntityIO(t *testing.T) {
	s := newDiskTestServer(t)
	ctx := context.Background()
	csr, err := graph.Build([]int32{0, 1, 2, 4, 4}, []graph.VertexID{1, 0, 0, 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.entityCache.Set("g", &Graph{CSR: csr})
	greeting, err := ScalarFrom("Hello world! 😀 ")
	if err != nil {
		t.Fatal(err)
	}

	data := map[string]Entity{}
	data["IntAttribute"] = &IntAttribute{
		Values:  []int32{5, 0, 7, 0},
		Defined: []bool{true, false, true, false},
	}
	data["LongAttribute"] = &LongAttribute{
		Values:  []int64{1, 2, 3, 4},
		Defined: []bool{true, true, true, true},
	}
	data["FloatAttribute"] = &FloatAttribute{
		Values:  []float32{1.5, 0, 2.25, 0},
		Defined: []bool{true, false, true, false},
	}
	data["DoubleAttribute"] = &DoubleAttribute{
		Values:  []float64{20.3, 18.2, 50.3, 2.0},
		Defined: []bool{true, true, true, true},
	}
	data["Scalar"] = &greeting

	for g, entity := range data {
		guid := GUID(g)
		s.entityCache.Set(guid, entity)
		if _, err := s.WriteToUnorderedDisk(ctx, &pb.WriteToUnorderedDiskRequest{Guid: string(guid)}); err != nil {
			t.Errorf("Error while writing %v: %v", guid, err)
		}
	}
	s.entityCache.Clear()
	s.entityCache.Set("g", &Graph{CSR: csr})
	for g, entity := range data {
		guid := GUID(g)
		_, err := s.ReadFromUnorderedDisk(ctx, &pb.ReadFromUnorderedDiskRequest{
			Guid:      string(guid),
			Type:      entity.typeName(),
			GraphGuid: "g",
		})
		if err != nil {
			t.Errorf("Error while reading %v: %v", guid, err)
			continue
		}
		loaded, exists := s.entityCache.Get(guid)
		if !exists {
			t.Errorf("Entity %v is not in the cache after reading", guid)
			continue
		}
		if !reflect.DeepEqual(entity, loaded) {
			t.Errorf("Entities (saved) %v and %v (reloaded) differ", entity, loaded)
		}
	}

	// Graphs enter through BuildGraph, never through the unordered disk.
	if _, err := s.WriteToUnorderedDisk(ctx, &pb.WriteToUnorderedDiskRequest{Guid: "g"}); err == nil {
		t.Errorf("Expected an error when writing a graph to unordered disk")
	}
}

func TestOrderedDiskRPC(t *testing.T) {
	s := newDiskTestServer(t)
	ctx := context.Background()
	buildGraph(t, s, "g", []int32{0, 1, 2, 4, 4}, []int32{1, 0, 0, 1}, []float64{1, 2, 3, 4})
	original, err := s.getGraph("g")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.WriteToOrderedDisk(ctx, &pb.WriteToOrderedDiskRequest{Guid: "g"}); err != nil {
		t.Fatalf("WriteToOrderedDisk failed: %v", err)
	}
	has, err := s.HasOnOrderedDisk(ctx, &pb.HasOnOrderedDiskRequest{Guid: "g"})
	if err != nil {
		t.Fatal(err)
	}
	if !has.HasOnDisk {
		t.Errorf("Expected the graph on ordered disk")
	}
	s.entityCache.Clear()
	if _, err := s.ReadFromOrderedDisk(ctx, &pb.ReadFromOrderedDiskRequest{Guid: "g"}); err != nil {
		t.Fatalf("ReadFromOrderedDisk failed: %v", err)
	}
	loaded, err := s.getGraph("g")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(original, loaded) {
		t.Errorf("Graphs (saved) %v and %v (reloaded) differ", original, loaded)
	}

	// Clear drops the cache and both disk directories.
	if _, err := s.Clear(ctx, &pb.ClearRequest{}); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	has, err = s.HasOnOrderedDisk(ctx, &pb.HasOnOrderedDiskRequest{Guid: "g"})
	if err != nil {
		t.Fatal(err)
	}
	if has.HasOnDisk {
		t.Errorf("Expected an empty ordered disk after clearing")
	}
	inMemory, err := s.HasInMemory(ctx, &pb.HasInMemoryRequest{Guid: "g"})
	if err != nil {
		t.Fatal(err)
	}
	if inMemory.HasInMemory {
		t.Errorf("Expected an empty cache after clearing")
	}
}
