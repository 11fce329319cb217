package main

import (
	"context"
	"reflect"
	"testing"
)

func TestExampleGraph(t *testing.T) {
	s := newTestServer()
	opInst := OperationInstance{
		GUID: "op",
		Outputs: map[string]GUID{
			"graph":    "g",
			"age":      "a",
			"income":   "i",
			"greeting": "gr",
		},
		Operation: OperationDescription{Class: "ExampleGraph"},
	}
	ea := EntityAccessor{
		ctx:     context.Background(),
		outputs: make(map[GUID]Entity),
		opInst:  &opInst,
		server:  s,
	}
	op, exists := operationRepository["ExampleGraph"]
	if !exists {
		t.Fatal("ExampleGraph is not registered")
	}
	if err := op.execute(&ea); err != nil {
		t.Fatal(err)
	}
	g, ok := ea.getOutput("graph").(*Graph)
	if !ok {
		t.Fatal("The graph output is missing")
	}
	if g.CSR.NumNodes() != 4 || g.CSR.NumEdges() != 4 {
		t.Errorf("Unexpected graph shape: %v nodes, %v edges", g.CSR.NumNodes(), g.CSR.NumEdges())
	}
	age, ok := ea.getOutput("age").(*DoubleAttribute)
	if !ok {
		t.Fatal("The age output is missing")
	}
	expectedAge := &DoubleAttribute{
		Values:  []float64{20.3, 18.2, 50.3, 2.0},
		Defined: []bool{true, true, true, true},
	}
	if !reflect.DeepEqual(age, expectedAge) {
		t.Errorf("Bad ages, got: %v expected: %v", age, expectedAge)
	}
	greeting, ok := ea.getOutput("greeting").(*Scalar)
	if !ok {
		t.Fatal("The greeting output is missing")
	}
	var message string
	if err := greeting.LoadTo(&message); err != nil {
		t.Fatal(err)
	}
	if message != "Hello world! 😀 " {
		t.Errorf("Bad greeting: %v", message)
	}
}
