// Implements the ExampleGraph operation, a tiny fixture graph used in
// tests and demos.

package main

import (
	"github.com/vertexlabs/gryphon/graph"
)

func init() {
	operationRepository["ExampleGraph"] = Operation{
		execute: func(ea *EntityAccessor) error {
			// Adam, Eve, Bob and Isolated Joe.
			csr, err := graph.Build(
				[]int32{0, 1, 2, 4, 4},
				[]graph.VertexID{1, 0, 0, 1},
				[]float64{1, 2, 3, 4})
			if err != nil {
				return err
			}
			ea.output("graph", &Graph{CSR: csr})
			age := &DoubleAttribute{
				Values:  []float64{20.3, 18.2, 50.3, 2.0},
				Defined: []bool{true, true, true, true},
			}
			ea.output("age", age)
			income := &DoubleAttribute{
				Values:  []float64{1000, 0, 2000, 0},
				Defined: []bool{true, false, true, false},
			}
			ea.output("income", income)
			greeting, err := ScalarFrom("Hello world! 😀 ")
			if err != nil {
				return err
			}
			ea.output("greeting", &greeting)
			return nil
		},
	}
}
