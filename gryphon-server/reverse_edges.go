// Implements the ReverseEdges operation.

package main

func init() {
	operationRepository["ReverseEdges"] = Operation{
		execute: func(ea *EntityAccessor) error {
			g := ea.getGraph("graph")
			return ea.output("reversed", &Graph{CSR: g.CSR.Reverse()})
		},
	}
}
