// Implements the AddReversedEdges operation.

package main

func init() {
	operationRepository["AddReversedEdges"] = Operation{
		execute: func(ea *EntityAccessor) error {
			g := ea.getGraph("graph")
			return ea.output("symmetric", &Graph{CSR: g.CSR.Symmetrize()})
		},
	}
}
