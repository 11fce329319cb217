// Implements the CountVertices operation.

package main

func init() {
	operationRepository["CountVertices"] = Operation{
		execute: func(ea *EntityAccessor) error {
			g := ea.getGraph("graph")
			return ea.outputScalar("count", g.CSR.NumNodes())
		},
	}
}
