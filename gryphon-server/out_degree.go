package main

import (
	"github.com/vertexlabs/gryphon/graph"
)

func doOutDegree(g *graph.CSR) *DoubleAttribute {
	outDegree := &DoubleAttribute{
		Values:  make([]float64, g.NumNodes()),
		Defined: make([]bool, g.NumNodes()),
	}
	for v := graph.VertexID(0); v < g.NumNodes(); v++ {
		outDegree.Values[v] = float64(g.OutDegree(v))
		outDegree.Defined[v] = true
	}
	return outDegree
}

func init() {
	operationRepository["OutDegree"] = Operation{
		execute: func(ea *EntityAccessor) error {
			g := ea.getGraph("graph")
			return ea.output("outDegree", doOutDegree(g.CSR))
		},
	}
}
