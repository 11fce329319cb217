// Implements the BetweennessCentrality operation.

package main

import (
	"github.com/vertexlabs/gryphon/bc"
	"github.com/vertexlabs/gryphon/graph"
)

func init() {
	operationRepository["BetweennessCentrality"] = Operation{
		execute: func(ea *EntityAccessor) error {
			g := ea.getGraph("graph")
			source := graph.VertexID(ea.GetIntParam("source"))
			csr := g.CSR
			if !ea.GetBoolParamWithDefault("directed", false) {
				csr = csr.Symmetrize()
			}
			cfg := bc.Config{
				NumPartitions: int32(ea.GetIntParamWithDefault("num_partitions", gryphonThreads)),
				MaxIterations: int32(ea.GetIntParamWithDefault("max_iterations", 0)),
				MaxGridSize:   int32(ea.GetIntParamWithDefault("max_grid_size", 0)),
			}
			res, err := bc.Run(ea.ctx, ea.server.dev, csr, source, cfg)
			if err != nil {
				return err
			}
			centrality := &DoubleAttribute{
				Values:  res.Scores,
				Defined: make([]bool, len(res.Scores)),
			}
			for i := range centrality.Defined {
				centrality.Defined[i] = true
			}
			if err := ea.output("centrality", centrality); err != nil {
				return err
			}
			return ea.outputScalar("stats", res.Stats)
		},
	}
}
