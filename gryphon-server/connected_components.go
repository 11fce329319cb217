// Implements the ConnectedComponents operation. The hooking functor
// treats edges as undirected, so the input graph is used as-is.

package main

import (
	"github.com/vertexlabs/gryphon/cc"
	"github.com/vertexlabs/gryphon/graph"
)

func init() {
	operationRepository["ConnectedComponents"] = Operation{
		execute: func(ea *EntityAccessor) error {
			g := ea.getGraph("graph")
			cfg := cc.Config{
				NumPartitions: int32(ea.GetIntParamWithDefault("num_partitions", gryphonThreads)),
				MaxIterations: int32(ea.GetIntParamWithDefault("max_iterations", 0)),
				MaxGridSize:   int32(ea.GetIntParamWithDefault("max_grid_size", 0)),
			}
			res, err := cc.Run(ea.ctx, ea.server.dev, g.CSR, cfg)
			if err != nil {
				return err
			}
			components := &IntAttribute{
				Values:  res.Components,
				Defined: make([]bool, len(res.Components)),
			}
			for i := range components.Defined {
				components.Defined[i] = true
			}
			if err := ea.output("components", components); err != nil {
				return err
			}
			sizes := struct {
				Roots  []graph.VertexID `json:"roots"`
				Counts []int64          `json:"counts"`
			}{res.Roots, res.Counts}
			if err := ea.outputScalar("sizes", sizes); err != nil {
				return err
			}
			return ea.outputScalar("stats", res.Stats)
		},
	}
}
