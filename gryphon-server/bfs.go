// Implements the BFS operation.

package main

import (
	"github.com/vertexlabs/gryphon/bfs"
	"github.com/vertexlabs/gryphon/graph"
)

func init() {
	operationRepository["BFS"] = Operation{
		execute: func(ea *EntityAccessor) error {
			g := ea.getGraph("graph")
			source := graph.VertexID(ea.GetIntParam("source"))
			csr := g.CSR
			if !ea.GetBoolParamWithDefault("directed", false) {
				csr = csr.Symmetrize()
			}
			cfg := bfs.Config{
				NumPartitions: int32(ea.GetIntParamWithDefault("num_partitions", gryphonThreads)),
				MarkPaths:     ea.GetBoolParamWithDefault("mark_paths", true),
				MaxIterations: int32(ea.GetIntParamWithDefault("max_iterations", 0)),
				MaxGridSize:   int32(ea.GetIntParamWithDefault("max_grid_size", 0)),
			}
			res, err := bfs.Run(ea.ctx, ea.server.dev, csr, source, cfg)
			if err != nil {
				return err
			}
			levels := &IntAttribute{
				Values:  res.Labels,
				Defined: make([]bool, len(res.Labels)),
			}
			for i, l := range res.Labels {
				levels.Defined[i] = l != bfs.Infinity
			}
			if err := ea.output("levels", levels); err != nil {
				return err
			}
			if cfg.MarkPaths {
				predecessors := &IntAttribute{
					Values:  res.Predecessors,
					Defined: make([]bool, len(res.Predecessors)),
				}
				for i, p := range res.Predecessors {
					predecessors.Defined[i] = p != bfs.NoPredecessor
				}
				if err := ea.output("predecessors", predecessors); err != nil {
					return err
				}
			}
			return ea.outputScalar("stats", res.Stats)
		},
	}
}
