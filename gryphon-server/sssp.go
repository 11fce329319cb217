// Implements the SSSP operation. The distance type is picked by the host
// through the value_type parameter.

package main

import (
	"github.com/juju/errors"
	"github.com/vertexlabs/gryphon/device"
	"github.com/vertexlabs/gryphon/engine"
	"github.com/vertexlabs/gryphon/graph"
	"github.com/vertexlabs/gryphon/sssp"
)

func runSSSP[W device.Value](ea *EntityAccessor, csr *graph.CSR, source graph.VertexID, cfg sssp.Config) error {
	res, err := sssp.Run[W](ea.ctx, ea.server.dev, csr, source, cfg)
	if err != nil {
		return err
	}
	inf := sssp.Infinity[W]()
	defined := make([]bool, len(res.Labels))
	for i, d := range res.Labels {
		defined[i] = d != inf
	}
	var distances Entity
	switch labels := any(res.Labels).(type) {
	case []int32:
		distances = &IntAttribute{Values: labels, Defined: defined}
	case []int64:
		distances = &LongAttribute{Values: labels, Defined: defined}
	case []float32:
		distances = &FloatAttribute{Values: labels, Defined: defined}
	case []float64:
		distances = &DoubleAttribute{Values: labels, Defined: defined}
	}
	if err := ea.output("distances", distances); err != nil {
		return err
	}
	if cfg.MarkPaths {
		predecessors := &IntAttribute{
			Values:  res.Predecessors,
			Defined: make([]bool, len(res.Predecessors)),
		}
		for i, p := range res.Predecessors {
			predecessors.Defined[i] = p != sssp.NoPredecessor
		}
		if err := ea.output("predecessors", predecessors); err != nil {
			return err
		}
	}
	return ea.outputScalar("stats", res.Stats)
}

func init() {
	operationRepository["SSSP"] = Operation{
		execute: func(ea *EntityAccessor) error {
			g := ea.getGraph("graph")
			source := graph.VertexID(ea.GetIntParam("source"))
			csr := g.CSR
			if !ea.GetBoolParamWithDefault("directed", false) {
				csr = csr.Symmetrize()
			}
			cfg := sssp.Config{
				NumPartitions: int32(ea.GetIntParamWithDefault("num_partitions", gryphonThreads)),
				MarkPaths:     ea.GetBoolParamWithDefault("mark_paths", true),
				Delta:         ea.GetFloatParamWithDefault("delta", 0),
				MaxIterations: int32(ea.GetIntParamWithDefault("max_iterations", 0)),
				MaxGridSize:   int32(ea.GetIntParamWithDefault("max_grid_size", 0)),
			}
			switch vt := ea.GetStringParamWithDefault("value_type", "double"); vt {
			case "int":
				return runSSSP[int32](ea, csr, source, cfg)
			case "long":
				return runSSSP[int64](ea, csr, source, cfg)
			case "float":
				return runSSSP[float32](ea, csr, source, cfg)
			case "double":
				return runSSSP[float64](ea, csr, source, cfg)
			default:
				return errors.Annotatef(engine.ErrUnsupportedType, "value_type %q", vt)
			}
		},
		canCompute: func(desc OperationDescription) bool {
			vt, exists := desc.Data["value_type"]
			if !exists {
				return true
			}
			switch vt {
			case "int", "long", "float", "double":
				return true
			default:
				return false
			}
		},
	}
}
