// Types used by the Gryphon server.
package main

import (
	"encoding/json"
	"fmt"
	"github.com/vertexlabs/gryphon/device"
	"github.com/vertexlabs/gryphon/graph"
	pb "github.com/vertexlabs/gryphon/proto"
)

type Server struct {
	pb.UnimplementedGryphonServer
	entityCache      EntityCache
	dataDir          string
	unorderedDataDir string
	dev              *device.Context
}
type GUID string
type OperationDescription struct {
	Class string
	Data  map[string]interface{}
}
type OperationInstance struct {
	GUID      GUID
	Inputs    map[string]GUID
	Outputs   map[string]GUID
	Operation OperationDescription
}

// Graph is an immutable CSR graph held as an entity. Operations never
// mutate it; derived graphs get their own GUID.
type Graph struct {
	CSR *graph.CSR
}

// A scalar is stored as its JSON encoding. If you need the real value, unmarshal it for yourself.
type Scalar []byte

func ScalarFrom(value interface{}) (Scalar, error) {
	jsonEncoding, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("Error while marshaling scalar: %v", err)
	}
	return Scalar(jsonEncoding), nil
}
func (scalar *Scalar) LoadTo(dst interface{}) error {
	if err := json.Unmarshal([]byte(*scalar), dst); err != nil {
		return fmt.Errorf("Error while unmarshaling scalar: %v", err)
	}
	return nil
}

type IntAttribute struct {
	Values  []int32
	Defined []bool
}

type LongAttribute struct {
	Values  []int64
	Defined []bool
}

type FloatAttribute struct {
	Values  []float32
	Defined []bool
}

type DoubleAttribute struct {
	Values  []float64
	Defined []bool
}
