// Gryphon is a gRPC server around the frontier engine. A host process
// connects to it, registers graphs, and asks it to run graph operations
// on them. Graphs and attributes live in an in-memory entity cache keyed
// by GUID; the ordered and unordered disk directories are used to
// exchange entities with the host.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/juju/errors"
	"github.com/vertexlabs/gryphon/device"
	"github.com/vertexlabs/gryphon/engine"
	"github.com/vertexlabs/gryphon/graph"
	pb "github.com/vertexlabs/gryphon/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"log"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"
)

func OperationInstanceFromJSON(opJSON string) (OperationInstance, error) {
	var opInst OperationInstance
	b := []byte(opJSON)
	if err := json.Unmarshal(b, &opInst); err != nil {
		return opInst, fmt.Errorf("Failed to parse operation: %v", err)
	}
	return opInst, nil
}

func shortOpName(opInst OperationInstance) string {
	return strings.TrimPrefix(opInst.Operation.Class, "com.vertexlabs.gryphon.operations.")
}

func NewServer() Server {
	dataDir := os.Getenv("ORDERED_GRYPHON_DATA_DIR")
	unorderedDataDir := os.Getenv("UNORDERED_GRYPHON_DATA_DIR")
	os.MkdirAll(unorderedDataDir, 0775)
	os.MkdirAll(dataDir, 0775)
	budget := int64(getNumericEnv("GRYPHON_DEVICE_MEM_MB", 4*1024)) * 1024 * 1024
	return Server{
		entityCache:      NewEntityCache(),
		dataDir:          dataDir,
		unorderedDataDir: unorderedDataDir,
		dev:              device.New(budget)}
}

// classifyError turns an operation error into the result code and the
// stage ("init" or "enact") reported to the host. The cause decides:
// setup failures happen before the first kernel launch, launch failures
// and divergence happen while iterating.
func classifyError(err error) (pb.ResultCode, string) {
	switch errors.Cause(err) {
	case graph.ErrMalformed:
		return pb.ResultCode_MALFORMED_GRAPH, "init"
	case device.ErrAllocation:
		return pb.ResultCode_ALLOCATION_FAILED, "init"
	case engine.ErrNotReady:
		return pb.ResultCode_NOT_READY, "init"
	case engine.ErrUnsupportedType:
		return pb.ResultCode_UNSUPPORTED_TYPE, "init"
	case device.ErrLaunch:
		return pb.ResultCode_LAUNCH_FAILED, "enact"
	case engine.ErrDiverged:
		return pb.ResultCode_DIVERGED, "enact"
	case context.Canceled, context.DeadlineExceeded:
		return pb.ResultCode_INTERNAL, "enact"
	default:
		return pb.ResultCode_INTERNAL, "init"
	}
}

func failure(code pb.ResultCode, stage string, err error) *pb.Result {
	return &pb.Result{Code: code, Stage: stage, Message: err.Error()}
}

// runOperation runs op and turns panics into errors. Input getters panic
// on type mismatches and a broken operation must not take the server down.
func runOperation(op Operation, ea *EntityAccessor) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("operation panic: %v", p)
		}
	}()
	return op.execute(ea)
}

func (s *Server) BuildGraph(ctx context.Context, in *pb.BuildGraphRequest) (*pb.BuildGraphReply, error) {
	guid := GUID(in.Guid)
	log.Printf("Building graph %v: %v offsets, %v edges.", guid, len(in.RowOffsets), len(in.ColIndices))
	csr, err := graph.Build(in.RowOffsets, in.ColIndices, in.Weights)
	if err != nil {
		code, stage := classifyError(err)
		return &pb.BuildGraphReply{Result: failure(code, stage, err)}, nil
	}
	s.entityCache.Set(guid, &Graph{CSR: csr})
	return &pb.BuildGraphReply{Result: &pb.Result{Code: pb.ResultCode_OK}}, nil
}

func (s *Server) CanCompute(ctx context.Context, in *pb.CanComputeRequest) (*pb.CanComputeReply, error) {
	opInst, err := OperationInstanceFromJSON(in.Operation)
	if err != nil {
		return nil, err
	}
	exists := false
	op, ok := operationRepository[shortOpName(opInst)]
	if ok {
		if op.canCompute == nil {
			exists = true
		} else {
			exists = op.canCompute(opInst.Operation)
		}
	}
	return &pb.CanComputeReply{CanCompute: exists}, nil
}

func (s *Server) Compute(ctx context.Context, in *pb.ComputeRequest) (*pb.ComputeReply, error) {
	opInst, err := OperationInstanceFromJSON(in.Operation)
	if err != nil {
		return &pb.ComputeReply{Result: failure(pb.ResultCode_INTERNAL, "init", err)}, nil
	}
	log.Printf("Computing %v.", shortOpName(opInst))
	op, exists := operationRepository[shortOpName(opInst)]
	if !exists {
		err := fmt.Errorf("Can't compute operation %v", shortOpName(opInst))
		return &pb.ComputeReply{Result: failure(pb.ResultCode_INTERNAL, "init", err)}, nil
	}
	inputs, err := collectInputs(s, &opInst)
	if err != nil {
		return &pb.ComputeReply{Result: failure(pb.ResultCode_NOT_READY, "init", err)}, nil
	}
	ea := EntityAccessor{ctx: ctx, inputs: inputs, outputs: make(map[GUID]Entity), opInst: &opInst, server: s}
	if err := runOperation(op, &ea); err != nil {
		code, stage := classifyError(err)
		return &pb.ComputeReply{Result: failure(code, stage, err)}, nil
	}
	for guid, entity := range ea.outputs {
		s.entityCache.Set(guid, entity)
	}
	return &pb.ComputeReply{Result: &pb.Result{Code: pb.ResultCode_OK}}, nil
}

func (s *Server) GetScalar(ctx context.Context, in *pb.GetScalarRequest) (*pb.GetScalarReply, error) {
	guid := GUID(in.Guid)
	log.Printf("Received GetScalar request with GUID %v.", guid)
	entity, exists := s.entityCache.Get(guid)
	if !exists {
		return nil, NotInCacheError("scalar", guid)
	}

	switch scalar := entity.(type) {
	case *Scalar:
		return &pb.GetScalarReply{Scalar: string([]byte(*scalar))}, nil
	default:
		return nil, fmt.Errorf("entity %v (guid %v) is not a Scalar", scalar, guid)
	}
}

func (s *Server) GetNodeValues(ctx context.Context, in *pb.GetNodeValuesRequest) (*pb.GetNodeValuesReply, error) {
	guid := GUID(in.Guid)
	entity, exists := s.entityCache.Get(guid)
	if !exists {
		return nil, NotInCacheError("attribute", guid)
	}
	reply := &pb.GetNodeValuesReply{TypeName: entity.typeName()}
	switch attr := entity.(type) {
	case *IntAttribute:
		reply.IntValues = attr.Values
		reply.Defined = attr.Defined
	case *LongAttribute:
		reply.LongValues = attr.Values
		reply.Defined = attr.Defined
	case *FloatAttribute:
		reply.FloatValues = attr.Values
		reply.Defined = attr.Defined
	case *DoubleAttribute:
		reply.DoubleValues = attr.Values
		reply.Defined = attr.Defined
	default:
		return nil, fmt.Errorf("entity %v (guid %v) is not an attribute", entity.typeName(), guid)
	}
	return reply, nil
}

func (s *Server) HasInMemory(ctx context.Context, in *pb.HasInMemoryRequest) (*pb.HasInMemoryReply, error) {
	guid := GUID(in.Guid)
	_, exists := s.entityCache.Get(guid)
	return &pb.HasInMemoryReply{HasInMemory: exists}, nil
}

func (s *Server) getGraph(guid GUID) (*Graph, error) {
	entity, exists := s.entityCache.Get(guid)
	if !exists {
		return nil, NotInCacheError("graph", guid)
	}
	switch g := entity.(type) {
	case *Graph:
		return g, nil
	default:
		return nil, fmt.Errorf("Guid %v is a %T, not a graph", guid, g)
	}
}

func (s *Server) HasOnOrderedDisk(ctx context.Context, in *pb.HasOnOrderedDiskRequest) (*pb.HasOnOrderedDiskReply, error) {
	guid := in.GetGuid()
	has, err := hasOnDisk(s.dataDir, GUID(guid))
	if err != nil {
		return nil, err
	}
	return &pb.HasOnOrderedDiskReply{HasOnDisk: has}, nil
}

func (s *Server) ReadFromOrderedDisk(ctx context.Context, in *pb.ReadFromOrderedDiskRequest) (*pb.ReadFromOrderedDiskReply, error) {
	guid := GUID(in.GetGuid())
	entity, err := loadFromOrderedDisk(s.dataDir, guid)
	if err != nil {
		return nil, err
	}
	s.entityCache.Set(guid, entity)
	return &pb.ReadFromOrderedDiskReply{}, nil
}

func (s *Server) Clear(ctx context.Context, in *pb.ClearRequest) (*pb.ClearReply, error) {
	s.entityCache.Clear()
	os.RemoveAll(s.dataDir)
	os.MkdirAll(s.dataDir, 0775)
	os.RemoveAll(s.unorderedDataDir)
	os.MkdirAll(s.unorderedDataDir, 0775)
	return &pb.ClearReply{}, nil
}

func main() {
	port := os.Getenv("GRYPHON_PORT")
	if port == "" {
		log.Fatalf("Please set GRYPHON_PORT.")
	}
	debugPort := os.Getenv("GRYPHON_DEBUG_PORT")
	if debugPort != "" {
		go func() error {
			return http.ListenAndServe(fmt.Sprintf(":%s", debugPort), nil)
		}()
	}
	keydir := os.Getenv("GRYPHON_CERT_DIR")
	var s *grpc.Server
	if keydir != "" {
		creds, err := credentials.NewServerTLSFromFile(keydir+"/cert.pem", keydir+"/private-key.pem")
		if err != nil {
			log.Fatalf("failed to read credentials: %v", err)
		}
		s = grpc.NewServer(grpc.Creds(creds))
	} else {
		s = grpc.NewServer()
	}
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	gryphonServer := NewServer()
	pb.RegisterGryphonServer(s, &gryphonServer)
	log.Printf("Gryphon listening on port %v", port)
	if err := s.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
