// Implementations of Gryphon operations.

package main

import (
	"context"
	"fmt"
)

type EntityAccessor struct {
	ctx     context.Context
	inputs  map[string]Entity
	outputs map[GUID]Entity
	opInst  *OperationInstance
	server  *Server
}

func collectInputs(server *Server, opInst *OperationInstance) (map[string]Entity, error) {
	inputs := make(map[string]Entity, len(opInst.Inputs))
	for name, guid := range opInst.Inputs {
		entity, exists := server.entityCache.Get(guid)
		if !exists {
			return nil, NotInCacheError("input", guid)
		}
		inputs[name] = entity
	}
	return inputs, nil
}

func (ea *EntityAccessor) output(name string, entity Entity) error {
	guid, exists := ea.opInst.Outputs[name]
	if !exists {
		return fmt.Errorf("Could not find '%v' among output names", name)
	}
	ea.outputs[guid] = entity
	return nil
}

func (ea *EntityAccessor) outputScalar(name string, value interface{}) error {
	s, err := ScalarFrom(value)
	if err != nil {
		return err
	}
	return ea.output(name, &s)
}

func (ea *EntityAccessor) getOutput(name string) Entity {
	guid := ea.opInst.Outputs[name]
	return ea.outputs[guid]
}

func (ea *EntityAccessor) getGraph(name string) *Graph {
	return ea.inputs[name].(*Graph)
}

func (ea *EntityAccessor) getScalar(name string) *Scalar {
	return ea.inputs[name].(*Scalar)
}

func (ea *EntityAccessor) getIntAttribute(name string) *IntAttribute {
	return ea.inputs[name].(*IntAttribute)
}

func (ea *EntityAccessor) getLongAttribute(name string) *LongAttribute {
	return ea.inputs[name].(*LongAttribute)
}

func (ea *EntityAccessor) getFloatAttribute(name string) *FloatAttribute {
	return ea.inputs[name].(*FloatAttribute)
}

func (ea *EntityAccessor) getDoubleAttribute(name string) *DoubleAttribute {
	return ea.inputs[name].(*DoubleAttribute)
}

func (ea *EntityAccessor) GetIntParam(name string) int {
	// JSON numbers arrive as float64.
	return int(ea.opInst.Operation.Data[name].(float64))
}

func (ea *EntityAccessor) GetFloatParam(name string) float64 {
	return ea.opInst.Operation.Data[name].(float64)
}

func (ea *EntityAccessor) GetBoolParam(name string) bool {
	return ea.opInst.Operation.Data[name].(bool)
}

func (ea *EntityAccessor) GetStringParam(name string) string {
	return ea.opInst.Operation.Data[name].(string)
}

func (ea *EntityAccessor) GetIntParamWithDefault(name string, dflt int) int {
	field, exists := ea.opInst.Operation.Data[name]
	if exists {
		return int(field.(float64))
	}
	return dflt
}

func (ea *EntityAccessor) GetFloatParamWithDefault(name string, dflt float64) float64 {
	field, exists := ea.opInst.Operation.Data[name]
	if exists {
		return field.(float64)
	}
	return dflt
}

func (ea *EntityAccessor) GetBoolParamWithDefault(name string, dflt bool) bool {
	field, exists := ea.opInst.Operation.Data[name]
	if exists {
		return field.(bool)
	}
	return dflt
}

func (ea *EntityAccessor) GetStringParamWithDefault(name string, dflt string) string {
	field, exists := ea.opInst.Operation.Data[name]
	if exists {
		return field.(string)
	}
	return dflt
}

type Operation struct {
	execute    func(ea *EntityAccessor) error
	canCompute func(operationDescription OperationDescription) bool
}

var operationRepository = map[string]Operation{}
