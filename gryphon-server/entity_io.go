// Helper methods to read and write entities.
package main

import (
	"bufio"
	"fmt"
	"github.com/apache/arrow/go/arrow"
	"github.com/apache/arrow/go/arrow/array"
	"github.com/vertexlabs/gryphon/graph"
	"io/ioutil"
	"os"
	"reflect"
	"strconv"
)

type Entity interface {
	typeName() string // This will help deserializing a serialized entity
	estimatedMemUsage() int
}

// TabularEntity is an entity with an Arrow representation, used on the
// ordered disk.
type TabularEntity interface {
	Entity
	toOrderedRows() array.Record
	readFromOrdered(rec array.Record) error
}

// ParquetEntity additionally has the flat row shape used when exchanging
// data with the host through the unordered disk.
type ParquetEntity interface {
	TabularEntity
	unorderedRow() interface{}
}

func (_ *Scalar) typeName() string {
	return "Scalar"
}
func (_ *Graph) typeName() string {
	return "Graph"
}
func (_ *IntAttribute) typeName() string {
	return "IntAttribute"
}
func (_ *LongAttribute) typeName() string {
	return "LongAttribute"
}
func (_ *FloatAttribute) typeName() string {
	return "FloatAttribute"
}
func (_ *DoubleAttribute) typeName() string {
	return "DoubleAttribute"
}

var intAttributeSchema = arrow.NewSchema([]arrow.Field{
	{Name: "value", Type: arrow.PrimitiveTypes.Int32},
	{Name: "defined", Type: arrow.FixedWidthTypes.Boolean},
}, nil)
var longAttributeSchema = arrow.NewSchema([]arrow.Field{
	{Name: "value", Type: arrow.PrimitiveTypes.Int64},
	{Name: "defined", Type: arrow.FixedWidthTypes.Boolean},
}, nil)
var floatAttributeSchema = arrow.NewSchema([]arrow.Field{
	{Name: "value", Type: arrow.PrimitiveTypes.Float32},
	{Name: "defined", Type: arrow.FixedWidthTypes.Boolean},
}, nil)
var doubleAttributeSchema = arrow.NewSchema([]arrow.Field{
	{Name: "value", Type: arrow.PrimitiveTypes.Float64},
	{Name: "defined", Type: arrow.FixedWidthTypes.Boolean},
}, nil)

func appendDefined(b *array.RecordBuilder, defined []bool) {
	b.Field(1).(*array.BooleanBuilder).AppendValues(defined, nil)
}

func readDefined(rec array.Record) []bool {
	col := rec.Column(1).(*array.Boolean)
	defined := make([]bool, rec.NumRows())
	for i := range defined {
		defined[i] = col.Value(i)
	}
	return defined
}

func (a *IntAttribute) toOrderedRows() array.Record {
	b := array.NewRecordBuilder(arrowAllocator, intAttributeSchema)
	defer b.Release()
	b.Field(0).(*array.Int32Builder).AppendValues(a.Values, nil)
	appendDefined(b, a.Defined)
	return b.NewRecord()
}
func (a *IntAttribute) readFromOrdered(rec array.Record) error {
	a.Values = append([]int32{}, rec.Column(0).(*array.Int32).Int32Values()...)
	a.Defined = readDefined(rec)
	return nil
}

func (a *LongAttribute) toOrderedRows() array.Record {
	b := array.NewRecordBuilder(arrowAllocator, longAttributeSchema)
	defer b.Release()
	b.Field(0).(*array.Int64Builder).AppendValues(a.Values, nil)
	appendDefined(b, a.Defined)
	return b.NewRecord()
}
func (a *LongAttribute) readFromOrdered(rec array.Record) error {
	a.Values = append([]int64{}, rec.Column(0).(*array.Int64).Int64Values()...)
	a.Defined = readDefined(rec)
	return nil
}

func (a *FloatAttribute) toOrderedRows() array.Record {
	b := array.NewRecordBuilder(arrowAllocator, floatAttributeSchema)
	defer b.Release()
	b.Field(0).(*array.Float32Builder).AppendValues(a.Values, nil)
	appendDefined(b, a.Defined)
	return b.NewRecord()
}
func (a *FloatAttribute) readFromOrdered(rec array.Record) error {
	a.Values = append([]float32{}, rec.Column(0).(*array.Float32).Float32Values()...)
	a.Defined = readDefined(rec)
	return nil
}

func (a *DoubleAttribute) toOrderedRows() array.Record {
	b := array.NewRecordBuilder(arrowAllocator, doubleAttributeSchema)
	defer b.Release()
	b.Field(0).(*array.Float64Builder).AppendValues(a.Values, nil)
	appendDefined(b, a.Defined)
	return b.NewRecord()
}
func (a *DoubleAttribute) readFromOrdered(rec array.Record) error {
	a.Values = append([]float64{}, rec.Column(0).(*array.Float64).Float64Values()...)
	a.Defined = readDefined(rec)
	return nil
}

// A graph is stored as one edge row per edge, in CSR order. The vertex
// count travels in the schema metadata so that trailing isolated vertices
// survive the round trip. Unweighted graphs have no weight column.
func (g *Graph) toOrderedRows() array.Record {
	csr := g.CSR
	md := arrow.NewMetadata([]string{"nodes"}, []string{strconv.Itoa(int(csr.NumNodes()))})
	fields := []arrow.Field{
		{Name: "src", Type: arrow.PrimitiveTypes.Int32},
		{Name: "dst", Type: arrow.PrimitiveTypes.Int32},
	}
	if csr.Weighted() {
		fields = append(fields, arrow.Field{Name: "weight", Type: arrow.PrimitiveTypes.Float64})
	}
	schema := arrow.NewSchema(fields, &md)
	b := array.NewRecordBuilder(arrowAllocator, schema)
	defer b.Release()
	srcs := make([]int32, 0, csr.NumEdges())
	for v := graph.VertexID(0); v < csr.NumNodes(); v++ {
		lo, hi := csr.EdgeRange(v)
		for e := lo; e < hi; e++ {
			srcs = append(srcs, int32(v))
		}
	}
	b.Field(0).(*array.Int32Builder).AppendValues(srcs, nil)
	b.Field(1).(*array.Int32Builder).AppendValues(csr.ColIndices(), nil)
	if csr.Weighted() {
		b.Field(2).(*array.Float64Builder).AppendValues(csr.Weights(), nil)
	}
	return b.NewRecord()
}

func (g *Graph) readFromOrdered(rec array.Record) error {
	md := rec.Schema().Metadata()
	idx := md.FindKey("nodes")
	if idx < 0 {
		return fmt.Errorf("graph record carries no node count")
	}
	nodes, err := strconv.Atoi(md.Values()[idx])
	if err != nil {
		return fmt.Errorf("bad node count %q: %v", md.Values()[idx], err)
	}
	srcs := rec.Column(0).(*array.Int32).Int32Values()
	dsts := rec.Column(1).(*array.Int32).Int32Values()
	var weights []float64
	if rec.NumCols() == 3 {
		weights = rec.Column(2).(*array.Float64).Float64Values()
	}
	offsets := make([]int32, nodes+1)
	for _, src := range srcs {
		offsets[src+1]++
	}
	for v := 1; v <= nodes; v++ {
		offsets[v] += offsets[v-1]
	}
	csr, err := graph.Build(offsets, dsts, weights)
	if err != nil {
		return err
	}
	g.CSR = csr
	return nil
}

type UnorderedIntAttributeRow struct {
	Id    int64 `parquet:"name=id, type=INT64"`
	Value int32 `parquet:"name=value, type=INT32"`
}

type UnorderedLongAttributeRow struct {
	Id    int64 `parquet:"name=id, type=INT64"`
	Value int64 `parquet:"name=value, type=INT64"`
}

type UnorderedFloatAttributeRow struct {
	Id    int64   `parquet:"name=id, type=INT64"`
	Value float32 `parquet:"name=value, type=FLOAT"`
}

type UnorderedDoubleAttributeRow struct {
	Id    int64   `parquet:"name=id, type=INT64"`
	Value float64 `parquet:"name=value, type=DOUBLE"`
}

func (_ *IntAttribute) unorderedRow() interface{} {
	return new(UnorderedIntAttributeRow)
}

func (_ *LongAttribute) unorderedRow() interface{} {
	return new(UnorderedLongAttributeRow)
}

func (_ *FloatAttribute) unorderedRow() interface{} {
	return new(UnorderedFloatAttributeRow)
}

func (_ *DoubleAttribute) unorderedRow() interface{} {
	return new(UnorderedDoubleAttributeRow)
}

func fieldIndex(t reflect.Type, name string) int {
	f, ok := t.FieldByName(name)
	if !ok {
		panic(fmt.Sprintf("no %s field in %v", name, t))
	}
	if len(f.Index) != 1 {
		panic(fmt.Sprintf("field %v in %v is too complex", name, t))
	}
	return f.Index[0]
}

// AttributeToUnorderedRows flattens an attribute to {id, value} rows,
// skipping undefined vertices.
func AttributeToUnorderedRows(attr ParquetEntity) []interface{} {
	a := reflect.ValueOf(attr)
	values := a.Elem().FieldByName("Values")
	defined := a.Elem().FieldByName("Defined")
	rows := reflect.MakeSlice(reflect.TypeOf([]interface{}{}), 0, 0)
	rowType := reflect.TypeOf(attr.unorderedRow()).Elem()
	valueIndex := fieldIndex(rowType, "Value")
	idIndex := fieldIndex(rowType, "Id")
	numValues := values.Len()
	row := reflect.New(rowType).Elem()
	for i := 0; i < numValues; i++ {
		if defined.Index(i).Bool() {
			row.Field(valueIndex).Set(values.Index(i))
			row.Field(idIndex).SetInt(int64(i))
			rows = reflect.Append(rows, row)
		}
	}
	return rows.Interface().([]interface{})
}

func InitializeAttribute(attr reflect.Value, numVertices int) {
	values := attr.Elem().FieldByName("Values")
	newValues := reflect.MakeSlice(values.Type(), numVertices, numVertices)
	values.Set(newValues)
	defined := attr.Elem().FieldByName("Defined")
	newDefined := reflect.MakeSlice(defined.Type(), numVertices, numVertices)
	defined.Set(newDefined)
}

func (s *Scalar) write(dirName string) error {
	fname := fmt.Sprintf("%v/serialized_data", dirName)
	f, err := os.Create(fname)
	defer f.Close()
	fw := bufio.NewWriter(f)
	if _, err := fw.Write([]byte(*s)); err != nil {
		return fmt.Errorf("Writing scalar to file failed: %v", err)
	}
	fw.Flush()
	successFile := fmt.Sprintf("%v/_SUCCESS", dirName)
	err = ioutil.WriteFile(successFile, nil, 0775)
	if err != nil {
		return fmt.Errorf("Failed to write success file: %v", err)
	}
	return nil
}
func readScalar(dirName string) (Scalar, error) {
	fname := fmt.Sprintf("%v/serialized_data", dirName)
	jsonEncoding, err := ioutil.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("Failed to read file: %v", err)
	}
	return Scalar(jsonEncoding), nil
}
