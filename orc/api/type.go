package api

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/haohui/orc/orc/common"
	"github.com/haohui/orc/pb/pb"
)

// TypeDescription is one node of the schema tree. Column ids are assigned by
// a depth-first pre-order walk from the root, so every child id is greater
// than its parent's and less than the parent's next sibling's.
type TypeDescription struct {
	Id            uint32
	Kind          pb.Type_Kind
	ChildrenNames []string
	Children      []*TypeDescription

	MaximumLength uint32
	Precision     uint32
	Scale         uint32
}

// AssignIds numbers the subtree pre-order starting at root and returns the
// next free id.
func (td *TypeDescription) AssignIds(root uint32) uint32 {
	td.Id = root
	root++
	for _, child := range td.Children {
		root = child.AssignIds(root)
	}
	return root
}

func (td *TypeDescription) SubtypeCount() int {
	return len(td.Children)
}

func (td *TypeDescription) Subtype(i int) *TypeDescription {
	return td.Children[i]
}

func (td *TypeDescription) FieldName(i int) string {
	return td.ChildrenNames[i]
}

func (td *TypeDescription) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("id %d, kind %s", td.Id, td.Kind.String()))
	for i, name := range td.ChildrenNames {
		sb.WriteString(fmt.Sprintf("\nchild %s: %s", name, td.Children[i].String()))
	}
	return sb.String()
}

// SchemaFromTypes reconstructs the schema tree from the footer's flat type
// table, whose edges are subtype index lists. The root is types[0].
func SchemaFromTypes(types []*pb.Type) (*TypeDescription, error) {
	if len(types) == 0 {
		return nil, errors.WithStack(common.ParseError{What: "footer has no types"})
	}
	nodes := make([]*TypeDescription, len(types))
	for i, t := range types {
		nodes[i] = &TypeDescription{
			Kind:          t.GetKind(),
			Id:            uint32(i),
			MaximumLength: t.GetMaximumLength(),
			Precision:     t.GetPrecision(),
			Scale:         t.GetScale(),
		}
	}
	for i, t := range types {
		nodes[i].Children = make([]*TypeDescription, len(t.Subtypes))
		nodes[i].ChildrenNames = make([]string, len(t.Subtypes))
		for j, sub := range t.Subtypes {
			if sub <= uint32(i) || sub >= uint32(len(types)) {
				return nil, errors.WithStack(common.ParseError{What: fmt.Sprintf("type %d has invalid subtype %d", i, sub)})
			}
			if len(t.FieldNames) > j {
				nodes[i].ChildrenNames[j] = t.FieldNames[j]
			}
			nodes[i].Children[j] = nodes[sub]
		}
	}
	return nodes[0], nil
}

// CreateRowBatch builds the batch tree for the subtree rooted at td,
// materializing only selected columns. A nil selection materializes
// everything.
func CreateRowBatch(td *TypeDescription, selected []bool, capacity int) (ColumnVectorBatch, error) {
	switch td.Kind {
	case pb.Type_BOOLEAN, pb.Type_BYTE, pb.Type_SHORT, pb.Type_INT, pb.Type_LONG, pb.Type_TIMESTAMP, pb.Type_DATE:
		return NewLongBatch(capacity), nil

	case pb.Type_FLOAT, pb.Type_DOUBLE:
		return NewDoubleBatch(capacity), nil

	case pb.Type_STRING, pb.Type_BINARY, pb.Type_CHAR, pb.Type_VARCHAR:
		return NewStringBatch(capacity), nil

	case pb.Type_STRUCT:
		result := NewStructBatch(capacity)
		for _, child := range td.Children {
			if selected == nil || selected[child.Id] {
				field, err := CreateRowBatch(child, selected, capacity)
				if err != nil {
					return nil, err
				}
				result.Fields = append(result.Fields, field)
			}
		}
		return result, nil

	case pb.Type_LIST:
		result := NewListBatch(capacity)
		child := td.Children[0]
		if selected == nil || selected[child.Id] {
			elements, err := CreateRowBatch(child, selected, capacity)
			if err != nil {
				return nil, err
			}
			result.Elements = elements
		}
		return result, nil

	case pb.Type_MAP:
		result := NewMapBatch(capacity)
		if child := td.Children[0]; selected == nil || selected[child.Id] {
			keys, err := CreateRowBatch(child, selected, capacity)
			if err != nil {
				return nil, err
			}
			result.Keys = keys
		}
		if child := td.Children[1]; selected == nil || selected[child.Id] {
			values, err := CreateRowBatch(child, selected, capacity)
			if err != nil {
				return nil, err
			}
			result.Values = values
		}
		return result, nil

	case pb.Type_DECIMAL:
		if td.Precision == 0 || td.Precision > 18 {
			b := NewDecimal128Batch(capacity)
			b.Precision = int32(td.Precision)
			b.Scale = int32(td.Scale)
			return b, nil
		}
		b := NewDecimal64Batch(capacity)
		b.Precision = int32(td.Precision)
		b.Scale = int32(td.Scale)
		return b, nil

	default:
		return nil, errors.WithStack(common.NotImplemented{Feature: fmt.Sprintf("row batch for type %s", td.Kind)})
	}
}
