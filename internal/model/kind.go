package model

import "fmt"

// ShapeKind is the closed set of shape variants in the type graph. Every
// dispatch site switching on ShapeKind must handle all variants explicitly;
// an unrecognized kind is always a hard failure, never silently dropped.
type ShapeKind int

const (
	KindBoolean ShapeKind = iota
	KindByte
	KindShort
	KindInteger
	KindLong
	KindFloat
	KindDouble
	KindBigInteger
	KindBigDecimal
	KindBlob
	KindString
	KindEnum
	KindTimestamp
	KindDocument
	KindList
	KindSet
	KindMap
	KindStructure
	KindUnion
	KindMember
	KindOperation
	KindResource
	KindService
)

// String returns the model-document spelling of the kind.
func (k ShapeKind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindByte:
		return "byte"
	case KindShort:
		return "short"
	case KindInteger:
		return "integer"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindBigInteger:
		return "bigInteger"
	case KindBigDecimal:
		return "bigDecimal"
	case KindBlob:
		return "blob"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindTimestamp:
		return "timestamp"
	case KindDocument:
		return "document"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	case KindStructure:
		return "structure"
	case KindUnion:
		return "union"
	case KindMember:
		return "member"
	case KindOperation:
		return "operation"
	case KindResource:
		return "resource"
	case KindService:
		return "service"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// ParseShapeKind converts a model-document kind spelling to a ShapeKind.
func ParseShapeKind(s string) (ShapeKind, error) {
	switch s {
	case "boolean":
		return KindBoolean, nil
	case "byte":
		return KindByte, nil
	case "short":
		return KindShort, nil
	case "integer":
		return KindInteger, nil
	case "long":
		return KindLong, nil
	case "float":
		return KindFloat, nil
	case "double":
		return KindDouble, nil
	case "bigInteger":
		return KindBigInteger, nil
	case "bigDecimal":
		return KindBigDecimal, nil
	case "blob":
		return KindBlob, nil
	case "string":
		return KindString, nil
	case "enum":
		return KindEnum, nil
	case "timestamp":
		return KindTimestamp, nil
	case "document":
		return KindDocument, nil
	case "list":
		return KindList, nil
	case "set":
		return KindSet, nil
	case "map":
		return KindMap, nil
	case "structure":
		return KindStructure, nil
	case "union":
		return KindUnion, nil
	case "member":
		return KindMember, nil
	case "operation":
		return KindOperation, nil
	case "resource":
		return KindResource, nil
	case "service":
		return KindService, nil
	default:
		return 0, fmt.Errorf("unknown shape kind %q", s)
	}
}

// IsScalar reports whether the kind is a simple leaf type.
func (k ShapeKind) IsScalar() bool {
	switch k {
	case KindBoolean, KindByte, KindShort, KindInteger, KindLong,
		KindFloat, KindDouble, KindBigInteger, KindBigDecimal,
		KindBlob, KindString, KindEnum, KindTimestamp, KindDocument:
		return true
	}
	return false
}

// IsAggregate reports whether the kind carries member edges to other shapes.
func (k ShapeKind) IsAggregate() bool {
	switch k {
	case KindList, KindSet, KindMap, KindStructure, KindUnion:
		return true
	}
	return false
}

// IsNumeric reports whether the kind is a fixed-width numeric type.
func (k ShapeKind) IsNumeric() bool {
	switch k {
	case KindByte, KindShort, KindInteger, KindLong, KindFloat, KindDouble:
		return true
	}
	return false
}
