package ast

import "fmt"

// DataType is a column data type. The variant set is closed; dialect
// specific names that map to none of these become CustomType.
type DataType interface {
	typeNode()
	// String returns the SQL rendering of the type, e.g. VARCHAR(255).
	String() string
}

// IntegerType is a 32-bit (or sized) integer column.
type IntegerType struct {
	Size     int // display width, 32 when unspecified
	Unsigned bool
}

// BigIntType is a 64-bit integer column.
type BigIntType struct {
	Unsigned bool
}

// SmallIntType is a 16-bit integer column.
type SmallIntType struct {
	Unsigned bool
}

// TinyIntType is an 8-bit integer column.
type TinyIntType struct {
	Unsigned bool
}

// VarcharType is a bounded variable-length string column.
type VarcharType struct {
	Length int // 0 when unspecified
}

// CharType is a fixed-length string column.
type CharType struct {
	Length int
}

// TextType is an unbounded string column.
type TextType struct{}

// BooleanType is a boolean column.
type BooleanType struct{}

// FloatType is a single-precision floating point column.
type FloatType struct {
	Precision int // 0 when unspecified
}

// DoubleType is a double-precision floating point column.
type DoubleType struct{}

// DecimalType is an exact numeric column.
type DecimalType struct {
	Precision int
	Scale     int
}

// DateType is a calendar date column.
type DateType struct{}

// TimeType is a time-of-day column.
type TimeType struct{}

// DateTimeType is a date-and-time column.
type DateTimeType struct{}

// TimestampType is a timestamp column.
type TimestampType struct{}

// JSONType is a JSON document column.
type JSONType struct{}

// UUIDType is a UUID column.
type UUIDType struct{}

// BlobType is a binary column.
type BlobType struct{}

// CustomType is any type name not in the canonical set.
type CustomType struct {
	Name string
}

func (IntegerType) typeNode()   {}
func (BigIntType) typeNode()    {}
func (SmallIntType) typeNode()  {}
func (TinyIntType) typeNode()   {}
func (VarcharType) typeNode()   {}
func (CharType) typeNode()      {}
func (TextType) typeNode()      {}
func (BooleanType) typeNode()   {}
func (FloatType) typeNode()     {}
func (DoubleType) typeNode()    {}
func (DecimalType) typeNode()   {}
func (DateType) typeNode()      {}
func (TimeType) typeNode()      {}
func (DateTimeType) typeNode()  {}
func (TimestampType) typeNode() {}
func (JSONType) typeNode()      {}
func (UUIDType) typeNode()      {}
func (BlobType) typeNode()      {}
func (CustomType) typeNode()    {}

func (t IntegerType) String() string {
	s := "INTEGER"
	if t.Size != 0 && t.Size != 32 {
		s = fmt.Sprintf("INTEGER(%d)", t.Size)
	}
	if t.Unsigned {
		s += " UNSIGNED"
	}
	return s
}

func (t BigIntType) String() string {
	if t.Unsigned {
		return "BIGINT UNSIGNED"
	}
	return "BIGINT"
}

func (t SmallIntType) String() string {
	if t.Unsigned {
		return "SMALLINT UNSIGNED"
	}
	return "SMALLINT"
}

func (t TinyIntType) String() string {
	if t.Unsigned {
		return "TINYINT UNSIGNED"
	}
	return "TINYINT"
}

func (t VarcharType) String() string {
	if t.Length > 0 {
		return fmt.Sprintf("VARCHAR(%d)", t.Length)
	}
	return "VARCHAR"
}

func (t CharType) String() string {
	if t.Length > 0 {
		return fmt.Sprintf("CHAR(%d)", t.Length)
	}
	return "CHAR"
}

func (TextType) String() string    { return "TEXT" }
func (BooleanType) String() string { return "BOOLEAN" }

func (t FloatType) String() string {
	if t.Precision > 0 {
		return fmt.Sprintf("FLOAT(%d)", t.Precision)
	}
	return "FLOAT"
}

func (DoubleType) String() string { return "DOUBLE" }

func (t DecimalType) String() string {
	switch {
	case t.Precision > 0 && t.Scale > 0:
		return fmt.Sprintf("DECIMAL(%d,%d)", t.Precision, t.Scale)
	case t.Precision > 0:
		return fmt.Sprintf("DECIMAL(%d)", t.Precision)
	default:
		return "DECIMAL"
	}
}

func (DateType) String() string      { return "DATE" }
func (TimeType) String() string      { return "TIME" }
func (DateTimeType) String() string  { return "DATETIME" }
func (TimestampType) String() string { return "TIMESTAMP" }
func (JSONType) String() string      { return "JSON" }
func (UUIDType) String() string      { return "UUID" }
func (BlobType) String() string      { return "BLOB" }
func (t CustomType) String() string  { return t.Name }
