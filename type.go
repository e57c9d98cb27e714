package schema

import "encoding/json"

// PrimitiveType is one of the seven type names the "type" keyword
// recognizes.
type PrimitiveType string

const (
	StringType  PrimitiveType = "string"
	NumberType  PrimitiveType = "number"
	IntegerType PrimitiveType = "integer"
	BooleanType PrimitiveType = "boolean"
	ArrayType   PrimitiveType = "array"
	ObjectType  PrimitiveType = "object"
	NullType    PrimitiveType = "null"
)

// TypeSet holds the value of the "type" keyword, which may be encoded as
// a single string or an array of strings.
type TypeSet []PrimitiveType

func (t TypeSet) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]PrimitiveType(t))
}

func (t *TypeSet) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = TypeSet{PrimitiveType(single)}
		return nil
	}
	var multi []string
	if err := json.Unmarshal(data, &multi); err != nil {
		return ErrInvalidSchemaValue
	}
	set := make(TypeSet, len(multi))
	for i, v := range multi {
		set[i] = PrimitiveType(v)
	}
	*t = set
	return nil
}

// Contains reports whether t lists typ.
func (t TypeSet) Contains(typ PrimitiveType) bool {
	for _, v := range t {
		if v == typ {
			return true
		}
	}
	return false
}
