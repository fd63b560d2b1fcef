package graphql

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/99designs/gqlgen/graphql"
)

// project marshals a resolver result and writes only the fields the query selected
func project(opCtx *graphql.OperationContext, value any, field graphql.CollectedField) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", field.Name, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", field.Name, err)
	}

	var buf bytes.Buffer
	if err := writeValue(opCtx, &buf, tree, field, true); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeValue writes v as the field's type. top marks a root field, which is always nullable.
func writeValue(opCtx *graphql.OperationContext, buf *bytes.Buffer, v any, field graphql.CollectedField, top bool) error {
	typ := field.Definition.Type
	typeName := typ.Name()

	if v == nil {
		if typ.NonNull && !top {
			return fmt.Errorf("non-null field %s resolved to null", field.Name)
		}
		buf.WriteString("null")
		return nil
	}

	switch typeName {
	case "JSON":
		return writeJSON(buf, v)
	case "Int64":
		return writeInt64(buf, v)
	}

	switch v := v.(type) {
	case []any:
		buf.WriteByte('[')
		for i, elem := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(opCtx, buf, elem, field, false); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case map[string]any:
		return writeObject(opCtx, buf, v, typeName, field)
	default:
		return writeJSON(buf, v)
	}
}

func writeObject(opCtx *graphql.OperationContext, buf *bytes.Buffer, obj map[string]any, typeName string, field graphql.CollectedField) error {
	fields := graphql.CollectFields(opCtx, field.Selections, []string{typeName})

	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(buf, f.Alias); err != nil {
			return err
		}
		buf.WriteByte(':')
		if f.Name == "__typename" {
			if err := writeJSON(buf, typeName); err != nil {
				return err
			}
			continue
		}
		if err := writeValue(opCtx, buf, obj[f.Name], f, false); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// writeInt64 writes a 64-bit integer as a string to avoid JavaScript number precision issues
func writeInt64(buf *bytes.Buffer, v any) error {
	switch n := v.(type) {
	case []any:
		buf.WriteByte('[')
		for i, elem := range n {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeInt64(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return fmt.Errorf("cannot serialize %q as Int64: %w", n, err)
		}
		buf.WriteString(strconv.Quote(strconv.FormatInt(i, 10)))
		return nil
	default:
		return fmt.Errorf("cannot serialize %T as Int64", v)
	}
}

func writeJSON(buf *bytes.Buffer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
