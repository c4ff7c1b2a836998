package nbt

import (
	"bytes"
	"encoding/json"

	"github.com/oakmoss/mcwire/errs"
	"github.com/oakmoss/mcwire/value"
)

// DebugJSON renders v as a self-describing JSON document for debugging and
// test fixtures — not a wire format. Each node carries its tag kind
// alongside its value so ParseDebugJSON can reconstruct an identical
// value.Value tree.
func DebugJSON(v value.Value) ([]byte, error) {
	return json.Marshal(toJSONNode(v))
}

func toJSONNode(v value.Value) interface{} {
	switch t := v.(type) {
	case value.Int8:
		return map[string]interface{}{"type": "int8", "value": int8(t)}
	case value.Int16:
		return map[string]interface{}{"type": "int16", "value": int16(t)}
	case value.Int32:
		return map[string]interface{}{"type": "int32", "value": int32(t)}
	case value.Int64:
		return map[string]interface{}{"type": "int64", "value": int64(t)}
	case value.Float32:
		return map[string]interface{}{"type": "float32", "value": float32(t)}
	case value.Float64:
		return map[string]interface{}{"type": "float64", "value": float64(t)}
	case value.Bool:
		return map[string]interface{}{"type": "bool", "value": bool(t)}
	case value.Bytes:
		return map[string]interface{}{"type": "bytes", "value": []byte(t)}
	case value.String:
		return map[string]interface{}{"type": "string", "value": string(t)}
	case value.List:
		items := make([]interface{}, len(t))
		for i, item := range t {
			items[i] = toJSONNode(item)
		}
		return map[string]interface{}{"type": "list", "items": items}
	case value.Compound:
		entries := make([]map[string]interface{}, len(t))
		for i, e := range t {
			entries[i] = map[string]interface{}{"key": e.Key, "value": toJSONNode(e.Value)}
		}
		return map[string]interface{}{"type": "compound", "entries": entries}
	default:
		return map[string]interface{}{"type": "unknown"}
	}
}

// ParseDebugJSON reconstructs a value.Value tree from DebugJSON output.
// Every integer is read through json.Number rather than decoded straight to
// float64 (float32/float64 nodes are decoded as float64), the same technique landru27-nbt's NBT.UnmarshalJSON uses to keep
// full 64-bit long precision (seeds, UUIDs, and similar values lose bits if
// routed through a float64 intermediate).
func ParseDebugJSON(data []byte) (value.Value, error) {
	var raw map[string]json.RawMessage
	if err := decodeWithNumber(data, &raw); err != nil {
		return nil, errs.Customf("nbt: malformed debug json: %v", err)
	}
	return parseNode(raw)
}

func decodeWithNumber(data []byte, out interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(out)
}

func parseNode(raw map[string]json.RawMessage) (value.Value, error) {
	var typ string
	if err := decodeWithNumber(raw["type"], &typ); err != nil {
		return nil, errs.Customf("nbt: debug json node missing type: %v", err)
	}

	switch typ {
	case "int8":
		n, err := parseJSONInt(raw["value"])
		if err != nil {
			return nil, err
		}
		return value.Int8(int8(n)), nil
	case "int16":
		n, err := parseJSONInt(raw["value"])
		if err != nil {
			return nil, err
		}
		return value.Int16(int16(n)), nil
	case "int32":
		n, err := parseJSONInt(raw["value"])
		if err != nil {
			return nil, err
		}
		return value.Int32(int32(n)), nil
	case "int64":
		n, err := parseJSONInt(raw["value"])
		if err != nil {
			return nil, err
		}
		return value.Int64(n), nil
	case "float32":
		var f float64
		if err := decodeWithNumber(raw["value"], &f); err != nil {
			return nil, errs.Customf("nbt: debug json float32: %v", err)
		}
		return value.Float32(float32(f)), nil
	case "float64":
		var f float64
		if err := decodeWithNumber(raw["value"], &f); err != nil {
			return nil, errs.Customf("nbt: debug json float64: %v", err)
		}
		return value.Float64(f), nil
	case "bool":
		var b bool
		if err := decodeWithNumber(raw["value"], &b); err != nil {
			return nil, errs.Customf("nbt: debug json bool: %v", err)
		}
		return value.Bool(b), nil
	case "bytes":
		var b []byte
		if err := decodeWithNumber(raw["value"], &b); err != nil {
			return nil, errs.Customf("nbt: debug json bytes: %v", err)
		}
		return value.Bytes(b), nil
	case "string":
		var s string
		if err := decodeWithNumber(raw["value"], &s); err != nil {
			return nil, errs.Customf("nbt: debug json string: %v", err)
		}
		return value.String(s), nil
	case "list":
		var rawItems []json.RawMessage
		if err := decodeWithNumber(raw["items"], &rawItems); err != nil {
			return nil, errs.Customf("nbt: debug json list: %v", err)
		}
		list := make(value.List, len(rawItems))
		for i, item := range rawItems {
			var m map[string]json.RawMessage
			if err := decodeWithNumber(item, &m); err != nil {
				return nil, errs.Customf("nbt: debug json list item: %v", err)
			}
			v, err := parseNode(m)
			if err != nil {
				return nil, err
			}
			list[i] = v
		}
		return list, nil
	case "compound":
		var rawEntries []struct {
			Key   string          `json:"key"`
			Value json.RawMessage `json:"value"`
		}
		if err := decodeWithNumber(raw["entries"], &rawEntries); err != nil {
			return nil, errs.Customf("nbt: debug json compound: %v", err)
		}
		compound := make(value.Compound, len(rawEntries))
		for i, e := range rawEntries {
			var m map[string]json.RawMessage
			if err := decodeWithNumber(e.Value, &m); err != nil {
				return nil, errs.Customf("nbt: debug json compound entry: %v", err)
			}
			v, err := parseNode(m)
			if err != nil {
				return nil, err
			}
			compound[i] = value.Entry{Key: e.Key, Value: v}
		}
		return compound, nil
	default:
		return nil, errs.Customf("nbt: unknown debug json type %q", typ)
	}
}

func parseJSONInt(raw json.RawMessage) (int64, error) {
	var n json.Number
	if err := decodeWithNumber(raw, &n); err != nil {
		return 0, errs.Customf("nbt: debug json integer: %v", err)
	}
	v, err := n.Int64()
	if err != nil {
		return 0, errs.Customf("nbt: debug json integer %q out of range: %v", n, err)
	}
	return v, nil
}
