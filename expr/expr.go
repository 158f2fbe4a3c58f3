/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package expr

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Range is an inclusive [Start, End] interval for a BETWEEN clause.
type Range struct {
	Start any
	End   any
}

// KeyValue is a single entry of a KeySpec: an attribute name bound either to a
// scalar value (equality) or to a Range (BETWEEN). When Range is set, Value is
// ignored.
type KeyValue struct {
	Name  string
	Value any
	Range *Range
}

// KeySpec identifies one or more items by attribute conditions. Entries keep
// their declaration order, which determines clause order in the generated
// expression.
type KeySpec []KeyValue

// Eq returns a KeyValue matching items whose attribute equals value.
func Eq(name string, value any) KeyValue {
	return KeyValue{Name: name, Value: value}
}

// Between returns a KeyValue matching items whose attribute falls inside the
// inclusive [start, end] range.
func Between(name string, start, end any) KeyValue {
	return KeyValue{Name: name, Range: &Range{Start: start, End: end}}
}

// Filter carries a caller-written condition string plus the key bindings for
// its placeholders. It contributes to a request only when both fields are set.
type Filter struct {
	// Condition is used verbatim, e.g. "#age > :age". The caller supplies the
	// placeholder syntax directly.
	Condition string
	// Keys supplies the placeholder bindings, translated with the same
	// range-vs-scalar rule as a key condition.
	Keys KeySpec
}

// Assignment is a single entry of an UpdateSpec: attribute name to new value.
type Assignment struct {
	Name  string
	Value any
}

// UpdateSpec lists the attributes to overwrite in an update, in declaration
// order.
type UpdateSpec []Assignment

// Set returns an Assignment writing value to the named attribute.
func Set(name string, value any) Assignment {
	return Assignment{Name: name, Value: value}
}

// KeyCondition translates a KeySpec into a DynamoDB key condition expression
// plus its name and value placeholder maps. Scalar entries become
// "#name = :name"; range entries become "#name BETWEEN :nameStart AND :nameEnd".
// Clauses are joined with " AND " in spec order. An empty spec yields an empty
// expression and nil maps.
func KeyCondition(spec KeySpec) (string, map[string]string, map[string]types.AttributeValue, error) {
	if len(spec) == 0 {
		return "", nil, nil, nil
	}

	clauses := make([]string, 0, len(spec))
	names := make(map[string]string, len(spec))
	values := make(map[string]types.AttributeValue, len(spec))

	for _, kv := range spec {
		if err := bindKeyValue(kv, &clauses, names, values); err != nil {
			return "", nil, nil, err
		}
	}

	return strings.Join(clauses, " AND "), names, values, nil
}

// FilterCondition translates a Filter into its condition string plus the
// placeholder maps derived from its keys. A filter missing either the
// condition or the keys contributes nothing. The returned maps live in the
// same namespace as the key condition's placeholders; the caller merges them
// into a single request.
func FilterCondition(f Filter) (string, map[string]string, map[string]types.AttributeValue, error) {
	if f.Condition == "" || len(f.Keys) == 0 {
		return "", nil, nil, nil
	}

	names := make(map[string]string, len(f.Keys))
	values := make(map[string]types.AttributeValue, len(f.Keys))

	for _, kv := range f.Keys {
		var discard []string
		if err := bindKeyValue(kv, &discard, names, values); err != nil {
			return "", nil, nil, err
		}
	}

	return f.Condition, names, values, nil
}

// UpdateExpression translates an UpdateSpec into a "set" update expression plus
// its placeholder maps. Every entry becomes "#name = :name"; assignments are
// joined with ", ". There is no range form for updates.
func UpdateExpression(spec UpdateSpec) (string, map[string]string, map[string]types.AttributeValue, error) {
	if len(spec) == 0 {
		return "", nil, nil, nil
	}

	clauses := make([]string, 0, len(spec))
	names := make(map[string]string, len(spec))
	values := make(map[string]types.AttributeValue, len(spec))

	for _, a := range spec {
		av, err := attributevalue.Marshal(a.Value)
		if err != nil {
			return "", nil, nil, fmt.Errorf("failed to marshal value for %q: %w", a.Name, err)
		}
		clauses = append(clauses, fmt.Sprintf("#%s = :%s", a.Name, a.Name))
		names["#"+a.Name] = a.Name
		values[":"+a.Name] = av
	}

	return "set " + strings.Join(clauses, ", "), names, values, nil
}

// KeyAttributes converts a KeySpec into the raw attribute map used as the Key
// field of GetItem/UpdateItem/DeleteItem requests. No placeholders are
// involved; each entry's value is marshaled directly under its attribute name.
// Range entries are marshaled as two-element lists and left for the store to
// reject, matching the pass-through validation stance of this layer.
func KeyAttributes(spec KeySpec) (map[string]types.AttributeValue, error) {
	if len(spec) == 0 {
		return nil, nil
	}

	key := make(map[string]types.AttributeValue, len(spec))
	for _, kv := range spec {
		v := kv.Value
		if kv.Range != nil {
			v = []any{kv.Range.Start, kv.Range.End}
		}
		av, err := attributevalue.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal key attribute %q: %w", kv.Name, err)
		}
		key[kv.Name] = av
	}
	return key, nil
}

// bindKeyValue appends the clause for one KeyValue and records its placeholder
// bindings.
func bindKeyValue(kv KeyValue, clauses *[]string, names map[string]string, values map[string]types.AttributeValue) error {
	names["#"+kv.Name] = kv.Name

	if kv.Range != nil {
		start, err := attributevalue.Marshal(kv.Range.Start)
		if err != nil {
			return fmt.Errorf("failed to marshal range start for %q: %w", kv.Name, err)
		}
		end, err := attributevalue.Marshal(kv.Range.End)
		if err != nil {
			return fmt.Errorf("failed to marshal range end for %q: %w", kv.Name, err)
		}
		*clauses = append(*clauses, fmt.Sprintf("#%s BETWEEN :%sStart AND :%sEnd", kv.Name, kv.Name, kv.Name))
		values[":"+kv.Name+"Start"] = start
		values[":"+kv.Name+"End"] = end
		return nil
	}

	av, err := attributevalue.Marshal(kv.Value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %q: %w", kv.Name, err)
	}
	*clauses = append(*clauses, fmt.Sprintf("#%s = :%s", kv.Name, kv.Name))
	values[":"+kv.Name] = av
	return nil
}
