/*
Package expr builds DynamoDB condition, filter and update expressions from
ordered attribute specifications.

DynamoDB reserves bare identifiers inside expression strings, so every
referenced attribute must go through a name placeholder (#name) and a value
placeholder (:name). The builders in this package produce the expression string
together with both placeholder maps:

	spec := expr.KeySpec{
		expr.Eq("status", "active"),
		expr.Between("age", 18, 30),
	}
	cond, names, values, err := expr.KeyCondition(spec)
	// cond   = "#status = :status AND #age BETWEEN :ageStart AND :ageEnd"
	// names  = {"#status": "status", "#age": "age"}
	// values = {":status": S("active"), ":ageStart": N("18"), ":ageEnd": N("30")}

Specs are slices rather than maps so that clause order follows the caller's
declaration order and the produced expression is deterministic.

All builders are pure: no I/O, no shared state. Values are converted to
DynamoDB attribute values with the SDK's attributevalue codec; a value the
codec cannot marshal is the only error path.
*/
package expr
