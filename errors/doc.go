/*
Package errors provides sentinel errors and caller-side classification helpers
for dynatable.

The table facade never translates provider errors; it wraps them with operation
context only. These helpers let callers classify the wrapped provider error
without reaching into SDK types themselves:

	if _, err := users.Update(ctx, key, updates, over); errors.IsConditionFailed(err) {
		// the guard condition rejected the write
	}
*/
package errors
