package helper

// AsType asserts v to T. It reports false for a nil v or a value of another type,
// so it is safe to feed the result of recover() directly.
func AsType[T any](v any) (res T, ok bool) {
	if v != nil {
		res, ok = v.(T)
	}
	return
}
