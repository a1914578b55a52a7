package typekit

// CompareBool returns -1 if a is false and b is true, +1 if a is true and b is false, and 0 otherwise.
func CompareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

// MinBool returns false unless both x and y are true.
func MinBool(x, y bool) bool {
	return x && y
}

// MaxBool returns true if either x or y is true.
func MaxBool(x, y bool) bool {
	return x || y
}

// MinBoolOf returns false if any of the provided values is false. ErrEmptyArgument is returned if no values are
// provided.
func MinBoolOf(values ...bool) (bool, error) {
	if len(values) == 0 {
		return false, ErrEmptyArgument
	}
	for _, v := range values {
		if !v {
			return false, nil
		}
	}
	return true, nil
}

// MaxBoolOf returns true if any of the provided values is true. ErrEmptyArgument is returned if no values are
// provided.
func MaxBoolOf(values ...bool) (bool, error) {
	if len(values) == 0 {
		return false, ErrEmptyArgument
	}
	for _, v := range values {
		if v {
			return true, nil
		}
	}
	return false, nil
}

// boolRank gives the position of b in the nullable boolean order, where nil ranks below false and false below true.
func boolRank(b *bool) int {
	switch {
	case b == nil:
		return 0
	case !*b:
		return 1
	default:
		return 2
	}
}

// MinBoolPtr returns the smaller of x and y under the ordering true > false > nil, so a nil argument is always the
// minimum. If they rank equally, x is returned.
func MinBoolPtr(x, y *bool) *bool {
	if boolRank(y) < boolRank(x) {
		return y
	}
	return x
}

// MaxBoolPtr returns the larger of x and y under the ordering true > false > nil. If they rank equally, y is
// returned.
func MaxBoolPtr(x, y *bool) *bool {
	if boolRank(y) < boolRank(x) {
		return x
	}
	return y
}

// MinBoolPtrOf returns the earliest minimum of the provided values under the ordering true > false > nil. It
// returns nil as soon as a nil value is found, and also when no values are provided.
func MinBoolPtrOf(values ...*bool) *bool {
	if len(values) == 0 {
		return nil
	}
	result := values[0]
	for _, v := range values {
		if v == nil {
			return nil
		}
		if boolRank(v) < boolRank(result) {
			result = v
		}
	}
	return result
}

// MaxBoolPtrOf returns the latest maximum of the provided values under the ordering true > false > nil. It returns
// nil if every value is nil or no values are provided.
func MaxBoolPtrOf(values ...*bool) *bool {
	var result *bool
	for _, v := range values {
		if boolRank(v) >= boolRank(result) {
			result = v
		}
	}
	return result
}
