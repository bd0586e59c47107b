package core

// UnknownViolationName is the display placeholder for penalties whose
// violation type has since been deleted. Dangling references are tolerated.
const UnknownViolationName = "مخالفة غير معروفة"

func FindViolationType(types []ViolationType, id string) (ViolationType, bool) {
	for _, vt := range types {
		if vt.ID == id {
			return vt, true
		}
	}
	return ViolationType{}, false
}

// ViolationName resolves a violation id for display, degrading to the
// unknown placeholder instead of failing on a dangling reference.
func ViolationName(types []ViolationType, id string) string {
	if vt, ok := FindViolationType(types, id); ok {
		return vt.Name
	}
	return UnknownViolationName
}
