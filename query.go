package hwplane

// Query names one of the five capability questions.
type Query uint8

const (
	QueryFormat Query = iota
	QuerySize
	QueryBlending
	QueryScaling
	QueryTransform
)

// String returns the query name.
func (q Query) String() string {
	switch q {
	case QueryFormat:
		return "Format"
	case QuerySize:
		return "Size"
	case QueryBlending:
		return "Blending"
	case QueryScaling:
		return "Scaling"
	case QueryTransform:
		return "Transform"
	default:
		return "Unknown"
	}
}
