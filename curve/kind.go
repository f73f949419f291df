package curve

// Kind selects the basis used to interpolate control points
type Kind int

const (
	// CubicBezier passes through P0 and the last point; 3k+1 points form k segments
	CubicBezier Kind = iota
	// CubicBSpline approximates its control polygon; n points form n-3 uniform spans
	CubicBSpline
)

var kindNames = map[Kind]string{
	CubicBezier:  "bezier",
	CubicBSpline: "bspline",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind resolves a flag value into a Kind
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// segmentCount returns the number of cubic segments n control points form
// for kind k, or 0 if the count is invalid
func segmentCount(k Kind, n int) int {
	switch k {
	case CubicBezier:
		if n < 4 || (n-1)%3 != 0 {
			return 0
		}
		return (n - 1) / 3
	case CubicBSpline:
		if n < 4 {
			return 0
		}
		return n - 3
	}
	return 0
}
