package console

// Function selects one of the engine operations from the menu.
type Function int

//go:generate go tool stringer -type=Function
const (
	PARK_TRANS  = Function(0)
	SINE        = Function(1)
	COSINE      = Function(2)
	TAN         = Function(3)
	ARC_TAN     = Function(4)
	HYP_SINE    = Function(5)
	HYP_COSINE  = Function(6)
	HYP_TAN     = Function(7)
	HYP_ARC_TAN = Function(8)
	SQRT        = Function(9)
)

// functionLabel holds the menu text, indexed by Function.
var functionLabel = []string{
	"park transform",
	"sine",
	"cosine",
	"tangent",
	"arc tangent",
	"hyperbolic sine",
	"hyperbolic cosine",
	"hyperbolic tangent",
	"hyperbolic arc tangent",
	"square root",
}
