package calculator

import "strings"

// Operation is a named single operation recognised by the platform.
type Operation string

const (
	OpAdd           Operation = "add"
	OpSubtract      Operation = "subtract"
	OpMultiply      Operation = "multiply"
	OpDivide        Operation = "divide"
	OpInverseDivide Operation = "inverse_divide"
	OpSquareRoot    Operation = "square_root"
	OpFactorial     Operation = "factorial"
	OpPower         Operation = "power"
	OpSine          Operation = "sine"
	OpCosine        Operation = "cosine"
	OpTangent       Operation = "tangent"
	OpPercentage    Operation = "percentage"
)

// Operations lists every supported operation.
var Operations = []Operation{
	OpAdd, OpSubtract, OpMultiply, OpDivide, OpInverseDivide, OpSquareRoot,
	OpFactorial, OpPower, OpSine, OpCosine, OpTangent, OpPercentage,
}

// aliases maps the platform's entity values and hyphenated spellings onto
// canonical operations.
var aliases = map[string]Operation{
	"inverse-divide": OpInverseDivide,
	"square-root":    OpSquareRoot,
	"sqrt":           OpSquareRoot,
	"sin":            OpSine,
	"cos":            OpCosine,
	"tan":            OpTangent,
	"percent":        OpPercentage,
}

// ParseOperation maps a raw entity value to an Operation. Unknown values are
// returned as-is with ok=false so the caller can still route on the count.
func ParseOperation(raw string) (Operation, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if op, ok := aliases[s]; ok {
		return op, true
	}
	op := Operation(s)
	return op, op.Valid()
}

// ParseOperations maps every raw value, preserving order and length.
func ParseOperations(raw []string) []Operation {
	ops := make([]Operation, 0, len(raw))
	for _, r := range raw {
		op, _ := ParseOperation(r)
		ops = append(ops, op)
	}
	return ops
}

// Valid reports whether op is a supported operation.
func (op Operation) Valid() bool {
	for _, known := range Operations {
		if op == known {
			return true
		}
	}
	return false
}

// Unary reports whether op consumes only the first operand.
func (op Operation) Unary() bool {
	switch op {
	case OpSquareRoot, OpFactorial, OpSine, OpCosine, OpTangent:
		return true
	}
	return false
}
