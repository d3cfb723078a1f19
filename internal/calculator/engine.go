package calculator

// Request is one inbound calculation turn.
type Request struct {
	Phrase     string
	Operations []Operation
	Operand1   float64
	Operand2   float64
}

// Calculate routes a request: exactly one recognised operation uses Apply,
// anything else goes through Normalize and Evaluate on the raw phrase.
func Calculate(req Request) Result {
	if len(req.Operations) == 1 {
		return Apply(req.Operations[0], req.Operand1, req.Operand2, req.Phrase)
	}
	return Cascade(req.Phrase)
}

// Cascade evaluates a free-form phrase.
func Cascade(phrase string) Result {
	canonical, err := Normalize(phrase)
	if err != nil {
		r := tooLong()
		r.Path = PathCascade
		return r
	}

	v, ok := Evaluate(canonical)
	if !ok {
		r := unparseable()
		r.Path = PathCascade
		return r
	}

	r := number(v)
	r.Path = PathCascade
	return settle(r)
}
