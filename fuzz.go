package emblem

// Fuzz is the entry point for go-fuzz.  Inputs are treated as expression
// files, one expression per line.
func Fuzz(data []byte) int {
	var exprs, err = NewBundle().
		AddExpressionString("", string(data)).
		Compile()

	if err != nil || len(exprs) == 0 {
		return 0
	}

	return 1
}
