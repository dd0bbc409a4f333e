package pslex

import "strconv"

// isValidInteger and isValidReal perform the "parses cleanly" half of
// numeric/name disambiguation. internal/psparse calls strconv again
// (via ParseInteger/ParseReal below) to get the actual value once the
// lexer has already committed to a token type.
func isValidInteger(word string) bool {
	_, err := strconv.ParseInt(word, 10, 64)
	return err == nil
}

func isValidReal(word string) bool {
	_, err := strconv.ParseFloat(word, 64)
	return err == nil
}

// ParseInteger converts the source text of an Integer token.
func ParseInteger(word string) int64 {
	v, _ := strconv.ParseInt(word, 10, 64)
	return v
}

// ParseReal converts the source text of a Real token.
func ParseReal(word string) float64 {
	v, _ := strconv.ParseFloat(word, 64)
	return v
}
