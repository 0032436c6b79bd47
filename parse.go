package mpc

// Parse runs p against input, labelling any error with filename, per §6's
// parse(filename_label, input, parser) -> success(value) | failure(error).
// cfg is optional; pass nil to use the defaults (no tracing, DefaultMaxDepth).
func Parse(filename string, input []byte, p *Parser, cfg *Config) (Value, *ParseError) {
	cur := NewCursor(filename, input)
	return Run(p, cur, cfg)
}

// ParseString is Parse over a string input, avoiding a []byte copy at the
// call site for the common case of an in-memory string.
func ParseString(filename string, input string, p *Parser, cfg *Config) (Value, *ParseError) {
	return Parse(filename, []byte(input), p, cfg)
}
