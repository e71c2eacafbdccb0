package lasio

// ParseOptions holds configuration for parsing.
type ParseOptions struct {
	// encoding names the character set the file is decoded from; empty
	// means no transcoding.
	encoding string
}

// defaultOptions returns the default parse options.
func defaultOptions() ParseOptions {
	return ParseOptions{
		encoding: "",
	}
}

// clone creates a copy of ParseOptions.
func (o ParseOptions) clone() ParseOptions {
	return ParseOptions{
		encoding: o.encoding,
	}
}
