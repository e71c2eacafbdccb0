// Package reader provides file-level reading of LAS 2.0 well logs.
//
// This package owns the I/O side of parsing: opening the file, decoding its
// character set, and handing the text to the core parse engine. The file
// handle is released on every exit path, including parse failure.
//
// # Opening Files
//
// Use [Open] to open a log file for parsing:
//
//	r, err := reader.Open("example1.las")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	doc, err := r.Parse()
//
// Or use [NewReader] with any io.Reader when the caller manages the source.
//
// # Character Sets
//
// LAS files are nominally ASCII, but files from older acquisition software
// frequently carry Windows-1252 or Latin-1 bytes in descriptions (degree
// signs, accented well names). [WithEncoding] selects the transcoding applied
// before parsing; the default passes bytes through unchanged.
package reader
