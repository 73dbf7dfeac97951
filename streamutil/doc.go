// Package streamutil provides small stream helpers: buffered copying
// and line-oriented reading and writing.
//
// Lines iterates a reader without loading it into memory:
//
//	for line, err := range streamutil.Lines(r) {
//	    if err != nil {
//	        return err
//	    }
//	    process(line)
//	}
//
// ReadLines and WriteLines cover the slice-at-once cases.
package streamutil
