package main

import (
	"fmt"
	"io"
)

func fprintf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, format, a...)
}

func fprintln(w io.Writer, a ...interface{}) {
	fmt.Fprintln(w, a...)
}
