// Package main provides the CLI entrypoint for wrapper-generator.
//
// wrapper-generator finds type declarations annotated with //wrapgen:wrap and
// generates their value-object implementation: constructors, accessors,
// equality, hashing, ordering, formatting and, for numeric wrappers,
// arithmetic.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
