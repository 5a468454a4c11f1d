/*
Package recital runs a fixed sequence of print actions against a line sink and
then waits for a single unit of input before returning.

# Lifecycle

A Runner moves through three phases, linearly and unconditionally:

  - running: every action of the sequence is executed in order.
  - awaiting_input: exactly one byte is read from the input; end of stream is accepted.
  - terminated: Run returns nil.

A write failure on the sink or a read failure other than end of stream aborts
the run and is returned to the caller.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/recital"
	)

	func main() {
		r := recital.NewRunner()
		if err := r.Run(context.Background()); err != nil {
			log.Fatal(err)
		}
	}
*/
package recital
