/*
Package domain contains the core models of the recital program.

It is kept free of I/O: actions write through the Sink abstraction and the
Runner in the root package decides where the lines end up.

# Key Entities

  - Action: a named, immutable unit of the fixed print sequence.
  - ActionKind: how an action produces its text (single, multi, conditional, nested).
  - Sink: the line-oriented destination actions write to.
  - Status: the Runner's lifecycle (running, awaiting input, terminated).
*/
package domain
