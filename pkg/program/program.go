// Package program defines the fixed print sequence executed by the recital Runner.
package program

import (
	"fmt"

	"github.com/aretw0/recital/pkg/domain"
)

// CheckInput is the value Check is invoked with in the program sequence.
const CheckInput = 10

// AlotCount is the number of lines PrintAlot emits.
const AlotCount = 8

// Print emits a single greeting.
func Print(s domain.Sink) error {
	return s.WriteLine("Hello")
}

// Check emits "Error" for any positive value and "Secret Key Here" otherwise.
func Check(s domain.Sink, value int) error {
	return s.WriteLine(CheckText(value))
}

// CheckText returns the line Check emits for value.
func CheckText(value int) string {
	if value > 0 {
		return "Error"
	}
	return "Secret Key Here"
}

// PrintAlot emits the greeting AlotCount times.
func PrintAlot(s domain.Sink) error {
	for i := 0; i < AlotCount; i++ {
		if err := s.WriteLine("Hello"); err != nil {
			return err
		}
	}
	return nil
}

// FindMe emits one word per line.
func FindMe(s domain.Sink) error {
	return writeLines(s, "You", "Wont", "Find", "TheWord", "The", "Word")
}

// ReplaceMe emits a single fixed sentence.
func ReplaceMe(s domain.Sink) error {
	return s.WriteLine("I love dogs")
}

// RemoveMe emits two fixed lines.
func RemoveMe(s domain.Sink) error {
	return writeLines(s, "The next sentence is a lie", "ion is best")
}

// Sequence returns the actions in program order.
func Sequence() []domain.Action {
	return []domain.Action{
		{Name: "Print", Kind: domain.KindSingle, Emit: Print},
		{Name: "Check", Kind: domain.KindConditional, Emit: func(s domain.Sink) error {
			return Check(s, CheckInput)
		}},
		{Name: "PrintAlot", Kind: domain.KindMulti, Emit: PrintAlot},
		{Name: "Foo.Bar.NestedPrint", Kind: domain.KindNested, Emit: NestedPrint},
		{Name: "I.Am.A.Burger.Eat", Kind: domain.KindNested, Emit: Eat},
		{Name: "FindMe", Kind: domain.KindMulti, Emit: FindMe},
		{Name: "ReplaceMe", Kind: domain.KindSingle, Emit: ReplaceMe},
		{Name: "RemoveMe", Kind: domain.KindMulti, Emit: RemoveMe},
	}
}

func writeLines(s domain.Sink, lines ...string) error {
	for _, line := range lines {
		if err := s.WriteLine(line); err != nil {
			return fmt.Errorf("write %q: %w", line, err)
		}
	}
	return nil
}
