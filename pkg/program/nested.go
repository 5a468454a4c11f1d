package program

import "github.com/aretw0/recital/pkg/domain"

// The bodies of Foo.Bar.NestedPrint and I.Am.A.Burger.Eat are not part of the
// program source, so each emits a marker line naming the method it stands in for.
const (
	NestedPrintLine = "Foo.Bar.NestedPrint"
	EatLine         = "I.Am.A.Burger.Eat"
)

// NestedPrint stands in for Foo.Bar.NestedPrint.
func NestedPrint(s domain.Sink) error {
	return s.WriteLine(NestedPrintLine)
}

// Eat stands in for I.Am.A.Burger.Eat.
func Eat(s domain.Sink) error {
	return s.WriteLine(EatLine)
}
