package fpe_test

import (
	"fmt"
	"strings"

	"github.com/KasperOmsK/fpe"
)

type Order struct {
	ID    string
	Total float64
}

// Example builds a small order processing pipeline out of curried and
// composed functions.
func Example() {
	// Declare functions with typed Go code; Lift adapts them to the dynamic
	// calling convention shared by the whole package.
	applyDiscount := fpe.Must(fpe.Curry(fpe.Declare("discount",
		[]fpe.Param{fpe.Required("rate"), fpe.Required("order"), fpe.Optional("floor", 0.0)},
		func(args []any) (any, error) {
			rate, o, floor := args[0].(float64), args[1].(Order), args[2].(float64)
			o.Total = max(o.Total*(1-rate), floor)
			return o, nil
		},
	)))

	// A partial application is a function in its own right, and can be
	// reused any number of times.
	tenOff, _ := applyDiscount.Call(0.1)
	fmt.Println(tenOff)

	// Functions compose into flat chains that run left to right.
	normalize := fpe.Unary("normalize", func(o Order) Order {
		o.ID = strings.ToUpper(strings.TrimSpace(o.ID))
		return o
	})
	label := fpe.Unary("label", func(o Order) string {
		return fmt.Sprintf("%s: %.2f", o.ID, o.Total)
	})

	process := fpe.Must(fpe.PipeAll(normalize, tenOff, label))
	fmt.Println(process.Name())

	for _, o := range []Order{{" a-1 ", 100}, {"b-2", 20}} {
		out, err := process.Call(o)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(out)
	}

	// Named arguments fill defaulted parameters.
	floored, _ := applyDiscount.CallKw(fpe.NewKeywords("floor", 50.0), 0.9, Order{"c-3", 100})
	fmt.Println(floored.(Order).Total)

	// Errors raised by a step are returned unchanged.
	_, err := process.Call("not an order")
	fmt.Println(err)

	// Output:
	// <curried discount 2/3 args>
	// normalize | discount | label
	// A-1: 90.00
	// B-2: 18.00
	// 50
	// normalize: argument 0 is string, want fpe_test.Order
}
