package raise_test

import (
	"errors"
	"fmt"

	"github.com/ib-77/raise/pkg/raise"
)

func ExampleIf() {
	var config map[string]string

	err := raise.If[*raise.NullReference](config == nil, "config is required",
		raise.Pair("Filename", "settings.yaml")).Err()

	var nre *raise.NullReference
	if errors.As(err, &nre) {
		filename, _ := nre.Data().Get("Filename")
		fmt.Println(nre.Error(), filename, nre.Data().Contains(raise.DateKey))
	}
	// Output: config is required settings.yaml true
}

func ExampleOrAs() {
	size := -1

	r := raise.If[*raise.NullReference](false, "no file")
	err := raise.OrAs[*raise.Argument](r, size < 0, "size must not be negative").Err()

	fmt.Println(err)
	// Output: size must not be negative
}

func ExampleResult_ElseDo() {
	name := "gopher"

	raise.If[*raise.Argument](name == "", "name is required").
		Or(len(name) > 32, "name is too long").
		ElseDo(func() { fmt.Println("hello", name) })
	// Output: hello gopher
}
