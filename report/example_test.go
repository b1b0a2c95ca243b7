// SPDX-License-Identifier: MIT
package report_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/numfield/poly"
	"github.com/katalvlaran/numfield/report"
)

func ExampleCompute() {
	rep, err := report.Compute(context.Background(), poly.FromInt64(5, 0, 1), []string{
		"discriminant", "signature", "integral_basis", "field_discriminant", "class_group",
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	out, _ := rep.YAML()
	fmt.Print(string(out))
	// Output:
	// discriminant: "-20"
	// signature: "(0, 1)"
	// integral_basis: "[1, x]"
	// field_discriminant: "-20"
	// class_group: "Z/2"
}
