// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/hanzisquare/builder"
)

func ExamplePlantedSquare() {
	tab, err := builder.BuildTable(nil, builder.PlantedSquare(2))
	if err != nil {
		panic(err)
	}
	for _, e := range tab {
		fmt.Println(e.Char, e.Pair[0], e.Pair[1])
	}
	// Output:
	// 字(R0+C0) R0 C0
	// 字(R0+C1) R0 C1
	// 字(R1+C0) R1 C0
	// 字(R1+C1) R1 C1
}
