// apsuite runs approximation heuristics for bin packing and makespan
// scheduling on problem files and reports them against lower bounds.
//
// Build:
//   go build -o apsuite ./cmd/apsuite
package main

import "github.com/piwi3910/apsuite/cmd/apsuite/commands"

func main() {
	commands.Execute()
}
