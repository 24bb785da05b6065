// Command ccpmcli converts an Activity-on-Node project network into its
// minimal Activity-on-Arc equivalent.
package main

import (
	"github.com/katalvlaran/ccpm/cmd/ccpmcli/cmd"
)

func main() {
	cmd.Execute()
}
