package main

import "github.com/Nakamura9310/snapmark/cmd"

func main() {
	cmd.Execute()
}
