package main

import "github.com/jsphweid/pianolab/cmd"

func main() {
	cmd.Execute()
}
