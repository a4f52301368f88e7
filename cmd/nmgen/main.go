package main

import "github.com/9KGameStudio/go-sharpnav/cmd/nmgen/cmd"

func main() {
	cmd.Execute()
}
