package main

import "github.com/MichalGniadek/mdbook-rolltables/cmd"

func main() {
	cmd.Execute()
}
