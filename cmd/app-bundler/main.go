package main

import "github.com/oshokin/app-bundler/cmd/app-bundler/cmd"

func main() {
	cmd.Execute()
}
