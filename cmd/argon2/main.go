package main

import "github.com/jeremyhahn/go-argon2/pkg/cmd"

func main() {
	cmd.Main()
}
