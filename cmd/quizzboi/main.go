package main

import "github.com/aliskhannn/quizzboi/internal/cli"

func main() {
	cli.Execute()
}
