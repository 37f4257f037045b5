package main

import "github.com/Mushinako/absqrtc/internal/cli"

func main() {
	cli.Execute()
}
