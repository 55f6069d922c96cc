package main

import "github.com/goplus/buildprobe/cmd/buildprobe/internal"

func main() {
	internal.Execute()
}
