package main

import (
	"product.GO/cmd"
	"product.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
