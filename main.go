package main

import "github.com/youssefmaged/snxml/cmd"

func main() {
	cmd.Execute()
}
