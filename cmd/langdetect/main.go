package main

import "github.com/Automattic/elasticsearch-langdetect/cmd"

func main() {
	cmd.Execute()
}
