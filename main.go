package main

import "github.com/izapata/iconsmith/cmd"

func main() {
	cmd.Execute()
}
