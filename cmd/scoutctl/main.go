package main

import "woodo-statistic/internal/cli"

func main() {
	cli.Execute()
}
