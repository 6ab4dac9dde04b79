package main

import "checklist.com/daily-checklist/cmd"

func main() {
	cmd.Execute()
}
