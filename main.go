package main

import "github.com/ulrikandersen/slack-status-updater/cmd"

func main() {
	cmd.Execute()
}
