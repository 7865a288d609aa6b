package main

import (
	"github.com/tagpoint/rfid-admin/cmd/cli"
)

func main() {
	cli.Execute()
}
