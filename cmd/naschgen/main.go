// cmd/naschgen/main.go
package main

import (
	"naschgen/internal/app"
	"naschgen/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
