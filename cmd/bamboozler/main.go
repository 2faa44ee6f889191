// cmd/bamboozler/main.go
package main

import (
	"github.com/ChromatinCloud/Bamboozler/internal/app"
	"github.com/ChromatinCloud/Bamboozler/internal/appshell"
)

func main() {
	appshell.Main(app.Run)
}
