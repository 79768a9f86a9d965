package main

import (
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"

	"github.com/sp-viktori/sp-variant/cmd"
)

func handlepanic() {
	if err := recover(); err != nil {
		buf := make([]byte, 1<<16)
		ss := runtime.Stack(buf, false)
		log.Debugf("backtrace: %s", buf[:ss])
		log.Fatalf("PANIC: %v\n", err)
	}
}

func main() {
	defer handlepanic()
	err := cmd.App.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
