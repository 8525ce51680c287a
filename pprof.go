package main

import (
	"net/http"
	_ "net/http/pprof"
)

const PprofAddr = "localhost:6060"

func StartPprofServer() {
	DebugPutsPersist("pprof", PprofAddr)
	go func() {
		InfoLogger.Print("initializing pprof")
		InfoLogger.Print(http.ListenAndServe(PprofAddr, nil))
	}()
}
