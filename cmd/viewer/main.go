package main

import (
	"os"
)

// @title Regional Metrics Viewer API
// @version 1.0
// @description Event boundary and view read-out of the choropleth time-series viewer.
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
