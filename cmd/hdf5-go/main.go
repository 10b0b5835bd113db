package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/h5works/hdf5-go/pkg/hdf5"
)

func main() {
	log.Printf("hdf5-go version: %s", hdf5.WrapperVersion())

	cfg := hdf5.Config{}
	lib, err := hdf5.Open(cfg)
	if err != nil {
		if errors.Is(err, hdf5.ErrCGONotEnabled) || errors.Is(err, hdf5.ErrNotBuilt) {
			fmt.Printf("native library unavailable: %v\n", err)
			return
		}
		log.Fatalf("unexpected failure opening library: %v", err)
	}
	defer func() {
		if cerr := lib.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	fmt.Printf("native library version: %s\n", hdf5.LibraryVersionString())
}
