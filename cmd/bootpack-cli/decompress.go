package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/bootpack/bootpack/internal/pkg/packfile"
)

// runDecompress decompresses the file and terminates the process on failure.
func runDecompress(file, dest string) {
	if err := packfile.Decompress(file, dest); err != nil {
		log.Fatal(err)
	}
}
