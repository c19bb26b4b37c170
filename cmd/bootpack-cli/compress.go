package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	bootpackErrors "github.com/bootpack/bootpack/internal/pkg/error"
	"github.com/bootpack/bootpack/internal/pkg/packfile"
	"github.com/bootpack/bootpack/pkg/format"
)

// runCompress compresses the file with the chosen method and terminates the
// process on failure.
func runCompress(method, file, dest string) {
	err := packfile.Compress(method, file, dest)
	if err == nil {
		log.Info("successfully compressed file")
		return
	}
	if errors.Is(err, bootpackErrors.ErrUnknownMethod) {
		_, _ = fmt.Fprintf(os.Stderr, "Only support following methods: %s\n", strings.Join(format.Methods(), " "))
		os.Exit(1)
	}
	log.Fatal(err)
}
