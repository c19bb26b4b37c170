package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/bootpack/bootpack/common"
	"github.com/bootpack/bootpack/configs"
	"github.com/bootpack/bootpack/internal/pkg/utils/logutils"
	"github.com/bootpack/bootpack/pkg/format"
)

func main() {
	var (
		app = kingpin.New("bootpack-cli", "A command-line tool to compress and decompress boot image payloads")

		// commands
		compress       = app.Command("compress", "Compress a file")
		fileCompress   = compress.Arg("file", "path to the file to compress").Required().ExistingFile()
		destCompress   = compress.Arg("dest", "destination path, defaults to the source path plus the method suffix").String()
		methodCompress = compress.Flag("method", "Compression method, must be one of ["+strings.Join(format.Methods(), ", ")+"]").Envar("BOOTPACK_METHOD").String()

		decompress     = app.Command("decompress", "Decompress a file")
		fileDecompress = decompress.Arg("file", "path to the file to decompress").Required().ExistingFile()
		destDecompress = decompress.Arg("dest", "destination path, defaults to the source path with its suffix stripped").String()

		// Config and logging
		configPath = app.Flag("config", "Path to an optional YAML file with defaults").Default(".bootpack.yaml").Envar("BOOTPACK_CONFIG").String()
		logLevel   = app.Flag("log-level", "Log-Level, must be one of [DEBUG, INFO, WARN, ERROR]").Envar("LOG_LEVEL").String()
		logFormat  = app.Flag("log-format", "Log-Format, must be one of [TEXT, JSON]").Envar("LOG_FORMAT").String()
	)
	app.Version(common.Version())
	app.HelpFlag.Short('h')

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := configs.LoadCliConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config file %q: %s", *configPath, err)
	}

	// Flags take precedence over the config file.
	logutils.SetLogLevel(lo.CoalesceOrEmpty(*logLevel, cfg.Logging.Level, "INFO"))
	logutils.SetLogFormat(lo.CoalesceOrEmpty(*logFormat, cfg.Logging.Format, "TEXT"))

	switch cmd {
	case compress.FullCommand():
		method := lo.CoalesceOrEmpty(*methodCompress, cfg.Compression.Method, "gzip")
		runCompress(method, *fileCompress, *destCompress)
	case decompress.FullCommand():
		runDecompress(*fileDecompress, *destDecompress)
	}
}
