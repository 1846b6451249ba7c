package main

import (
	"flag"
	"log"
	"os"

	cocoacanvas "github.com/Spinnernicholas/cocoa-canvas"
)

func main() {
	var (
		envPath     string
		delimiter   string
		compression string
		sampleSize  int
		recordNum   int
		reportPath  string

		countYes bool
		countNo  bool
	)

	flag.StringVar(&envPath, "env", ".env", "Path to an optional .env config file.")
	flag.StringVar(&delimiter, "delim", "", "Field delimiter. Defaults to tab.")
	flag.StringVar(&compression, "compression", "", "Compression used: gzip, bzip2, or snappy.")
	flag.IntVar(&sampleSize, "sample.size", 0, "Rows to sample for field statistics.")
	flag.IntVar(&recordNum, "record", 0, "1-based data record to dump.")
	flag.StringVar(&reportPath, "json", "", "Write the analysis as a JSON report to this path.")
	flag.BoolVar(&countYes, "count", false, "Count all rows without asking.")
	flag.BoolVar(&countNo, "nocount", false, "Skip the row count without asking.")

	flag.Parse()
	args := flag.Args()

	cfg, err := cocoacanvas.LoadConfig(envPath)
	if err != nil {
		log.Fatal(err)
	}

	path := cfg.Path
	if len(args) > 0 {
		path = args[0]
	}

	// A dash reads from stdin.
	if path == "-" {
		path = ""
	}

	if sampleSize <= 0 {
		sampleSize = cfg.SampleSize
	}

	if recordNum <= 0 {
		recordNum = cfg.RecordNum
	}

	var confirm cocoacanvas.Confirmer
	switch {
	case countYes:
		confirm = cocoacanvas.AutoConfirm(true)
	case countNo:
		confirm = cocoacanvas.AutoConfirm(false)
	default:
		confirm = cocoacanvas.TerminalConfirmer(os.Stdin, os.Stdout)
	}

	r := cocoacanvas.Request{
		Path:        path,
		Delimiter:   delimiter,
		Compression: compression,
		SampleSize:  sampleSize,
		RecordNum:   recordNum,
		ReportPath:  reportPath,
		Out:         os.Stdout,
		Confirm:     confirm,
	}

	if err := cocoacanvas.Analyze(&r); err != nil {
		log.Fatal(err)
	}
}
