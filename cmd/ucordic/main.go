// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/ezrec/ucordic/console"
	"github.com/ezrec/ucordic/cordic"
	"github.com/ezrec/ucordic/serialio"
)

func main() {
	var config string
	var port string
	var baud int
	var verbose bool

	flag.StringVar(&config, "c", "", "serial configuration .yml file")
	flag.StringVar(&port, "p", "", "serial port to serve the console on")
	flag.IntVar(&baud, "b", serialio.DEFAULT_BAUD, "serial baud rate")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg := &serialio.Config{Port: port, Baud: baud}
	if len(config) != 0 {
		var err error
		cfg, err = serialio.LoadConfig(config)
		if err != nil {
			log.Fatalf("%v: %v", config, err)
		}
		if len(port) != 0 {
			cfg.Port = port
		}
	}

	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout

	if len(cfg.Port) != 0 {
		stream, err := serialio.Open(cfg)
		if err != nil {
			log.Fatalf("%v: %v", cfg.Port, err)
		}
		defer stream.Close()

		in = stream
		out = stream
	}

	// Power up the rotation engine before serving the menu.
	unit := cordic.NewUnit()
	unit.Verbose = verbose
	unit.Enable()

	con := console.New(in, out, unit)
	con.Verbose = verbose

	err := con.Run()
	if err != nil {
		log.Fatal(err)
	}
}
