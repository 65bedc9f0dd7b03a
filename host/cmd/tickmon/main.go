package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/shlex"

	"github.com/sudhamtd/nRF52810-example/host/monitor"
	"github.com/sudhamtd/nRF52810-example/host/serial"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate")
	verbose = flag.Bool("verbose", false, "Print inter-arrival times while watching")
)

func main() {
	flag.Parse()

	fmt.Println("tickmon - periodic timer tick monitor")

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	fmt.Printf("Opening %s...\n", cfg.Device)
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { port.Close() }()

	mon := monitor.New(port)

	// Interactive command loop
	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		// shlex keeps quoted device paths in one piece.
		args, err := shlex.Split(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return

		case "help", "?":
			printHelp()

		case "watch":
			n := 10
			if len(args) > 1 {
				n, err = strconv.Atoi(args[1])
				if err != nil || n < 1 {
					fmt.Fprintf(os.Stderr, "Error: watch wants a positive count\n")
					continue
				}
			}
			watchReports(mon, n)

		case "stats":
			fmt.Println(mon.Stats())

		case "reset":
			mon.Reset()
			fmt.Println("Statistics reset")

		case "open":
			if len(args) < 2 {
				fmt.Fprintf(os.Stderr, "Error: open wants a device path\n")
				continue
			}
			cfg := serial.DefaultConfig(args[1])
			if len(args) > 2 {
				cfg.Baud, err = strconv.Atoi(args[2])
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: bad baud rate %q\n", args[2])
					continue
				}
			}
			newPort, err := serial.Open(cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			port.Close()
			port = newPort
			mon = monitor.New(port)
			fmt.Printf("Opened %s\n", cfg.Device)

		default:
			fmt.Printf("Unknown command: %s (type 'help' for available commands)\n", args[0])
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

// watchReports prints the next n tick reports as they arrive.
func watchReports(mon *monitor.Monitor, n int) {
	var last time.Time
	for i := 0; i < n; i++ {
		rep, err := mon.Next()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if *verbose && !last.IsZero() {
			fmt.Printf("tick %d (+%v)\n", rep.Seq, rep.At.Sub(last).Round(time.Microsecond))
		} else {
			fmt.Printf("tick %d\n", rep.Seq)
		}
		last = rep.At
	}
}

func printHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  help               - Show this help message")
	fmt.Println("  watch [n]          - Print the next n tick reports (default 10)")
	fmt.Println("  stats              - Print session statistics")
	fmt.Println("  reset              - Zero session statistics")
	fmt.Println("  open <dev> [baud]  - Switch to another serial device")
	fmt.Println("  quit/exit/q        - Exit the program")
	fmt.Println()
}
