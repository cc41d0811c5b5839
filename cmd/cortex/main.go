// Package main provides the Cortex tensor runtime CLI.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/cortex-lang/cortex/tensor"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("cortex: ")

	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "version":
		fmt.Printf("Cortex %s\n", version)
	case "eye":
		err = runEye(args)
	case "arange":
		err = runArange(args)
	case "demo":
		err = runDemo()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Println("Cortex - numeric tensor runtime")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                   Show version")
	fmt.Println("  eye N                     Print an N×N identity matrix")
	fmt.Println("  arange START STOP STEP    Print a 1D range")
	fmt.Println("  demo                      Run a short tour of the engine")
}

func runEye(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("eye: expected 1 argument, got %d", len(args))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("eye: %w", err)
	}

	t, err := tensor.Eye(n)
	if err != nil {
		return err
	}
	return t.Dump(os.Stdout)
}

func runArange(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("arange: expected 3 arguments, got %d", len(args))
	}
	var bounds [3]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("arange: %w", err)
		}
		bounds[i] = v
	}

	t, err := tensor.Arange(bounds[0], bounds[1], bounds[2])
	if err != nil {
		return err
	}
	return t.Dump(os.Stdout)
}

// runDemo walks through the engine, reporting failures the way a host
// interpreter would: through its own ErrorChannel.
func runDemo() error {
	var ch tensor.ErrorChannel

	a, err := tensor.FromSlice([]float64{4, 7, 2, 6}, tensor.Shape{2, 2})
	if err != nil {
		return err
	}
	fmt.Println("a =")
	fmt.Print(a)

	at, err := tensor.Transpose(a)
	if err != nil {
		return err
	}
	prod, err := tensor.MatMul(a, at)
	if err != nil {
		return err
	}
	fmt.Println("a @ aᵀ =")
	fmt.Print(prod)

	det, err := tensor.Det(a)
	if err != nil {
		return err
	}
	trace, err := tensor.Trace(a)
	if err != nil {
		return err
	}
	fmt.Printf("det(a) = %f, trace(a) = %f\n", det, trace)

	mean, err := tensor.Mean(a)
	if err != nil {
		return err
	}
	std, err := tensor.Std(a)
	if err != nil {
		return err
	}
	fmt.Printf("mean(a) = %f, std(a) = %f\n", mean, std)

	sm, err := tensor.Softmax(a)
	if err != nil {
		return err
	}
	fmt.Println("softmax(a) =")
	fmt.Print(sm)

	zeros, err := tensor.Zeros(tensor.Shape{2, 2})
	if err != nil {
		return err
	}
	if _, err := tensor.Div(a, zeros); ch.Record(err) != nil {
		msg, _ := ch.LastError()
		fmt.Printf("a / 0 failed: %s\n", msg)
		ch.Clear()
	}
	return nil
}
