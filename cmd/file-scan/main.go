package main

import (
	"fmt"
	"os"

	"github.com/haohui/orc/orc"
	"github.com/haohui/orc/orc/config"
	orcio "github.com/haohui/orc/orc/io"
)

const batchCapacity = 1024

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <filename>\n", os.Args[0])
		os.Exit(1)
	}

	f, err := orcio.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	reader, err := orc.Open(f, config.NewReaderOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	batch, err := reader.CreateRowBatch(batchCapacity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var rows, batches uint64
	for {
		more, err := reader.Next(batch)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		if !more {
			break
		}
		rows += uint64(batch.Base().NumElements)
		batches++
	}
	fmt.Printf("Rows: %d\n", rows)
	fmt.Printf("Batches: %d\n", batches)
}
