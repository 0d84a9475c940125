package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/zeusync/nestcodec/internal/config"
	"github.com/zeusync/nestcodec/internal/injector"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("nestcodec", flag.ContinueOnError)
	flags.SortFlags = false
	configPath := flags.StringP("config", "c", "", "path to a YAML or JSON config file")
	output := flags.StringP("output", "o", "", "file to write the encoded value to")
	depth := flags.UintP("depth", "d", 0, "nesting depth of the rendered wrapper")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if flags.Changed("output") {
		cfg.OutputPath = *output
	}
	if flags.Changed("depth") {
		cfg.Depth = *depth
	}

	report, err := injector.InitializeRunner(cfg).Run()
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d bytes, digest %016x)\n", report.Path, len(report.Encoded), report.Digest)
	fmt.Println(report.Rendered)
	for _, line := range report.Chain {
		fmt.Println(line)
	}
	if report.ChainView != "" {
		fmt.Println(report.ChainView)
	}
	return nil
}
