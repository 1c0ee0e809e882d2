package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// config holds the validated command line.
type config struct {
	InputPath  string
	OutputPath string
	Threads    int
	Visualise  bool
}

func configFrom(v *viper.Viper) config {
	return config{
		InputPath:  v.GetString("input"),
		OutputPath: v.GetString("output"),
		Threads:    v.GetInt("processes"),
		Visualise:  v.GetBool("vis"),
	}
}

func (c config) validate() error {
	info, err := os.Stat(c.InputPath)
	if c.InputPath == "" || err != nil || !info.Mode().IsRegular() {
		return errors.New("a valid path to the input file must be specified using the -i option")
	}
	if c.OutputPath == "" {
		return errors.New("an output file must be specified using the -o option")
	}
	dir := filepath.Dir(c.OutputPath)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("output directory %q does not exist", dir)
	}
	if c.Threads <= 0 {
		return fmt.Errorf("the process count must be greater than zero, got %d", c.Threads)
	}
	return nil
}
