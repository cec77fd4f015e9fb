package main

import (
	"flag"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

const (
	componentName = "charmgen"
)

var (
	rootCmd = &cobra.Command{
		Use:   componentName,
		Short: "Generate OpenStack charm class sources",
		Long:  "Renders the Python class stub of an OpenStack charm from a render context.",
	}
)

func init() {
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

func main() {
	defer glog.Flush()
	if err := rootCmd.Execute(); err != nil {
		glog.Exitf("Error executing %s: %v", componentName, err)
	}
}
