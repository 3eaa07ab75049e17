// A command line tool to match sets of strings from files
package main

import "os"

const version = "0.3.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
