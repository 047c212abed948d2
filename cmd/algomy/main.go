// Command algomy is the REPL/script front-end for the expression-algebra
// kernel: it reads one line of input at a time, binds and simplifies it
// through internal/app.Session, and prints the result. Flag wiring and
// manual adapter construction follow latex2go's cmd/latex2go.go; there is
// no DI container, just a hand-assembled Session per run.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ZanzyTHEbar/algomy/internal/adapters/cli"
	"github.com/ZanzyTHEbar/algomy/internal/adapters/output"
	"github.com/ZanzyTHEbar/algomy/internal/app"
	"github.com/ZanzyTHEbar/algomy/internal/app/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "algomy",
	Short: "algomy simplifies algebraic expressions",
	Long: `algomy is an interactive REPL (or script runner) for a small
computer-algebra kernel: it parses infix expressions, substitutes bound
variables, and reduces the result to canonical simplified form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		outputPath, _ := cmd.Flags().GetString("output")
		configPath, _ := cmd.Flags().GetString("config")
		sessionPath, _ := cmd.Flags().GetString("session")

		startup, err := config.Load(configPath)
		if err != nil {
			return err
		}

		var source app.LineSource
		if inputPath == "" {
			source = cli.NewStdinAdapter()
		} else {
			source, err = cli.NewFileAdapter(inputPath)
			if err != nil {
				return err
			}
		}

		sink, err := output.NewWriterAdapter(outputPath)
		if err != nil {
			return err
		}
		if closer, ok := sink.(interface{ Close() error }); ok {
			defer closer.Close()
		}

		session, err := app.NewSession(source, sink, startup)
		if err != nil {
			return err
		}
		if sessionPath != "" {
			if err := session.LoadSession(sessionPath); err != nil {
				return err
			}
		}

		return session.Run()
	},
}

func init() {
	rootCmd.Flags().StringP("input", "i", "", "script file to run (default: interactive stdin)")
	rootCmd.Flags().StringP("output", "o", "", "output file for results (default: stdout)")
	rootCmd.Flags().String("config", "", "startup config file of variable bindings")
	rootCmd.Flags().String("session", "", "session file of bindings to preload")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.SetFlags(0)
		os.Exit(1)
	}
}
