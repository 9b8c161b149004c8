// Package main provides the duml CLI entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/joss/duml/internal/audit"
	"github.com/joss/duml/internal/config"
	"github.com/joss/duml/internal/tui"
)

var (
	version     = "0.1.0"
	pretty      = true
	auditLogger *audit.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "duml",
		Short: "duml - UML class diagram editor for the terminal",
		Long: `duml: edit UML class diagrams from the command line or an
interactive canvas.

Usage modes:
  duml             Open the active diagram on the interactive canvas
  duml shell       Start the line-oriented editing shell
  duml <command>   Run a single editing command (see below)

Use 'duml files' to list known diagrams and 'duml open <name>' to
switch the active one.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if config.Env().NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
				pretty = false
			}
			auditLogger = audit.Global()
		},
		Run: func(cmd *cobra.Command, args []string) {
			a := mustApp(true)
			defer a.Close()

			sh := a.newShell()
			if err := tui.Run(sh, a.ed, a.info.Name); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", true, "Pretty print output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "diagram", Title: "Diagram:"},
		&cobra.Group{ID: "members", Title: "Members:"},
		&cobra.Group{ID: "relations", Title: "Relationships:"},
		&cobra.Group{ID: "session", Title: "Session:"},
	)

	class := classCmd()
	class.GroupID = "diagram"
	rootCmd.AddCommand(class)

	field := fieldCmd()
	field.GroupID = "members"
	rootCmd.AddCommand(field)

	method := methodCmd()
	method.GroupID = "members"
	rootCmd.AddCommand(method)

	param := paramCmd()
	param.GroupID = "members"
	rootCmd.AddCommand(param)

	rel := relCmd()
	rel.GroupID = "relations"
	rootCmd.AddCommand(rel)

	for _, c := range []*cobra.Command{
		newCmd(), openCmd(), filesCmd(), saveasCmd(), statusCmd(), shellCmd(), versionCmd(),
	} {
		c.GroupID = "session"
		rootCmd.AddCommand(c)
	}

	graphC := graphCmd()
	graphC.GroupID = "session"
	rootCmd.AddCommand(graphC)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the duml version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("duml %s\n", version)
		},
	}
}
