// Package main session and registry commands.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joss/duml/internal/audit"
	"github.com/joss/duml/internal/config"
	"github.com/joss/duml/internal/render"
	"github.com/joss/duml/internal/shell"
	"github.com/joss/duml/internal/storage"
)

func newCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new [name]",
		Short: "Create a diagram and make it active",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			event := auditLogger.Start(audit.CategorySession, "new")
			name := args[0]

			a := mustApp(false)
			defer a.Close()

			ctx := context.Background()
			if _, err := a.reg.Get(ctx, name); err == nil {
				exitOnError(a, event, fmt.Errorf("diagram %q already exists (use 'duml open %s')", name, name))
			}

			path := config.DiagramPath(name)
			if _, err := a.reg.Register(ctx, name, path); err != nil {
				exitOnError(a, event, err)
			}
			if err := a.reg.SetActive(ctx, name); err != nil {
				exitOnError(a, event, err)
			}

			// Write the empty document so the file exists immediately.
			a.info = storage.DiagramInfo{Name: name, Path: path}
			a.hasDiagram = true
			a.ed.Reset()
			if err := a.save(); err != nil {
				exitOnError(a, event, err)
			}

			auditLogger.LogSuccess(event)
			fmt.Printf("created diagram %q\n", name)
		},
	}
}

func openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open [name]",
		Short: "Make a diagram the active one",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			event := auditLogger.Start(audit.CategorySession, "open")
			name := args[0]

			a := mustApp(false)
			defer a.Close()

			ctx := context.Background()
			info, err := a.reg.Get(ctx, name)
			if storage.IsNotFound(err) {
				// Pick up files dropped into the diagrams directory.
				if _, scanErr := a.reg.Scan(ctx, config.GetPaths().Diagrams); scanErr == nil {
					info, err = a.reg.Get(ctx, name)
				}
			}
			if err != nil {
				exitOnError(a, event, fmt.Errorf("no diagram named %q (see 'duml files')", name))
			}

			// Validate the file before switching.
			if loadErr := storage.Load(info.Path, a.ed); loadErr != nil && !storage.IsNotFound(loadErr) {
				exitOnError(a, event, loadErr)
			}

			if err := a.reg.SetActive(ctx, name); err != nil {
				exitOnError(a, event, err)
			}

			auditLogger.LogSuccess(event)
			fmt.Printf("opened diagram %q (%d classes)\n", name, len(a.ed.ClassNames()))
		},
	}
}

func filesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List known diagrams",
		Run: func(cmd *cobra.Command, args []string) {
			a := mustApp(false)
			defer a.Close()

			ctx := context.Background()
			_, _ = a.reg.Scan(ctx, config.GetPaths().Diagrams)

			list, err := a.reg.List(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				a.Close()
				os.Exit(1)
			}
			w := render.Stdout()
			if len(list) == 0 {
				w.Println("No diagrams yet (run 'duml new <name>')")
				return
			}

			for _, info := range list {
				marker := " "
				if info.Active {
					marker = "*"
					if pretty {
						marker = color.GreenString("*")
					}
				}
				w.Println("%s %-20s %s", marker, render.Truncate(info.Name, 20),
					info.UpdatedAt.Format("2006-01-02 15:04"))
			}
		},
	}
}

func saveasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "saveas [name]",
		Short: "Save the active diagram under a new name",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			event := auditLogger.Start(audit.CategoryStorage, "saveas")
			name := args[0]

			a := mustApp(true)
			defer a.Close()

			ctx := context.Background()
			if _, err := a.reg.Get(ctx, name); err == nil {
				exitOnError(a, event, fmt.Errorf("diagram %q already exists", name))
			}

			path := config.DiagramPath(name)
			if _, err := a.reg.Register(ctx, name, path); err != nil {
				exitOnError(a, event, err)
			}
			a.info = storage.DiagramInfo{Name: name, Path: path}
			if err := a.save(); err != nil {
				exitOnError(a, event, err)
			}
			if err := a.reg.SetActive(ctx, name); err != nil {
				exitOnError(a, event, err)
			}

			auditLogger.LogSuccess(event)
			fmt.Printf("saved as %q\n", name)
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active diagram and its size",
		Run: func(cmd *cobra.Command, args []string) {
			a := mustApp(false)
			defer a.Close()

			snap := a.ed.Snapshot()
			fmt.Print(a.rend.Status(a.info.Name, len(snap.Classes), len(snap.Relationships), false))
		},
	}
}

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive editing shell",
		Long: `Start a read-eval-print loop over the active diagram. The shell
accepts line commands (type 'help' inside) and supports undo/redo
within the session.`,
		Run: func(cmd *cobra.Command, args []string) {
			event := auditLogger.Start(audit.CategorySession, "shell")
			a := mustApp(true)
			defer a.Close()

			sh := a.newShell()
			if err := shell.Repl(sh, os.Stdin, os.Stdout); err != nil {
				exitOnError(a, event, err)
			}
			auditLogger.LogSuccess(event)
		},
	}
}
