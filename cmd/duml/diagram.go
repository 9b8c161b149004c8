// Package main class-level commands.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joss/duml/internal/audit"
	"github.com/joss/duml/internal/history"
)

func classCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "class",
		Short: "Class commands",
		Long:  "Create, rename, delete, move and inspect classes",
	}

	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a class",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			event := auditLogger.Start(audit.CategoryDiagram, "class_add")
			a := mustApp(true)
			defer a.Close()

			ok := a.hist.Do(&history.AddClassCommand{Ed: a.ed, Name: args[0]})
			a.finish(ok, event)
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename [old] [new]",
		Short: "Rename a class",
		Long:  "Rename a class; relationships referencing it follow the new name",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			event := auditLogger.Start(audit.CategoryDiagram, "class_rename")
			a := mustApp(true)
			defer a.Close()

			ok := a.hist.Do(&history.RenameClassCommand{Ed: a.ed, Old: args[0], New: args[1]})
			a.finish(ok, event)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a class and its relationships",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			event := auditLogger.Start(audit.CategoryDiagram, "class_delete")
			a := mustApp(true)
			defer a.Close()

			ok := a.hist.Do(&history.DeleteClassCommand{Ed: a.ed, Name: args[0]})
			a.finish(ok, event)
		},
	}

	moveCmd := &cobra.Command{
		Use:   "move [name] [x] [y]",
		Short: "Move a class on the canvas",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			event := auditLogger.Start(audit.CategoryDiagram, "class_move")
			a := mustApp(true)
			defer a.Close()

			x, errX := strconv.Atoi(args[1])
			y, errY := strconv.Atoi(args[2])
			if errX != nil || errY != nil {
				exitOnError(a, event, fmt.Errorf("coordinates must be integers"))
			}

			ok := a.hist.Do(&history.MoveClassCommand{Ed: a.ed, Name: args[0], X: x, Y: y})
			a.finish(ok, event)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all classes",
		Run: func(cmd *cobra.Command, args []string) {
			a := mustApp(true)
			defer a.Close()

			fmt.Print(a.rend.Classes(a.ed.Snapshot()))
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show one class in detail",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a := mustApp(true)
			defer a.Close()

			cv, ok := a.ed.ClassDetail(args[0])
			if !ok {
				fmt.Fprintf(os.Stderr, "Error: no class named %q\n", args[0])
				a.Close()
				os.Exit(1)
			}
			fmt.Print(a.rend.ClassDetail(cv, a.ed.RelationshipsOf(args[0])))
		},
	}

	cmd.AddCommand(addCmd, renameCmd, deleteCmd, moveCmd, listCmd, showCmd)
	return cmd
}
