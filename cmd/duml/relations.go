// Package main relationship commands.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joss/duml/internal/audit"
	"github.com/joss/duml/internal/domain"
	"github.com/joss/duml/internal/history"
)

func relTypeNames() string {
	types := domain.RelationshipTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func relCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rel",
		Short: "Relationship commands",
		Long: fmt.Sprintf(`Connect classes with typed, directed relationships.

At most one relationship exists per ordered (source, destination)
pair. Types: %s.`, relTypeNames()),
	}

	addCmd := &cobra.Command{
		Use:   "add [source] [destination] [type]",
		Short: "Add a relationship",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			event := auditLogger.Start(audit.CategoryRelation, "rel_add")
			a := mustApp(true)
			defer a.Close()

			ok := a.hist.Do(&history.AddRelationshipCommand{Ed: a.ed, Source: args[0], Dest: args[1], Typ: args[2]})
			a.finish(ok, event)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [source] [destination]",
		Short: "Delete a relationship",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			event := auditLogger.Start(audit.CategoryRelation, "rel_delete")
			a := mustApp(true)
			defer a.Close()

			ok := a.hist.Do(&history.DeleteRelationshipCommand{Ed: a.ed, Source: args[0], Dest: args[1]})
			a.finish(ok, event)
		},
	}

	retypeCmd := &cobra.Command{
		Use:   "retype [source] [destination] [type]",
		Short: "Change a relationship's type",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			event := auditLogger.Start(audit.CategoryRelation, "rel_retype")
			a := mustApp(true)
			defer a.Close()

			ok := a.hist.Do(&history.RetypeRelationshipCommand{Ed: a.ed, Source: args[0], Dest: args[1], NewType: args[2]})
			a.finish(ok, event)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all relationships",
		Run: func(cmd *cobra.Command, args []string) {
			a := mustApp(true)
			defer a.Close()

			fmt.Print(a.rend.Relationships(a.ed.Snapshot().Relationships))
		},
	}

	cmd.AddCommand(addCmd, deleteCmd, retypeCmd, listCmd)
	return cmd
}
