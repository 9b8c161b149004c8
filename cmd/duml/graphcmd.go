// Package main graph mirror commands.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/joss/duml/internal/audit"
	"github.com/joss/duml/internal/graph"
	"github.com/joss/duml/internal/render"
)

func graphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Graph database mirror commands",
		Long: `Mirror the active diagram into a Bolt-speaking graph database
(Memgraph or Neo4j, NEO4J_URI) so it can be explored with Cypher.`,
	}

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Rebuild the graph copy of the active diagram",
		Run: func(cmd *cobra.Command, args []string) {
			event := auditLogger.Start(audit.CategoryGraph, "sync")
			a := mustApp(true)
			defer a.Close()

			driver, err := graph.ConnectWithTimeout(5 * time.Second)
			if err != nil {
				exitOnError(a, event, err)
			}
			defer driver.Close()

			mirror := graph.NewMirror(driver, a.info.Name, a.ed.Snapshot)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := mirror.Sync(ctx); err != nil {
				driver.Close()
				exitOnError(a, event, err)
			}

			snap := a.ed.Snapshot()
			auditLogger.LogSuccess(event)
			fmt.Printf("synced %d classes and %d relationships\n", len(snap.Classes), len(snap.Relationships))
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show what the graph currently holds",
		Run: func(cmd *cobra.Command, args []string) {
			event := auditLogger.Start(audit.CategoryGraph, "status")
			a := mustApp(true)
			defer a.Close()

			driver, err := graph.ConnectWithTimeout(5 * time.Second)
			if err != nil {
				exitOnError(a, event, err)
			}
			defer driver.Close()

			mirror := graph.NewMirror(driver, a.info.Name, a.ed.Snapshot)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			st, err := mirror.Status(ctx)
			if err != nil {
				driver.Close()
				exitOnError(a, event, err)
			}

			snap := a.ed.Snapshot()
			auditLogger.LogSuccess(event)
			inSync := st.Classes == len(snap.Classes) && st.Relationships == len(snap.Relationships)
			w := render.Stdout()
			w.Item("graph: %d classes, %d relationships", st.Classes, st.Relationships)
			w.Item("local: %d classes, %d relationships", len(snap.Classes), len(snap.Relationships))
			w.Println("%s %s", render.BoolIcon(inSync), syncLabel(inSync))
		},
	}

	cmd.AddCommand(syncCmd, statusCmd)
	return cmd
}

func syncLabel(inSync bool) string {
	if inSync {
		return "in sync"
	}
	return "out of sync (run 'duml graph sync')"
}
