package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joss/duml/internal/audit"
	"github.com/joss/duml/internal/config"
	"github.com/joss/duml/internal/editor"
	"github.com/joss/duml/internal/history"
	"github.com/joss/duml/internal/render"
	"github.com/joss/duml/internal/shell"
	"github.com/joss/duml/internal/storage"
)

// app bundles one editing session: the live model, its history, the
// registry row of the active diagram, and the renderer for output.
type app struct {
	ed   *editor.Editor
	hist *history.History
	msg  *render.CaptureMessenger
	rend *render.Renderer
	reg  *storage.Registry

	info       storage.DiagramInfo
	hasDiagram bool
}

// mustApp opens the registry and loads the active diagram. With
// requireDiagram set, exits when no diagram is active.
func mustApp(requireDiagram bool) *app {
	paths := config.GetPaths()
	for _, dir := range []string{paths.Data, paths.Diagrams} {
		if err := config.EnsureDir(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	reg, err := storage.NewRegistry(paths.Registry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	msg := &render.CaptureMessenger{}
	a := &app{
		ed:   editor.New(editor.WithMessenger(msg)),
		msg:  msg,
		rend: render.New(pretty),
		reg:  reg,
	}
	a.hist = history.New(a.ed)

	info, err := reg.Active(context.Background())
	if err != nil {
		if !storage.IsNotFound(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if requireDiagram {
			fmt.Fprintln(os.Stderr, "Error: no active diagram (run 'duml new <name>' or 'duml open <name>')")
			os.Exit(1)
		}
		return a
	}

	a.info = info
	a.hasDiagram = true

	if err := storage.Load(info.Path, a.ed); err != nil {
		// A registered diagram with no file yet starts empty.
		if !storage.IsNotFound(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	a.hist.Clear()
	return a
}

// Close releases the registry.
func (a *app) Close() {
	a.reg.Close()
}

// save persists the diagram and bumps its registry row.
func (a *app) save() error {
	if !a.hasDiagram {
		return fmt.Errorf("no active diagram")
	}
	if err := storage.Save(a.info.Path, a.ed); err != nil {
		return err
	}
	return a.reg.Touch(context.Background(), a.info.Name)
}

// newShell wires a shell over this session. Autosave follows the
// DUML_AUTOSAVE setting.
func (a *app) newShell() *shell.Shell {
	var opts []shell.Option
	if a.hasDiagram && config.Env().AutoSave {
		opts = append(opts, shell.WithSaver(a.save))
	}
	return shell.New(a.ed, a.hist, a.msg, a.rend, opts...)
}

// finish reports a mutation outcome and exits non-zero on rejection.
func (a *app) finish(ok bool, event *audit.AuditEvent) {
	if !ok {
		auditLogger.LogError(event, fmt.Errorf("%s", a.msg.Last))
		fmt.Fprintf(os.Stderr, "Error: %s\n", a.msg.Last)
		a.Close()
		os.Exit(1)
	}

	if config.Env().AutoSave {
		if err := a.save(); err != nil {
			auditLogger.LogError(event, err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			a.Close()
			os.Exit(1)
		}
	}

	auditLogger.LogSuccess(event)
	fmt.Println(a.msg.Last)
}
