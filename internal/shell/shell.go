// Package shell translates text command lines into diagram operations.
// The interactive REPL and the canvas command bar both feed lines
// through the same grammar, so behavior never diverges between them.
package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joss/duml/internal/domain"
	"github.com/joss/duml/internal/editor"
	"github.com/joss/duml/internal/history"
	"github.com/joss/duml/internal/render"
)

// Result is the outcome of one executed line.
type Result struct {
	Output  string
	IsError bool
	Quit    bool
}

// Shell executes command lines against an editing session. Mutations go
// through the history so they are undoable; queries read the snapshot.
type Shell struct {
	ed   *editor.Editor
	hist *history.History
	msg  *render.CaptureMessenger
	rend *render.Renderer

	// saver persists the diagram after successful mutations when set.
	saver func() error
}

// Option configures a Shell.
type Option func(*Shell)

// WithSaver enables autosave after each successful mutation.
func WithSaver(fn func() error) Option {
	return func(s *Shell) {
		s.saver = fn
	}
}

// New creates a shell. The messenger must be the same one the editor
// writes feedback to.
func New(ed *editor.Editor, hist *history.History, msg *render.CaptureMessenger, rend *render.Renderer, opts ...Option) *Shell {
	s := &Shell{ed: ed, hist: hist, msg: msg, rend: rend}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func errResult(format string, args ...any) Result {
	return Result{Output: fmt.Sprintf(format, args...), IsError: true}
}

// Exec parses and runs one line. Blank lines are no-ops.
func (s *Shell) Exec(line string) Result {
	args := strings.Fields(line)
	if len(args) == 0 {
		return Result{}
	}

	switch args[0] {
	case "class":
		return s.execClass(args[1:])
	case "field":
		return s.execField(args[1:])
	case "method":
		return s.execMethod(args[1:])
	case "param":
		return s.execParam(args[1:])
	case "rel", "relationship":
		return s.execRel(args[1:])
	case "undo":
		if !s.hist.CanUndo() {
			return errResult("nothing to undo")
		}
		label := s.hist.Entries()[s.hist.Cursor()].Label
		if !s.hist.Undo() {
			return errResult("undo failed")
		}
		s.autosave()
		return Result{Output: "undid: " + label}
	case "redo":
		if !s.hist.CanRedo() {
			return errResult("nothing to redo")
		}
		label := s.hist.Entries()[s.hist.Cursor()+1].Label
		if !s.hist.Redo() {
			return errResult("redo failed")
		}
		s.autosave()
		return Result{Output: "redid: " + label}
	case "history":
		return Result{Output: s.rend.History(s.hist.Entries(), s.hist.Cursor())}
	case "list", "classes":
		return Result{Output: s.rend.Classes(s.ed.Snapshot())}
	case "rels", "relationships":
		return Result{Output: s.rend.Relationships(s.ed.Snapshot().Relationships)}
	case "show":
		if len(args) != 2 {
			return errResult("usage: show <class>")
		}
		cv, ok := s.ed.ClassDetail(args[1])
		if !ok {
			return errResult("no class named %q", args[1])
		}
		return Result{Output: s.rend.ClassDetail(cv, s.ed.RelationshipsOf(args[1]))}
	case "save":
		if s.saver == nil {
			return errResult("no diagram open")
		}
		if err := s.saver(); err != nil {
			return errResult("save failed: %v", err)
		}
		return Result{Output: "saved"}
	case "help":
		return Result{Output: helpText}
	case "exit", "quit":
		return Result{Quit: true}
	}
	return errResult("unknown command %q (try help)", args[0])
}

// do runs a mutation through the history and reports the editor's
// feedback text.
func (s *Shell) do(cmd history.Command) Result {
	ok := s.hist.Do(cmd)
	if ok {
		s.autosave()
	}
	return Result{Output: s.msg.Last, IsError: !ok}
}

func (s *Shell) autosave() {
	if s.saver != nil {
		_ = s.saver()
	}
}

func (s *Shell) execClass(args []string) Result {
	if len(args) == 0 {
		return errResult("usage: class add|rename|delete|move ...")
	}
	switch args[0] {
	case "add":
		if len(args) != 2 {
			return errResult("usage: class add <name>")
		}
		return s.do(&history.AddClassCommand{Ed: s.ed, Name: args[1]})
	case "rename":
		if len(args) != 3 {
			return errResult("usage: class rename <old> <new>")
		}
		return s.do(&history.RenameClassCommand{Ed: s.ed, Old: args[1], New: args[2]})
	case "delete":
		if len(args) != 2 {
			return errResult("usage: class delete <name>")
		}
		return s.do(&history.DeleteClassCommand{Ed: s.ed, Name: args[1]})
	case "move":
		if len(args) != 4 {
			return errResult("usage: class move <name> <x> <y>")
		}
		x, errX := strconv.Atoi(args[2])
		y, errY := strconv.Atoi(args[3])
		if errX != nil || errY != nil {
			return errResult("coordinates must be integers")
		}
		return s.do(&history.MoveClassCommand{Ed: s.ed, Name: args[1], X: x, Y: y})
	}
	return errResult("unknown class action %q", args[0])
}

func (s *Shell) execField(args []string) Result {
	if len(args) == 0 {
		return errResult("usage: field add|delete|rename|retype ...")
	}
	switch args[0] {
	case "add":
		if len(args) != 4 {
			return errResult("usage: field add <class> <type> <name>")
		}
		return s.do(&history.AddFieldCommand{Ed: s.ed, Class: args[1], Type: args[2], Name: args[3]})
	case "delete":
		if len(args) != 3 {
			return errResult("usage: field delete <class> <name>")
		}
		return s.do(&history.DeleteFieldCommand{Ed: s.ed, Class: args[1], Name: args[2]})
	case "rename":
		if len(args) != 4 {
			return errResult("usage: field rename <class> <old> <new>")
		}
		return s.do(&history.RenameFieldCommand{Ed: s.ed, Class: args[1], Old: args[2], New: args[3]})
	case "retype":
		if len(args) != 4 {
			return errResult("usage: field retype <class> <name> <type>")
		}
		return s.do(&history.RetypeFieldCommand{Ed: s.ed, Class: args[1], Name: args[2], NewType: args[3]})
	}
	return errResult("unknown field action %q", args[0])
}

func (s *Shell) execMethod(args []string) Result {
	if len(args) == 0 {
		return errResult("usage: method add|delete|rename|retype ...")
	}
	switch args[0] {
	case "add":
		if len(args) != 4 {
			return errResult("usage: method add <class> <return-type> <name>")
		}
		return s.do(&history.AddMethodCommand{Ed: s.ed, Class: args[1], ReturnType: args[2], Name: args[3]})
	case "delete":
		if len(args) != 3 {
			return errResult("usage: method delete <class> <position>")
		}
		return s.do(&history.DeleteMethodCommand{Ed: s.ed, Class: args[1], Pos: args[2]})
	case "rename":
		if len(args) != 4 {
			return errResult("usage: method rename <class> <position> <new-name>")
		}
		return s.do(&history.RenameMethodCommand{Ed: s.ed, Class: args[1], Pos: args[2], NewName: args[3]})
	case "retype":
		if len(args) != 4 {
			return errResult("usage: method retype <class> <position> <return-type>")
		}
		return s.do(&history.RetypeMethodCommand{Ed: s.ed, Class: args[1], Pos: args[2], NewReturnType: args[3]})
	}
	return errResult("unknown method action %q", args[0])
}

func (s *Shell) execParam(args []string) Result {
	if len(args) == 0 {
		return errResult("usage: param add|delete|rename|retype|set|clear ...")
	}
	switch args[0] {
	case "add":
		if len(args) != 5 {
			return errResult("usage: param add <class> <position> <type> <name>")
		}
		return s.do(&history.AddParameterCommand{Ed: s.ed, Class: args[1], Pos: args[2], Type: args[3], Name: args[4]})
	case "delete":
		if len(args) != 4 {
			return errResult("usage: param delete <class> <position> <name>")
		}
		return s.do(&history.DeleteParameterCommand{Ed: s.ed, Class: args[1], Pos: args[2], Name: args[3]})
	case "rename":
		if len(args) != 5 {
			return errResult("usage: param rename <class> <position> <old> <new>")
		}
		return s.do(&history.RenameParameterCommand{Ed: s.ed, Class: args[1], Pos: args[2], Old: args[3], New: args[4]})
	case "retype":
		if len(args) != 5 {
			return errResult("usage: param retype <class> <position> <name> <type>")
		}
		return s.do(&history.RetypeParameterCommand{Ed: s.ed, Class: args[1], Pos: args[2], Name: args[3], NewType: args[4]})
	case "set":
		if len(args) < 3 || len(args)%2 != 1 {
			return errResult("usage: param set <class> <position> [<type> <name>]...")
		}
		var params []domain.Parameter
		for i := 3; i < len(args); i += 2 {
			params = append(params, domain.Parameter{Type: args[i], Name: args[i+1]})
		}
		return s.do(&history.SetParametersCommand{Ed: s.ed, Class: args[1], Pos: args[2], Params: params})
	case "clear":
		if len(args) != 3 {
			return errResult("usage: param clear <class> <position>")
		}
		return s.do(&history.SetParametersCommand{Ed: s.ed, Class: args[1], Pos: args[2]})
	}
	return errResult("unknown param action %q", args[0])
}

func (s *Shell) execRel(args []string) Result {
	if len(args) == 0 {
		return errResult("usage: rel add|delete|retype ...")
	}
	switch args[0] {
	case "add":
		if len(args) != 4 {
			return errResult("usage: rel add <source> <destination> <type>")
		}
		return s.do(&history.AddRelationshipCommand{Ed: s.ed, Source: args[1], Dest: args[2], Typ: args[3]})
	case "delete":
		if len(args) != 3 {
			return errResult("usage: rel delete <source> <destination>")
		}
		return s.do(&history.DeleteRelationshipCommand{Ed: s.ed, Source: args[1], Dest: args[2]})
	case "retype":
		if len(args) != 4 {
			return errResult("usage: rel retype <source> <destination> <type>")
		}
		return s.do(&history.RetypeRelationshipCommand{Ed: s.ed, Source: args[1], Dest: args[2], NewType: args[3]})
	}
	return errResult("unknown rel action %q", args[0])
}

var helpText = strings.TrimSpace(`
Commands:
  class add <name>                            create a class
  class rename <old> <new>                    rename a class
  class delete <name>                         delete a class and its relationships
  class move <name> <x> <y>                   move a class on the canvas
  field add <class> <type> <name>             add a field
  field delete <class> <name>                 delete a field
  field rename <class> <old> <new>            rename a field
  field retype <class> <name> <type>          change a field's type
  method add <class> <return-type> <name>     add a method (no parameters)
  method delete <class> <position>            delete the method at a 1-based position
  method rename <class> <position> <name>     rename a method
  method retype <class> <position> <type>     change a method's return type
  param add <class> <position> <type> <name>  append a parameter
  param delete <class> <position> <name>      remove a parameter
  param rename <class> <position> <old> <new> rename a parameter
  param retype <class> <position> <name> <type>  change a parameter's type
  param set <class> <position> [<type> <name>]...  replace all parameters
  param clear <class> <position>              remove all parameters
  rel add <source> <destination> <type>       add a relationship
  rel delete <source> <destination>           delete a relationship
  rel retype <source> <destination> <type>    change a relationship's type
  undo / redo                                 step through the command history
  history                                     show the command history
  list                                        list classes
  rels                                        list relationships
  show <class>                                show one class in detail
  save                                        write the diagram to disk
  exit                                        leave the shell

Relationship types: Aggregation, Composition, Inheritance, Realization
`)
