// Package main field, method and parameter commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joss/duml/internal/audit"
	"github.com/joss/duml/internal/domain"
	"github.com/joss/duml/internal/history"
)

// mutate runs one history command inside a fresh session.
func mutate(op string, build func(a *app) history.Command) {
	event := auditLogger.Start(audit.CategoryMember, op)
	a := mustApp(true)
	defer a.Close()

	ok := a.hist.Do(build(a))
	a.finish(ok, event)
}

func fieldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "field",
		Short: "Field commands",
		Long:  "Add, delete, rename and retype class fields",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add [class] [type] [name]",
			Short: "Add a field to a class",
			Args:  cobra.ExactArgs(3),
			Run: func(cmd *cobra.Command, args []string) {
				mutate("field_add", func(a *app) history.Command {
					return &history.AddFieldCommand{Ed: a.ed, Class: args[0], Type: args[1], Name: args[2]}
				})
			},
		},
		&cobra.Command{
			Use:   "delete [class] [name]",
			Short: "Delete a field",
			Args:  cobra.ExactArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				mutate("field_delete", func(a *app) history.Command {
					return &history.DeleteFieldCommand{Ed: a.ed, Class: args[0], Name: args[1]}
				})
			},
		},
		&cobra.Command{
			Use:   "rename [class] [old] [new]",
			Short: "Rename a field",
			Args:  cobra.ExactArgs(3),
			Run: func(cmd *cobra.Command, args []string) {
				mutate("field_rename", func(a *app) history.Command {
					return &history.RenameFieldCommand{Ed: a.ed, Class: args[0], Old: args[1], New: args[2]}
				})
			},
		},
		&cobra.Command{
			Use:   "retype [class] [name] [type]",
			Short: "Change a field's type",
			Args:  cobra.ExactArgs(3),
			Run: func(cmd *cobra.Command, args []string) {
				mutate("field_retype", func(a *app) history.Command {
					return &history.RetypeFieldCommand{Ed: a.ed, Class: args[0], Name: args[1], NewType: args[2]}
				})
			},
		},
	)
	return cmd
}

func methodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "method",
		Short: "Method commands",
		Long: `Add, delete, rename and retype class methods.

Methods are addressed by their 1-based position in the class listing
(see 'duml class show'); overloaded methods share a name but differ in
parameter types.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add [class] [return-type] [name]",
			Short: "Add a parameterless method",
			Args:  cobra.ExactArgs(3),
			Run: func(cmd *cobra.Command, args []string) {
				mutate("method_add", func(a *app) history.Command {
					return &history.AddMethodCommand{Ed: a.ed, Class: args[0], ReturnType: args[1], Name: args[2]}
				})
			},
		},
		&cobra.Command{
			Use:   "delete [class] [position]",
			Short: "Delete the method at a position",
			Args:  cobra.ExactArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				mutate("method_delete", func(a *app) history.Command {
					return &history.DeleteMethodCommand{Ed: a.ed, Class: args[0], Pos: args[1]}
				})
			},
		},
		&cobra.Command{
			Use:   "rename [class] [position] [new-name]",
			Short: "Rename the method at a position",
			Args:  cobra.ExactArgs(3),
			Run: func(cmd *cobra.Command, args []string) {
				mutate("method_rename", func(a *app) history.Command {
					return &history.RenameMethodCommand{Ed: a.ed, Class: args[0], Pos: args[1], NewName: args[2]}
				})
			},
		},
		&cobra.Command{
			Use:   "retype [class] [position] [return-type]",
			Short: "Change a method's return type",
			Args:  cobra.ExactArgs(3),
			Run: func(cmd *cobra.Command, args []string) {
				mutate("method_retype", func(a *app) history.Command {
					return &history.RetypeMethodCommand{Ed: a.ed, Class: args[0], Pos: args[1], NewReturnType: args[2]}
				})
			},
		},
	)
	return cmd
}

func paramCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "param",
		Short: "Parameter commands",
		Long:  "Edit the parameter list of the method at a 1-based position",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add [class] [position] [type] [name]",
			Short: "Append a parameter",
			Args:  cobra.ExactArgs(4),
			Run: func(cmd *cobra.Command, args []string) {
				mutate("param_add", func(a *app) history.Command {
					return &history.AddParameterCommand{Ed: a.ed, Class: args[0], Pos: args[1], Type: args[2], Name: args[3]}
				})
			},
		},
		&cobra.Command{
			Use:   "delete [class] [position] [name]",
			Short: "Remove a parameter",
			Args:  cobra.ExactArgs(3),
			Run: func(cmd *cobra.Command, args []string) {
				mutate("param_delete", func(a *app) history.Command {
					return &history.DeleteParameterCommand{Ed: a.ed, Class: args[0], Pos: args[1], Name: args[2]}
				})
			},
		},
		&cobra.Command{
			Use:   "rename [class] [position] [old] [new]",
			Short: "Rename a parameter",
			Args:  cobra.ExactArgs(4),
			Run: func(cmd *cobra.Command, args []string) {
				mutate("param_rename", func(a *app) history.Command {
					return &history.RenameParameterCommand{Ed: a.ed, Class: args[0], Pos: args[1], Old: args[2], New: args[3]}
				})
			},
		},
		&cobra.Command{
			Use:   "retype [class] [position] [name] [type]",
			Short: "Change a parameter's type",
			Args:  cobra.ExactArgs(4),
			Run: func(cmd *cobra.Command, args []string) {
				mutate("param_retype", func(a *app) history.Command {
					return &history.RetypeParameterCommand{Ed: a.ed, Class: args[0], Pos: args[1], Name: args[2], NewType: args[3]}
				})
			},
		},
		&cobra.Command{
			Use:   "set [class] [position] [type name]...",
			Short: "Replace the whole parameter list",
			Args: func(cmd *cobra.Command, args []string) error {
				if len(args) < 2 || len(args)%2 != 0 {
					return fmt.Errorf("expected [class] [position] followed by type/name pairs")
				}
				return nil
			},
			Run: func(cmd *cobra.Command, args []string) {
				var params []domain.Parameter
				for i := 2; i < len(args); i += 2 {
					params = append(params, domain.Parameter{Type: args[i], Name: args[i+1]})
				}
				mutate("param_set", func(a *app) history.Command {
					return &history.SetParametersCommand{Ed: a.ed, Class: args[0], Pos: args[1], Params: params}
				})
			},
		},
		&cobra.Command{
			Use:   "clear [class] [position]",
			Short: "Remove all parameters",
			Args:  cobra.ExactArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				mutate("param_clear", func(a *app) history.Command {
					return &history.SetParametersCommand{Ed: a.ed, Class: args[0], Pos: args[1]}
				})
			},
		},
	)
	return cmd
}
