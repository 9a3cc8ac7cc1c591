package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"shapecheck/internal/builtins"
	"shapecheck/internal/ui"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins [module]",
	Short: "List built-in modules or show the fields of one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := prepare(cmd)
		if err != nil {
			return err
		}
		defer cleanup()
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			names, err := builtins.Names()
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(out, n)
			}
			return nil
		}

		mod, ok, err := builtins.Lookup(args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("unknown built-in module %q", args[0])
		}
		if !a.quiet {
			fmt.Fprintln(out, a.styler.Title("module "+args[0]))
		}
		t := &ui.Table{Header: []string{"FIELD", "KIND", "DESCRIPTION"}}
		subs := slices.Sorted(maps.Keys(mod.Mod.Submodules))
		for _, name := range subs {
			t.Append(name+".", "Module", "submodule "+args[0]+"."+name)
		}
		for _, name := range mod.Fields() {
			f, _ := mod.Field(name)
			t.Append(name, f.Kind.String(), f.Description())
		}
		_, err = io.WriteString(out, t.Render(a.styler, a.width))
		return err
	},
}
