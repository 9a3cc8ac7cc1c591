package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"shapecheck/internal/driver"
	"shapecheck/internal/typecodec"
	"shapecheck/internal/types"
	"shapecheck/internal/ui"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Inspect serialized type records",
}

var typesDescribeCmd = &cobra.Command{
	Use:   "describe <file.json>...",
	Short: "Decode type records and print their descriptions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTypes(cmd, args, describeFile)
	},
}

var typesRoundtripCmd = &cobra.Command{
	Use:   "roundtrip <file.json>...",
	Short: "Check that decoded types survive JSON and binary re-encoding",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTypes(cmd, args, roundtripFile)
	},
}

var typesAnnotationCmd = &cobra.Command{
	Use:   "annotation <name>...",
	Short: "Resolve annotation names to types",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := prepare(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		anns, rejected := types.NewAnnotations(types.NewClasses(0), a.cfg.Types.Annotations)
		for _, name := range rejected {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: annotation synonym %q has an unknown target\n", name)
		}
		t := &ui.Table{Header: []string{"ANNOTATION", "KIND", "DESCRIPTION"}}
		for _, name := range args {
			resolved := anns.Resolve(name, nil)
			t.Append(name, resolved.Kind.String(), resolved.Description())
		}
		_, err = io.WriteString(cmd.OutOrStdout(), t.Render(a.styler, a.width))
		return err
	},
}

func init() {
	typesCmd.AddCommand(typesDescribeCmd)
	typesCmd.AddCommand(typesRoundtripCmd)
	typesCmd.AddCommand(typesAnnotationCmd)
}

// fileReport renders one loaded file and reports whether it failed.
type fileReport func(out io.Writer, a *app, f *driver.TypeFile) bool

func runTypes(cmd *cobra.Command, paths []string, report fileReport) error {
	a, cleanup, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	files, err := driver.LoadTypeRecords(cmd.Context(), paths, a.opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	failed := 0
	for i := range files {
		f := &files[i]
		if report(out, a, f) {
			failed++
		}
		if err := writeDiagnostics(out, f.Bag); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(files))
	}
	return nil
}

func fileHeader(a *app, f *driver.TypeFile) string {
	status := "decoded"
	if f.Cached {
		status = "cached"
	}
	if f.Bag.HasErrors() {
		status = "error"
	}
	return a.styler.Title(f.Path) + " " + a.styler.Status(status) + "\n"
}

func describeFile(out io.Writer, a *app, f *driver.TypeFile) bool {
	if !a.quiet {
		fmt.Fprint(out, fileHeader(a, f))
	}
	t := &ui.Table{Header: []string{"#", "KIND", "DESCRIPTION"}}
	for i, typ := range f.Types {
		if typ == nil {
			t.Append(strconv.Itoa(i), "-", a.styler.Status("error"))
			continue
		}
		t.Append(strconv.Itoa(i), typ.Kind.String(), typ.Description())
	}
	fmt.Fprint(out, t.Render(a.styler, a.width))
	return f.Bag.HasErrors()
}

func roundtripFile(out io.Writer, a *app, f *driver.TypeFile) bool {
	if !a.quiet {
		fmt.Fprint(out, fileHeader(a, f))
	}
	failed := f.Bag.HasErrors()
	t := &ui.Table{Header: []string{"#", "KIND", "STATUS", "DETAIL"}}
	for i, typ := range f.Types {
		if typ == nil {
			continue
		}
		status, detail := roundtrip(typ)
		if status == "error" {
			failed = true
		}
		t.Append(strconv.Itoa(i), typ.Kind.String(), a.styler.Status(status), detail)
	}
	fmt.Fprint(out, t.Render(a.styler, a.width))
	return failed
}

// roundtrip re-encodes t through both wire forms and compares the results.
func roundtrip(t *types.Type) (status, detail string) {
	data, err := typecodec.TypeToJSON(t)
	if errors.Is(err, typecodec.ErrNotSerializable) {
		return "skipped", err.Error()
	}
	if err != nil {
		return "error", err.Error()
	}
	fromJSON, err := typecodec.TypeFromJSON(data)
	if err != nil {
		return "error", "json: " + err.Error()
	}
	if !typecodec.Equivalent(t, fromJSON) {
		return "error", "json form differs: " + string(data)
	}

	bin, err := typecodec.MarshalBinary(t)
	if err != nil {
		return "error", "binary: " + err.Error()
	}
	fromBin, err := typecodec.UnmarshalBinary(bin)
	if err != nil {
		return "error", "binary: " + err.Error()
	}
	if !typecodec.Equivalent(t, fromBin) {
		return "error", "binary form differs"
	}
	return "ok", fmt.Sprintf("%d json bytes, %d binary bytes", len(data), len(bin))
}
