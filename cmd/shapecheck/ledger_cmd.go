package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"shapecheck/internal/diag"
	"shapecheck/internal/driver"
	"shapecheck/internal/ui"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Work with recorded binding ledgers",
}

var (
	ledgerRequire []string
	ledgerStrict  bool
)

var ledgerMergeCmd = &cobra.Command{
	Use:   "merge <fixture.json>...",
	Short: "Merge ledger fixtures in order and report conflicting placeholders",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := prepare(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		files, err := driver.LoadLedgers(cmd.Context(), args, a.opts)
		if err != nil {
			return err
		}
		res, err := driver.MergeAll(cmd.Context(), files, a.opts)
		if err != nil {
			return err
		}
		if len(ledgerRequire) > 0 {
			res.Ledger.RequireBound(diag.BagReporter{Bag: res.Bag}, ledgerRequire...)
		}

		out := cmd.OutOrStdout()
		if !a.quiet {
			writeMergeInputs(out, a, files, res)
		}
		if _, err := io.WriteString(out, ui.LedgerReport(res.Ledger, a.styler, a.width)); err != nil {
			return err
		}
		if err := writeDiagnostics(out, res.Bag); err != nil {
			return err
		}

		switch {
		case res.Bag.HasErrors():
			return fmt.Errorf("merged ledger has unbound placeholders")
		case ledgerStrict && res.Ledger.HasConflicts():
			return fmt.Errorf("merged ledger has %d conflicting placeholder(s)", len(res.Ledger.ConflictKeys()))
		}
		return nil
	},
}

func init() {
	ledgerMergeCmd.Flags().StringSliceVar(&ledgerRequire, "require", nil, "placeholders that must be bound after the merge")
	ledgerMergeCmd.Flags().BoolVar(&ledgerStrict, "strict", false, "exit non-zero when the merge produced conflicts")
	ledgerCmd.AddCommand(ledgerMergeCmd)
}

func writeMergeInputs(out io.Writer, a *app, files []driver.LedgerFile, res *driver.MergeResult) {
	fmt.Fprintln(out, a.styler.Title("inputs"))
	t := &ui.Table{Header: []string{"#", "NAME", "STATUS", "PATH"}}
	for i, f := range files {
		status := "merged"
		if res.NewConflicts[i] > 0 {
			status = "conflict"
		}
		t.Append(fmt.Sprint(i), f.Name, a.styler.Status(status), f.Path)
	}
	fmt.Fprintln(out, t.Render(a.styler, a.width))
}
