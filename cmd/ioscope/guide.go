package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const guideMarkdown = `# ioscope in two minutes

Interactive hosts decorate two process-wide facilities:

- the **stdout stream**, usually replaced by a styling wrapper
- the **completion hook** of the line editor

Some calls need the pristine defaults. Wrap them:

` + "```go" + `
iso, _ := ioscope.New()
err := iso.Run(func() error {
    fmt.Println("reaches the real stdout")
    return nil
})
` + "```" + `

Selection is all-or-nothing: pass no entity options to isolate everything,
or name *every* entity explicitly:

` + "```go" + `
iso, err := ioscope.New(
    ioscope.WithReadline(true),
    ioscope.WithStdout(false),
)
` + "```" + `

Restoration is guaranteed on every exit path, panics included. Errors from
the wrapped function propagate unchanged after restore. In environments
without a terminal the readline entity silently sits out, one call at a
time.
`

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Print a rendered usage guide",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(), // Automatically detect light/dark background
		)
		if err != nil {
			return err
		}
		out, err := r.Render(guideMarkdown)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
