package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0thm4n3/ioscope"
	"github.com/0thm4n3/ioscope/internal/logging"
	"github.com/0thm4n3/ioscope/pkg/adapters/proc"
	"github.com/0thm4n3/ioscope/pkg/lineedit"
	"github.com/0thm4n3/ioscope/pkg/ports"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run an interactive prompt that exercises I/O isolation",
	Long: `Starts a small prompt on the process console with a styled stdout
wrapper and a command completer installed, then lets you run output through
an isolator to see both being bypassed and restored.

Commands inside the prompt:
  echo <text>   print through the host's styled stdout wrapper
  raw <text>    print the same text inside an isolated context
  fail <text>   like raw, but the wrapped function returns an error
  exit          leave the demo`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().Bool("readline", true, "Isolate the completion hook")
	demoCmd.Flags().Bool("stdout", true, "Isolate the output stream")
	demoCmd.Flags().String("config", "", "YAML file carrying an 'isolate' entity mapping")
	rootCmd.AddCommand(demoCmd)
}

var demoCommands = []string{"echo", "raw", "fail", "exit"}

func runDemo(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	logger := logging.New(debug)

	opts, prompt, err := isolationOptions(cmd)
	if err != nil {
		return err
	}
	iso, err := ioscope.New(opts...)
	if err != nil {
		return fmt.Errorf("invalid isolation configuration: %w", err)
	}
	logger.Debug("Isolator ready", "config", fmt.Sprintf("%+v", iso.Config()))

	// Play the host: decorate stdout and install a command completer.
	// Both are exactly what the isolator bypasses for "raw" commands.
	output := proc.Output()
	prevWriter := output.Current()
	output.Set(proc.NewWrapper(output.Default()))
	defer output.Set(prevWriter)

	editor := proc.Editor()
	prevCompleter := editor.Completer()
	editor.SetCompleter(ports.CompleterFunc(completeDemoCommand))
	defer editor.SetCompleter(prevCompleter)

	fmt.Fprintln(output.Current(), "ioscope demo. Type a command, Tab completes, 'exit' quits.")

	for {
		line, err := editor.ReadLine(prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, lineedit.ErrInterrupted) {
			continue
		}
		if err != nil {
			return err
		}

		if done, err := dispatch(iso, output, line, logger.With("line", line)); done {
			return nil
		} else if err != nil {
			// Failures from isolated calls propagate unchanged; show them.
			fmt.Fprintf(output.Current(), "error: %v\n", err)
		}
	}
}

func dispatch(iso *ioscope.Isolator, output ports.OutputSlot, line string, logger *slog.Logger) (done bool, err error) {
	verb, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	switch verb {
	case "":
		return false, nil
	case "exit", "quit":
		return true, nil
	case "echo":
		fmt.Fprintln(output.Current(), rest)
		return false, nil
	case "raw":
		logger.Debug("Running isolated call")
		return false, iso.Run(func() error {
			fmt.Fprintln(output.Current(), rest)
			return nil
		})
	case "fail":
		logger.Debug("Running isolated call that fails")
		return false, iso.Run(func() error {
			fmt.Fprintln(output.Current(), rest)
			return fmt.Errorf("demo failure after writing %q", rest)
		})
	default:
		fmt.Fprintf(output.Current(), "unknown command %q\n", verb)
		return false, nil
	}
}

// completeDemoCommand completes the leading verb of the prompt line.
func completeDemoCommand(line string) []string {
	var out []string
	for _, c := range demoCommands {
		if strings.HasPrefix(c, line) {
			out = append(out, c)
		}
	}
	return out
}

// isolationOptions translates CLI flags (or a config file) into isolator
// options. Only flags the user actually set are forwarded, so the
// all-or-nothing validation in ioscope.New sees exactly what was asked for.
func isolationOptions(cmd *cobra.Command) ([]ioscope.Option, string, error) {
	prompt := "ioscope> "

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		df, err := loadDemoFile(path)
		if err != nil {
			return nil, "", err
		}
		if df.Prompt != "" {
			prompt = df.Prompt
		}
		return []ioscope.Option{ioscope.WithConfigMap(df.Isolate)}, prompt, nil
	}

	var opts []ioscope.Option
	if cmd.Flags().Changed("readline") {
		v, _ := cmd.Flags().GetBool("readline")
		opts = append(opts, ioscope.WithReadline(v))
	}
	if cmd.Flags().Changed("stdout") {
		v, _ := cmd.Flags().GetBool("stdout")
		opts = append(opts, ioscope.WithStdout(v))
	}
	return opts, prompt, nil
}
