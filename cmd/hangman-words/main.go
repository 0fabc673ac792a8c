// Command hangman-words runs the word bank extraction pipeline from the shell
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"hangman/internal/core/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hangman-words",
		Short:         "Extract, classify and validate hangman word banks",
		Long:          `Runs the same extraction the API uses on text given as arguments or piped on stdin.`,
		Version:       version.Info().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(extractCmd())
	root.AddCommand(classifyCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(defaultsCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// input joins args with spaces, or reads all of stdin when there are none
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}
