package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/thoreinstein/minnote/internal/notes"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>...",
	Short: "Print notes again whenever they change",
	Long: `Watch one or more notes and print a note's content each time it is
written. Stops on Ctrl+C.`,
	Example: `  # Follow a note while editing it elsewhere
  minnote watch todo.txt

  See Also: minnote edit, minnote load`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchNotes(ctx, cmd, newStore(cmd), args)
}

// watchNotes watches every file until ctx is done or one watcher fails.
func watchNotes(ctx context.Context, cmd *cobra.Command, store *notes.Store, files []string) error {
	out := cmd.OutOrStdout()
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, file := range files {
		g.Go(func() error {
			return store.Watch(ctx, file, func(content string) {
				mu.Lock()
				defer mu.Unlock()
				if len(files) > 1 {
					fmt.Fprintf(out, "==> %s <==\n", file)
				}
				fmt.Fprint(out, content)
				if len(content) > 0 && content[len(content)-1] != '\n' {
					fmt.Fprintln(out)
				}
			})
		})
	}
	return g.Wait()
}
