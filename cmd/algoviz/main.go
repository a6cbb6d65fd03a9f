// Command algoviz traces classic algorithms and plays the frames back in a
// terminal.
//
//	algoviz sort -a merge 5 3 8 1
//	algoviz search -a binary -t 15 4 8 15 16 23 42
//	algoviz graph -a dijkstra --start 0
//	algoviz tree bst insert 30 search 30 delete 50
//	algoviz tree heap insert 95 extract-max --frames
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
