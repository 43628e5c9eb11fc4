package commands

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/robalobadob/nagaram/internal/anagram"
	"github.com/robalobadob/nagaram/internal/present"
)

const prompt = "nagaram> "

type lineReader interface {
	Readline() (string, error)
}

func runInteractive(cmd *cobra.Command, o *options) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile(o),
		InterruptPrompt: "^C",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	return repl(rl, cmd.OutOrStdout(), o)
}

// historyFile is $XDG_CACHE_HOME/nagaram/history, or "" (no history) when
// the cache dir is unavailable.
func historyFile(o *options) string {
	dir, err := os.UserCacheDir()
	if err != nil {
		o.log.Debug().Err(err).Msg("no cache dir, history disabled")
		return ""
	}
	dir = filepath.Join(dir, "nagaram")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		o.log.Debug().Err(err).Msg("history disabled")
		return ""
	}
	return filepath.Join(dir, "history")
}

// repl searches each line read from rl until EOF. A failed search is
// reported and the prompt continues.
func repl(rl lineReader, out io.Writer, o *options) error {
	s := anagram.New(o.source())
	for {
		line, err := rl.Readline()
		switch {
		case err == nil:
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			return nil
		default:
			return err
		}

		letters := strings.TrimSpace(line)
		if letters == "" {
			continue
		}
		var n int
		q := o.query(letters)
		if err := present.Render(out, letters, counted(s.Search(q), &n), o.byLength); err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		fmt.Fprintln(out, humanize.Comma(int64(n)), "anagrams")
	}
}

// counted passes seq through, adding each successful result to *n.
func counted(seq iter.Seq2[anagram.Anagram, error], n *int) iter.Seq2[anagram.Anagram, error] {
	return func(yield func(anagram.Anagram, error) bool) {
		for a, err := range seq {
			if err == nil {
				*n++
			}
			if !yield(a, err) {
				return
			}
		}
	}
}
