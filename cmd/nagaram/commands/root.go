package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/nagaram/internal/anagram"
	"github.com/robalobadob/nagaram/internal/config"
	"github.com/robalobadob/nagaram/internal/present"
	"github.com/robalobadob/nagaram/internal/words"
)

const versionLine = "Nagaram 0.3.3 (Released: May 2, 2014)"

var errNoLetters = errors.New("no letters given")

type options struct {
	sowpods     bool
	byLength    bool
	start       string
	end         string
	wordlists   string
	version     bool
	verbose     bool
	interactive bool

	// src overrides the dictionary source; tests set it.
	src words.Source
	log zerolog.Logger
}

func (o *options) query(letters string) anagram.Query {
	v := words.TWL
	if o.sowpods {
		v = words.SOWPODS
	}
	return anagram.Query{Letters: letters, Variant: v, Start: o.start, End: o.end}
}

func (o *options) source() words.Source {
	switch {
	case o.src != nil:
		return o.src
	case o.wordlists != "":
		return words.Dir(o.wordlists)
	default:
		return words.Embedded()
	}
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	err := newRootCmd(nil).Execute()
	if err != nil && !errors.Is(err, errNoLetters) {
		fmt.Fprintln(os.Stderr, "nagaram:", err)
	}
	return err
}

func newRootCmd(src words.Source) *cobra.Command {
	o := &options{src: src}
	root := &cobra.Command{
		Use:           "nagaram [flags] <letters>...",
		Short:         "Find the Scrabble words a rack can make",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl := zerolog.WarnLevel
			if o.verbose {
				lvl = zerolog.DebugLevel
			}
			o.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
				Level(lvl).With().Timestamp().Logger()
			if o.wordlists == "" && o.src == nil {
				o.wordlists = config.Load().WordlistDir
			}
			o.log.Debug().Str("wordlists", o.wordlists).Msg("dictionary source")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case o.version:
				fmt.Fprintln(out, versionLine)
				return nil
			case o.interactive:
				return runInteractive(cmd, o)
			case len(args) == 0:
				_ = cmd.Usage()
				return errNoLetters
			}
			return search(out, o, args)
		},
	}

	f := root.Flags()
	f.BoolVar(&o.sowpods, "sowpods", false, "use the SOWPODS word list instead of TWL")
	f.BoolVarP(&o.byLength, "length", "l", false, "group results by word length")
	f.StringVarP(&o.start, "starts-with", "s", "", "letters the word must start with")
	f.StringVarP(&o.end, "ends-with", "e", "", "letters the word must end with")
	f.StringVar(&o.wordlists, "wordlists", "", "directory with twl.txt and sowpods.txt (default $NAGARAM_WORDLIST_DIR, else built-in lists)")
	f.BoolVarP(&o.version, "version", "v", false, "print the version and exit")
	f.BoolVar(&o.verbose, "verbose", false, "debug logging to stderr")
	f.BoolVarP(&o.interactive, "interactive", "i", false, "read racks from a prompt")
	return root
}

// search renders every letters argument concurrently and writes the reports
// to w in argument order. Nothing is written if any search fails.
func search(w io.Writer, o *options, args []string) error {
	s := anagram.New(o.source())
	bufs := make([]bytes.Buffer, len(args))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, letters := range args {
		g.Go(func() error {
			q := o.query(letters)
			o.log.Debug().Str("letters", letters).Str("dict", q.Variant.String()).Msg("search")
			return renderQuery(&bufs[i], s, q, o.byLength)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range bufs {
		if _, err := bufs[i].WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

// renderQuery writes the report for one query.
func renderQuery(w io.Writer, s *anagram.Searcher, q anagram.Query, byLength bool) error {
	return present.Render(w, q.Letters, s.Search(q), byLength)
}
