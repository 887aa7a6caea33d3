// Command bpetrain trains a BPE token vocabulary over a text corpus and
// prints the resulting vocabulary as a table. Per-round merges are logged to
// stderr so the training trajectory stays visible without polluting the
// result on stdout.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"bpevocab/pkg/bpe"
	"bpevocab/pkg/corpus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		merges    int
		charLevel bool
		quiet     bool
	)

	cmd := &cobra.Command{
		Use:   "bpetrain [corpus-file]",
		Short: "Train a BPE token vocabulary over a text corpus",
		Long: `Train a Byte Pair Encoding vocabulary by repeatedly merging the most
frequent adjacent symbol pair. Reads the corpus from the given file, or from
stdin when no file is given. By default each token starts as a single whole
symbol; pass --char-level to split tokens into characters first, which is
what produces the classic subword merges.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				text string
				err  error
			)
			if len(args) == 1 {
				text, err = corpus.Load(args[0])
			} else {
				text, err = corpus.Read(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			tokens := corpus.Tokenize(text)

			trainer := &bpe.Trainer{CharLevel: charLevel}
			if !quiet {
				logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
				trainer.Reporter = bpe.SlogReporter{Logger: logger}
			}

			res, err := trainer.Train(tokens, merges)
			if err != nil {
				return err
			}

			renderVocab(cmd.OutOrStdout(), res.Vocab)
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d tokens in, %d vocabulary entries, %d merges applied\n",
				len(tokens), len(res.Vocab), len(res.Merges))
			return nil
		},
	}

	cmd.Flags().IntVar(&merges, "merges", 50, "maximum number of merge rounds")
	cmd.Flags().BoolVar(&charLevel, "char-level", false, "split tokens into characters before training")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress per-round merge logging")
	return cmd
}

func renderVocab(w io.Writer, vocab bpe.Vocabulary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"TOKEN", "FREQ"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	for _, key := range vocab.Keys() {
		table.Append([]string{key, strconv.Itoa(vocab[key])})
	}
	table.Render()
}
