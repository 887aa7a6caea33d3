package bpe

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNegativeMerges is returned when a caller asks for a negative number of
// merge rounds. It is the only invalid input the trainer can receive.
var ErrNegativeMerges = errors.New("bpe: number of merges must be non-negative")

// MergeRule records one learned pair substitution. The ordered sequence of
// rules produced by a training run is the trainable artifact: replaying them
// in order reproduces the final segmentation.
type MergeRule struct {
	Round  int
	Pair   Pair
	Merged string
}

// Reporter observes completed merge rounds. The trainer calls it exactly
// once per round that commits a merge, with the round index, the pair that
// was merged, and the size of the rewritten vocabulary.
type Reporter interface {
	MergeApplied(round int, pair Pair, vocabSize int)
}

// NopReporter discards all round reports.
type NopReporter struct{}

func (NopReporter) MergeApplied(int, Pair, int) {}

// SlogReporter logs each completed round through a slog.Logger.
// A nil Logger falls back to slog.Default.
type SlogReporter struct {
	Logger *slog.Logger
}

func (r SlogReporter) MergeApplied(round int, pair Pair, vocabSize int) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("merge applied",
		"round", round,
		"first", pair.First,
		"second", pair.Second,
		"vocab_size", vocabSize)
}

// Trainer drives BPE merge rounds over a token sequence. The zero value is
// ready to use: whole-token initial symbols and no round reporting.
type Trainer struct {
	// Reporter, if non-nil, is notified once per completed merge round.
	Reporter Reporter

	// CharLevel splits each token into runes as its initial symbol
	// sequence instead of starting from the whole token.
	CharLevel bool
}

// Result holds the outcome of a training run.
type Result struct {
	// Vocab is the final vocabulary after all merge rounds.
	Vocab Vocabulary

	// Merges lists the applied merge rules in training order. Its length
	// is the number of rounds that actually committed, which is at most
	// the requested number and smaller when training terminated early.
	Merges []MergeRule
}

// Tokens returns the final distinct symbol-sequence keys in lexicographic
// order — the trained token vocabulary.
func (r *Result) Tokens() []string {
	return r.Vocab.Keys()
}

// Train runs at most numMerges merge rounds over the token sequence.
//
// Each round computes pair statistics over the current vocabulary, selects
// the most frequent pair (ties resolved by PairStats.Best's documented
// order), and rewrites the vocabulary with that pair collapsed. Training
// terminates early as soon as no adjacent pairs remain; an empty token
// sequence terminates before the first round. A round either fully commits
// a merge or does not count.
func (t *Trainer) Train(tokens []string, numMerges int) (*Result, error) {
	if numMerges < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeMerges, numMerges)
	}

	var vocab Vocabulary
	if t.CharLevel {
		vocab = BuildCharVocabulary(tokens)
	} else {
		vocab = BuildVocabulary(tokens)
	}

	var rules []MergeRule
	for round := 0; round < numMerges; round++ {
		stats := ComputePairStats(vocab)
		best, _, ok := stats.Best()
		if !ok {
			break // every entry is a single symbol, nothing left to merge
		}

		vocab = MergePair(best, vocab)
		rules = append(rules, MergeRule{Round: round, Pair: best, Merged: best.Merged()})

		if t.Reporter != nil {
			t.Reporter.MergeApplied(round, best, len(vocab))
		}
	}

	return &Result{Vocab: vocab, Merges: rules}, nil
}

// Train is a convenience wrapper running a zero-value Trainer and returning
// just the final token vocabulary.
func Train(tokens []string, numMerges int) ([]string, error) {
	res, err := (&Trainer{}).Train(tokens, numMerges)
	if err != nil {
		return nil, err
	}
	return res.Tokens(), nil
}
