package diag

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/miyakoshi/septade/internal/catalog"
	"github.com/miyakoshi/septade/internal/diagnosis"
	"github.com/miyakoshi/septade/internal/fourpillars"
	"github.com/miyakoshi/septade/internal/tarot"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "diag",
	Title: "Diagnosis operations",
}

// Score reads answers from a JSON file and prints the scored diagnosis.
var Score = &cobra.Command{
	Use:     "score [answers.json]",
	GroupID: "diag",
	Short:   "Score a set of answers",
	Long:    `Scores a JSON answer set ("-" reads from stdin) and prints the axis scores, type and measurement.`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			data []byte
			err  error
		)
		if args[0] == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Read answers error: %v\n", err)
			return
		}

		var raw any
		if err = json.Unmarshal(data, &raw); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Parse answers error: %v\n", err)
			return
		}
		answers, err := diagnosis.Normalize(raw, catalog.Questions)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Normalize answers error: %v\n", err)
			return
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		scorer, err := diagnosis.NewScorer(catalog.Questions, logger)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Build scorer error: %v\n", err)
			return
		}
		scores, err := scorer.Score(context.Background(), answers)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Score error: %v\n", err)
			return
		}

		printJSON(map[string]any{
			"scores":      scores,
			"type":        diagnosis.Classify(scores),
			"measurement": diagnosis.Measure(scores),
		})
	},
}

// Pillars prints the four pillars chart for a birthdate.
var Pillars = &cobra.Command{
	Use:     "pillars [birthdate] [birthtime]",
	GroupID: "diag",
	Short:   "Calculate a four pillars chart",
	Long:    `Calculates the four pillars chart for a YYYY-MM-DD birthdate and optional HH:MM birth time.`,
	Args:    cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		birthTime := ""
		if len(args) == 2 {
			birthTime = args[1]
		}
		chart, err := fourpillars.Calculate(args[0], birthTime)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Calculate chart error: %v\n", err)
			return
		}
		printJSON(chart)
	},
}

// Card prints the tarot card for a type code and axis scores.
var Card = &cobra.Command{
	Use:     "card [type] [E] [S] [T] [J]",
	GroupID: "diag",
	Short:   "Select the tarot card for a result",
	Long:    `Selects the major arcana card for a type code and its four axis scores.`,
	Args:    cobra.ExactArgs(5),
	Run: func(cmd *cobra.Command, args []string) {
		var scores diagnosis.AxisScores
		for i, target := range []*int{&scores.E, &scores.S, &scores.T, &scores.J} {
			value, err := strconv.Atoi(args[i+1])
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Parse score error: %v\n", err)
				return
			}
			*target = value
		}

		card, err := tarot.Select(diagnosis.TypeCode(args[0]), scores, tarot.MajorArcana)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Select card error: %v\n", err)
			return
		}
		printJSON(card)
	},
}

func printJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Encode JSON error: %v\n", err)
	}
}
