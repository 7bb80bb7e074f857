package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maraiyur/seyyul"
	"github.com/maraiyur/seyyul/gemini"
)

var (
	asJSON  bool
	enhance bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze one line of Tamil text",
	Long: "Analyze matches the given text (arguments, or each line of stdin " +
		"when no arguments are given) against the bundled corpora and prints " +
		"the verdict.",
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&asJSON, "json", false, "print the raw result as JSON")
	analyzeCmd.Flags().BoolVar(&enhance, "enhance", false, "rewrite the meaning through Gemini (needs GEMINI_API_KEY)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}

	var enhancer *gemini.Enhancer
	if enhance {
		log, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer log.Sync()
		enhancer, err = gemini.New(cmd.Context(), log)
		if err != nil {
			return fmt.Errorf("creating enhancer: %w", err)
		}
	}

	if len(args) > 0 {
		return analyzeOne(cmd.Context(), analyzer, enhancer, strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := analyzeOne(cmd.Context(), analyzer, enhancer, line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return scanner.Err()
}

func analyzeOne(ctx context.Context, analyzer *seyyul.Analyzer, enhancer *gemini.Enhancer, text string) error {
	res, err := analyzer.Analyze(text)
	if err != nil {
		return err
	}
	if enhancer != nil {
		res.MeaningText = enhancer.Enhance(ctx, text, res.MeaningText)
	}

	if asJSON {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	printResult(res)
	return nil
}

func printResult(res *seyyul.Result) {
	if res.Found {
		fmt.Printf("நூல்: %s", res.BookTitle)
		if len(res.SectionLabels) > 0 {
			fmt.Printf(" (%s)", strings.Join(res.SectionLabels, ", "))
		}
		fmt.Printf(", பாடல் %d, பொருத்தம் %d/100\n", res.VerseNumber, res.MatchScore)
	} else if res.Classification == seyyul.ModernSentence {
		fmt.Println("இது இக்கால வாக்கியம்; செய்யுள் தேடல் இல்லை")
	} else {
		fmt.Println("பொருத்தமான செய்யுள் கிடைக்கவில்லை")
	}
	fmt.Printf("பொருள்: %s\n", res.MeaningText)
	fmt.Printf("உணர்வு: %s (%.2f)\n", res.SentimentLabel, res.SentimentConfidence)
	if len(res.Themes) > 0 {
		fmt.Printf("கருப்பொருள்: %s\n", strings.Join(res.Themes, ", "))
	}
}

func newAnalyzer() (*seyyul.Analyzer, error) {
	opts := []seyyul.Option{}
	if configPath != "" {
		t, err := seyyul.LoadThresholds(configPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, seyyul.WithThresholds(t))
	}
	return seyyul.New(opts...)
}
